package api

import (
	"net/http"
)

func (h *Handler) handleRecognize(w http.ResponseWriter, r *http.Request) {
	input, err := ReadInput(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if input.IsEmpty() {
		writeError(w, http.StatusBadRequest, ErrNoImage)
		return
	}

	task, err := ReadTask(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.Recognize(r.Context(), input, task)

	if err != nil {
		writeError(w, StatusCode(err), err)
		return
	}

	writeJson(w, toResult(output))
}
