package web

import (
	"net/http"

	"github.com/adrianliechti/paddleocr-ui/server/api"
)

func (h *Handler) handleRecognize(w http.ResponseWriter, r *http.Request) {
	input, err := api.ReadInput(r)

	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	if input.IsEmpty() {
		h.writeError(w, http.StatusBadRequest, api.ErrNoImage)
		return
	}

	task, err := api.ReadTask(r)

	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.Recognize(r.Context(), input, task)

	if err != nil {
		h.writeError(w, api.StatusCode(err), err)
		return
	}

	h.render(w, http.StatusOK, "element", newResultView(output))
}
