package api

import (
	"net/http"
)

func (h *Handler) handleSpotting(w http.ResponseWriter, r *http.Request) {
	input, err := ReadInput(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.Spot(r.Context(), input)

	if err != nil {
		writeError(w, StatusCode(err), err)
		return
	}

	writeJson(w, toResult(output))
}
