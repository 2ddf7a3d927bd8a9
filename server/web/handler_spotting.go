package web

import (
	"net/http"

	"github.com/adrianliechti/paddleocr-ui/server/api"
)

func (h *Handler) handleSpotting(w http.ResponseWriter, r *http.Request) {
	input, err := api.ReadInput(r)

	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.Spot(r.Context(), input)

	if err != nil {
		h.writeError(w, api.StatusCode(err), err)
		return
	}

	h.render(w, http.StatusOK, "spotting", newResultView(output))
}
