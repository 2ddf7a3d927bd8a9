package web

import (
	"net/http"

	"github.com/adrianliechti/paddleocr-ui/server/api"
)

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	input, err := api.ReadInput(r)

	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	options, err := api.ReadDocumentOptions(r)

	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.ParseDocument(r.Context(), input, options)

	if err != nil {
		h.writeError(w, api.StatusCode(err), err)
		return
	}

	h.render(w, http.StatusOK, "document", newResultView(output))
}
