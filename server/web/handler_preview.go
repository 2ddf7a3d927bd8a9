package web

import (
	"io"
	"net/http"

	"github.com/adrianliechti/paddleocr-ui/pkg/ocr"
	"github.com/adrianliechti/paddleocr-ui/server/api"
)

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	input, err := api.ReadInput(r)

	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, ocr.Preview(input))
}
