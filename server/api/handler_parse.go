package api

import (
	"net/http"

	"github.com/adrianliechti/paddleocr-ui/pkg/ocr"
)

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	input, err := ReadInput(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	options, err := ReadDocumentOptions(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.ParseDocument(r.Context(), input, options)

	if err != nil {
		writeError(w, StatusCode(err), err)
		return
	}

	writeJson(w, toResult(output))
}

func toResult(output *ocr.Output) Result {
	return Result{
		Markdown:      output.Markdown,
		Visualization: output.Visualization,
		Raw:           output.Raw,
	}
}
