package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/paddleocr-ui/pkg/markdown"
	"github.com/adrianliechti/paddleocr-ui/pkg/ocr"
	"github.com/adrianliechti/paddleocr-ui/server/api"
)

type resultView struct {
	Markdown      template.HTML
	Visualization template.HTML
	Raw           string
}

func newResultView(output *ocr.Output) resultView {
	html, err := markdown.Render(output.Markdown)

	if err != nil {
		slog.Warn("failed to render markdown", "error", err)
		html = "<pre>" + template.HTMLEscapeString(output.Markdown) + "</pre>"
	}

	return resultView{
		Markdown:      template.HTML(html),
		Visualization: template.HTML(output.Visualization),
		Raw:           output.Raw,
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, err error) {
	h.render(w, code, "error", api.Message(err))
}
