// Package web serves the browser UI and the HTML fragments it loads.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/paddleocr-ui/pkg/ocr"

	"github.com/go-chi/chi/v5"
)

const title = "PaddleOCR-VL Web UI"

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

type Handler struct {
	*ocr.Service

	templates *template.Template
	static    fs.FS
}

func New(service *ocr.Service) (*Handler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")

	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(staticFS, "static")

	if err != nil {
		return nil, err
	}

	h := &Handler{
		Service: service,

		templates: templates,
		static:    static,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(h.static)))

	r.Post("/preview", h.handlePreview)

	r.Post("/parse", h.handleParse)
	r.Post("/recognize", h.handleRecognize)
	r.Post("/spotting", h.handleSpotting)
}

type taskButton struct {
	Value string
	Title string
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	var tasks []taskButton

	for _, t := range ocr.ElementTasks {
		tasks = append(tasks, taskButton{
			Value: string(t),
			Title: t.Title(),
		})
	}

	h.render(w, http.StatusOK, "index.html", map[string]any{
		"Title": title,
		"Tasks": tasks,
	})
}

func (h *Handler) render(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}
