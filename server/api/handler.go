package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/paddleocr-ui/pkg/ocr"
	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"

	"github.com/go-chi/chi/v5"
)

var (
	ErrNoImage = errors.New("Please upload an image first.")
	ErrNoTask  = errors.New("Please select a recognition type.")
)

type Handler struct {
	*ocr.Service
}

func New(service *ocr.Service) (*Handler, error) {
	h := &Handler{
		Service: service,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/parse", h.handleParse)
	r.Post("/recognize", h.handleRecognize)
	r.Post("/spotting", h.handleSpotting)
}

// StatusCode maps service errors to the HTTP status reported to the browser.
func StatusCode(err error) int {
	if errors.Is(err, ErrNoImage) || errors.Is(err, ErrNoTask) {
		return http.StatusBadRequest
	}

	if errors.Is(err, paddle.ErrMissingInput) || errors.Is(err, paddle.ErrMissingPromptLabel) {
		return http.StatusBadRequest
	}

	return http.StatusBadGateway
}

// Message returns the user facing text of an error.
func Message(err error) string {
	switch {
	case errors.Is(err, paddle.ErrMissingInput):
		return ErrNoImage.Error()

	case errors.Is(err, paddle.ErrMissingPromptLabel):
		return ErrNoTask.Error()
	}

	return err.Error()
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	resp := ErrorResponse{
		Error: Error{
			Message: Message(err),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(resp)
}
