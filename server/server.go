package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/adrianliechti/paddleocr-ui/config"
	"github.com/adrianliechti/paddleocr-ui/pkg/ocr"
	"github.com/adrianliechti/paddleocr-ui/server/api"
	"github.com/adrianliechti/paddleocr-ui/server/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	*config.Config

	handler http.Handler

	web *web.Handler
	api *api.Handler
}

func New(cfg *config.Config, service *ocr.Service) (*Server, error) {
	w, err := web.New(service)

	if err != nil {
		return nil, err
	}

	a, err := api.New(service)

	if err != nil {
		return nil, err
	}

	s := &Server{
		Config: cfg,

		web: w,
		api: a,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if cfg.Debug {
		r.Use(requestLogger)
	}

	if cfg.Share {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
	}

	r.Use(middleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {
		s.api.Attach(r)
	})

	s.web.Attach(r)

	s.handler = otelhttp.NewHandler(r, "paddleocr-ui",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe blocks until the context is done and the server has shut down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Address(),
		Handler: s,

		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)

	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err

	case <-ctx.Done():
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		return nil
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			slog.DebugContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
