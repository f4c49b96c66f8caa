package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tfhive/internal/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zhulik/pal"
)

// HTTPServer serves /metrics and /health on the configured address.
type HTTPServer struct {
	Logger *slog.Logger
	Config *config.Config

	server *http.Server
	pal    *pal.Pal
}

func (s *HTTPServer) Init(ctx context.Context) error {
	s.Logger = s.Logger.With("component", "metrics.HTTPServer")
	s.pal = pal.FromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.pal.HealthCheck(r.Context()); err != nil {
			s.Logger.Error("Health check failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	s.server = &http.Server{
		Handler:           mux,
		Addr:              s.Config.MetricsAddr,
		ReadHeaderTimeout: time.Second,
	}
	return nil
}

func (s *HTTPServer) Run(ctx context.Context) error {
	s.Logger.Info("Starting metrics server", "addr", s.server.Addr)

	go func() {
		<-ctx.Done()
		s.server.Shutdown(context.TODO()) //nolint:errcheck
	}()

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
