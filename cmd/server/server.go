package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/example/java-service/internal/apiinfo"
	"github.com/example/java-service/internal/http/health"
	"github.com/example/java-service/internal/http/v1/routes"
	"github.com/example/java-service/internal/platform/config"
	applog "github.com/example/java-service/internal/platform/logging"
	"github.com/example/java-service/internal/platform/metrics"
	appmiddleware "github.com/example/java-service/internal/platform/middleware"
	"github.com/example/java-service/internal/platform/respond"
)

// newRouter assembles the middleware stack, operational endpoints and the
// documented API. The returned huma.API exposes the generated OpenAPI document.
func newRouter(cfg *config.Config, desc apiinfo.ServiceDescriptor, m *metrics.Metrics, startedAt time.Time) (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(cfg.Docs.Path),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For. Only deploy behind a
		// proxy that overwrites those headers.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		applog.RequestLogger(),
		applog.AccessLogger(),
		m.Middleware(),
		respond.Recoverer(),
	)

	healthHandler := health.Handler(desc.Version)
	router.Get("/health", healthHandler)
	router.Head("/health", healthHandler)
	router.Method(http.MethodGet, "/metrics", m.Handler())

	api := humachi.New(router, desc.HumaConfig(cfg.Docs.Path))
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)
	routes.Register(api, desc, startedAt)
	return router, api
}

// addCBORContent documents application/cbor wherever application/json is
// accepted or produced, since the CBOR format is registered for negotiation.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// runServer serves until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down within the configured timeout.
func runServer(ctx context.Context, cfg *config.Config, desc apiinfo.ServiceDescriptor) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, _ := newRouter(cfg, desc, metrics.New(), time.Now())
	srv := newHTTPServer(cfg.Addr(), router)

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening",
			zap.String("addr", srv.Addr),
			zap.String("title", desc.Title),
			zap.String("version", desc.Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}
