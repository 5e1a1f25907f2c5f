package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/example/java-service/internal/apiinfo"
	applog "github.com/example/java-service/internal/platform/logging"
	appmiddleware "github.com/example/java-service/internal/platform/middleware"
	"github.com/example/java-service/internal/platform/respond"
)

func newTestAPI() (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	desc := apiinfo.New("test")
	api := humachi.New(router, desc.HumaConfig("/api-docs"))
	Register(api, desc, time.Now())
	return router, api
}

func TestRegisterRoutes(t *testing.T) {
	router, _ := newTestAPI()

	for _, path := range []string{"/api/hello", "/api/info"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(chimiddleware.RequestIDHeader, "routes-test")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestRegisterDocumentsOnlyAPIRoutes(t *testing.T) {
	_, api := newTestAPI()

	paths := api.OpenAPI().Paths
	if len(paths) != 2 {
		t.Fatalf("expected 2 documented paths, got %d", len(paths))
	}
	for _, p := range []string{"/api/hello", "/api/info"} {
		if item, ok := paths[p]; !ok || item.Get == nil {
			t.Fatalf("expected GET %s to be documented", p)
		}
	}
}
