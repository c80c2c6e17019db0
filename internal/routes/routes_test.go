package routes_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agentbridge/agentbridge/internal/routes"
	pkgroutes "github.com/agentbridge/agentbridge/pkg/routes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tagHandler(tag string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tag))
	}
}

func TestBuildRegistersRoutes(t *testing.T) {
	r := routes.New(testLogger())
	r.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/healthz", Handler: tagHandler("health")})
	r.RegisterGroup(pkgroutes.Group{
		Prefix: "/models",
		Routes: []pkgroutes.Route{
			{Method: "POST", Pattern: "", Handler: tagHandler("create")},
			{Method: "POST", Pattern: "/{id}/generate", Handler: tagHandler("generate")},
		},
	})

	mux := r.Build()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"top-level route", "GET", "/healthz", 200, "health"},
		{"group root", "POST", "/models", 200, "create"},
		{"group child with path value", "POST", "/models/m1/generate", 200, "generate"},
		{"method mismatch", "GET", "/models", 405, ""},
		{"unknown path", "POST", "/unknown", 404, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestBuildNestedGroups(t *testing.T) {
	r := routes.New(testLogger())
	r.RegisterGroup(pkgroutes.Group{
		Prefix: "/api",
		Children: []pkgroutes.Group{
			{
				Prefix: "/v1",
				Routes: []pkgroutes.Route{
					{Method: "GET", Pattern: "/ping", Handler: tagHandler("pong")},
				},
			},
		},
	})

	mux := r.Build()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "pong" {
		t.Errorf("body = %q, want pong", rec.Body.String())
	}
}
