package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-discover/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Verbs(t *testing.T) {
	tests := []struct {
		method   string
		register func(r *routing.Router)
		path     string
	}{
		{http.MethodGet, func(r *routing.Router) { r.Get("/x", okHandler) }, "/x"},
		{http.MethodPost, func(r *routing.Router) { r.Post("/x", okHandler) }, "/x"},
		{http.MethodPut, func(r *routing.Router) { r.Put("/x/{id}", okHandler) }, "/x/1"},
		{http.MethodPatch, func(r *routing.Router) { r.Patch("/x/{id}", okHandler) }, "/x/1"},
		{http.MethodDelete, func(r *routing.Router) { r.Delete("/x/{id}", okHandler) }, "/x/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			r := routing.New()
			tt.register(r)

			rr := do(t, r, tt.method, tt.path)
			if rr.Code != http.StatusOK {
				t.Errorf("%s %s: got %d want 200", tt.method, tt.path, rr.Code)
			}
		})
	}
}

// ── Prefix / Group / Param ───────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/users", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/api/v1/users"); rr.Code != http.StatusOK {
		t.Errorf("got %d want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/users"); rr.Code == http.StatusOK {
		t.Error("route leaked outside its prefix")
	}
}

func TestRouter_GroupMiddleware(t *testing.T) {
	r := routing.New()

	r.Get("/open", okHandler)
	r.Group(func(g *routing.Router) {
		g.Middleware(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})
		})
		g.Get("/guarded", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/guarded"); rr.Code != http.StatusTeapot {
		t.Errorf("group middleware not applied: got %d", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/open"); rr.Code != http.StatusOK {
		t.Errorf("group middleware leaked: got %d", rr.Code)
	}
}

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(routing.Param(req, "id")))
	})

	rr := do(t, r, http.MethodGet, "/users/42")
	if rr.Body.String() != "42" {
		t.Errorf("got %q want %q", rr.Body.String(), "42")
	}
}
