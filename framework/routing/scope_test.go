package routing_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/km-arc/go-discover/framework/container"
	"github.com/km-arc/go-discover/framework/routing"
)

// Non-zero-sized so each construction gets its own address.
type tracer struct {
	id int
}

type counter struct {
	n int
}

func newRouter(t *testing.T) (*routing.Router, *container.Container) {
	t.Helper()

	c := container.New()
	if err := c.RegisterScoped(reflect.TypeOf((**tracer)(nil)).Elem(), reflect.TypeOf((**tracer)(nil)).Elem()); err != nil {
		t.Fatalf("register tracer: %v", err)
	}
	if err := c.RegisterSingleton(reflect.TypeOf((**counter)(nil)).Elem(), reflect.TypeOf((**counter)(nil)).Elem()); err != nil {
		t.Fatalf("register counter: %v", err)
	}

	r := routing.New()
	r.Middleware(routing.ScopeMiddleware(c))
	return r, c
}

func get(t *testing.T, h http.Handler, path string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d", path, rec.Code)
	}
	return rec.Body.String()
}

func TestScopeMiddleware_ProvidesScope(t *testing.T) {
	r, _ := newRouter(t)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		if routing.ScopeFrom(req) == nil {
			http.Error(w, "no scope", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	get(t, r, "/")
}

func TestScopeMiddleware_SameInstanceWithinRequest(t *testing.T) {
	r, _ := newRouter(t)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		sc := routing.ScopeFrom(req)
		first := container.MustResolve[*tracer](sc)
		second := container.MustResolve[*tracer](sc)
		fmt.Fprintf(w, "%t", first == second)
	})

	if body := get(t, r, "/"); body != "true" {
		t.Error("two resolutions in one request returned different instances")
	}
}

func TestScopeMiddleware_FreshScopePerRequest(t *testing.T) {
	r, _ := newRouter(t)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		sc := routing.ScopeFrom(req)
		fmt.Fprintf(w, "%p", container.MustResolve[*tracer](sc))
	})

	if first, second := get(t, r, "/"), get(t, r, "/"); first == second {
		t.Error("two requests observed the same scoped instance")
	}
}

func TestScopeMiddleware_SingletonSharedAcrossRequests(t *testing.T) {
	r, _ := newRouter(t)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		sc := routing.ScopeFrom(req)
		fmt.Fprintf(w, "%p", container.MustResolve[*counter](sc))
	})

	if first, second := get(t, r, "/"), get(t, r, "/"); first != second {
		t.Error("two requests observed different singleton instances")
	}
}

func TestScopeFrom_NilWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if routing.ScopeFrom(req) != nil {
		t.Error("expected nil scope without the middleware")
	}
}
