package httpx

import (
	"encoding/json"
	"github.com/ariefcatur/go-shop-demo/internal/shop"
	"github.com/go-chi/chi/v5"
	"net/http"
)

// DemoHandler serves the canned demo responses. It carries no mutable
// state; build it once and let every request share it.
type DemoHandler struct {
	users []shop.User
}

func NewDemoHandler() *DemoHandler {
	return &DemoHandler{
		users: []shop.User{
			shop.NewUser("Alice", "alice@example.com", 30),
			shop.NewUser("Bob", "bob@example.com", 17),
		},
	}
}

// Register mounts the demo routes. Dispatch is keyed on path alone: the
// method plays no part, and every unknown path gets the plain 404.
func (h *DemoHandler) Register(r *chi.Mux) {
	r.HandleFunc("/", h.home)
	r.HandleFunc("/api/users", h.listUsers)
	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.notFound)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

func (h *DemoHandler) home(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Hello World")
}

func (h *DemoHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	out := make([]shop.Map, 0, len(h.users))
	for _, u := range h.users {
		out = append(out, u.ToMap())
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *DemoHandler) notFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusNotFound, "Not Found")
}
