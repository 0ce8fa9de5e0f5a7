package httpserver

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"veristay/internal/domain"
)

// TodoService is what the todo routes need from the app layer.
type TodoService interface {
	List(ctx context.Context) []domain.Todo
	Get(ctx context.Context, rawID string) (domain.Todo, error)
	Create(ctx context.Context, body any) (domain.Todo, error)
	Update(ctx context.Context, rawID string, body any) (domain.Todo, error)
	Delete(ctx context.Context, rawID string) error
}

// HostelService is what the hostel and review routes need from the app layer.
type HostelService interface {
	List(ctx context.Context) []domain.Hostel
	Get(ctx context.Context, rawID string) (domain.Hostel, error)
	Create(ctx context.Context, body any) (domain.Hostel, error)
	Update(ctx context.Context, rawID string, body any) (domain.Hostel, error)
	Delete(ctx context.Context, rawID string) error
	AddReview(ctx context.Context, rawID string, body any) (domain.Review, error)
	ListReviews(ctx context.Context, rawID string) ([]domain.Review, error)
}

type Handlers struct {
	Todos   TodoService
	Hostels HostelService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", h.home)
	s.mux.Get("/api/health", h.health)

	s.mux.Route("/api/todos", func(r chi.Router) {
		r.Get("/", h.listTodos)
		r.With(s.idem).Post("/", h.createTodo)
		r.Get("/{id}", h.getTodo)
		r.Put("/{id}", h.updateTodo)
		r.Delete("/{id}", h.deleteTodo)
	})

	s.mux.Route("/api/hostels", func(r chi.Router) {
		r.Get("/", h.listHostels)
		r.With(s.idem).Post("/", h.createHostel)
		r.Get("/{id}", h.getHostel)
		r.Put("/{id}", h.updateHostel)
		r.Delete("/{id}", h.deleteHostel)
		r.Get("/{id}/reviews", h.listReviews)
		r.With(s.idem).Post("/{id}/reviews", h.addReview)
	})
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Veristay Backend!"})
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "veristay-backend"})
}
