package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"veristay/internal/domain"
)

// Options configures the router. Zero values fall back to defaults; a nil
// Idempotency cache disables replay of POST requests.
type Options struct {
	Logger         zerolog.Logger
	Timeout        time.Duration
	MaxBodyBytes   int64
	CORSOrigins    []string
	Idempotency    domain.Cache
	IdempotencyTTL time.Duration
}

type Server struct {
	mux  *chi.Mux
	idem func(http.Handler) http.Handler
}

func New(o Options) *Server {
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
	if len(o.CORSOrigins) == 0 {
		o.CORSOrigins = []string{"*"}
	}

	m := chi.NewRouter()

	// All middlewares go here (before any routes are added).
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(CORS(o.CORSOrigins))
	m.Use(Metrics)
	m.Use(Logger(o.Logger))
	m.Use(Recoverer)
	m.Use(Timeout(o.Timeout))
	m.Use(MaxBodySize(o.MaxBodyBytes))

	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return &Server{mux: m, idem: Idempotency(o.Idempotency, o.IdempotencyTTL)}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
