package app

import "veristay/internal/domain"

// Store names used for the records gauge.
const (
	TodoStoreName   = "todos"
	HostelStoreName = "hostels"
)

// TodoService validates todo requests and applies them to the store.
type TodoService struct {
	repo  domain.TodoRepository
	gauge domain.RecordsGauge
}

// NewTodoService builds a TodoService. gauge may be nil.
func NewTodoService(r domain.TodoRepository, g domain.RecordsGauge) *TodoService {
	s := &TodoService{repo: r, gauge: g}
	s.observe()
	return s
}

func (s *TodoService) observe() {
	if s.gauge != nil {
		s.gauge.SetRecords(TodoStoreName, s.repo.Len())
	}
}

// HostelService validates hostel and review requests and applies them to the store.
type HostelService struct {
	repo  domain.HostelRepository
	gauge domain.RecordsGauge
}

// NewHostelService builds a HostelService. gauge may be nil.
func NewHostelService(r domain.HostelRepository, g domain.RecordsGauge) *HostelService {
	s := &HostelService{repo: r, gauge: g}
	s.observe()
	return s
}

func (s *HostelService) observe() {
	if s.gauge != nil {
		s.gauge.SetRecords(HostelStoreName, s.repo.Len())
	}
}
