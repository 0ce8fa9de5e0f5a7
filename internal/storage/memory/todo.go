package memory

import (
	"sync"

	"veristay/internal/domain"
)

// TodoStore is the in-memory todo collection.
type TodoStore struct {
	mu   sync.RWMutex
	rows table[domain.Todo]
	opts options
}

var _ domain.TodoRepository = (*TodoStore)(nil)

func NewTodoStore(opts ...Option) *TodoStore {
	return &TodoStore{rows: newTable[domain.Todo](), opts: buildOptions(opts)}
}

// Create stores a todo built from already validated input.
func (s *TodoStore) Create(in domain.TodoInput) domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.now()
	row := s.rows.insert(func(id int64) *domain.Todo {
		return &domain.Todo{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
	return *row
}

// List returns every todo in insertion order. The result is never nil.
func (s *TodoStore) List() []domain.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Todo, 0, s.rows.len())
	s.rows.each(func(t *domain.Todo) { out = append(out, *t) })
	return out
}

func (s *TodoStore) Get(id int64) (domain.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows.get(id)
	if !ok {
		return domain.Todo{}, false
	}
	return *row, true
}

// Update applies the non-nil fields of p and always refreshes UpdatedAt.
func (s *TodoStore) Update(id int64, p domain.TodoPatch) (domain.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows.get(id)
	if !ok {
		return domain.Todo{}, false
	}
	if p.Title != nil {
		row.Title = *p.Title
	}
	if p.Description != nil {
		row.Description = *p.Description
	}
	if p.Completed != nil {
		row.Completed = *p.Completed
	}
	row.UpdatedAt = s.opts.now()
	return *row, true
}

func (s *TodoStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows.remove(id)
}

func (s *TodoStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows.len()
}

// Clear drops every todo and restarts ids at 1. Test isolation only.
func (s *TodoStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows.reset()
}
