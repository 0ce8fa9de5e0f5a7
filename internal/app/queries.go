package app

import (
	"context"
	"fmt"

	"veristay/internal/domain"
)

// List returns every todo in insertion order.
func (s *TodoService) List(ctx context.Context) []domain.Todo {
	return s.repo.List()
}

func (s *TodoService) Get(ctx context.Context, rawID string) (domain.Todo, error) {
	id, err := ValidateID("Todo", rawID)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("app.TodoService.Get: %w", err)
	}
	t, ok := s.repo.Get(id)
	if !ok {
		return domain.Todo{}, fmt.Errorf("app.TodoService.Get: todo %d: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

// List returns every hostel in insertion order, verified or not.
func (s *HostelService) List(ctx context.Context) []domain.Hostel {
	return s.repo.List()
}

func (s *HostelService) Get(ctx context.Context, rawID string) (domain.Hostel, error) {
	id, err := ValidateID("Hostel", rawID)
	if err != nil {
		return domain.Hostel{}, fmt.Errorf("app.HostelService.Get: %w", err)
	}
	h, ok := s.repo.Get(id)
	if !ok {
		return domain.Hostel{}, fmt.Errorf("app.HostelService.Get: hostel %d: %w", id, domain.ErrNotFound)
	}
	return h, nil
}

// ListReviews returns the hostel's reviews, oldest first.
func (s *HostelService) ListReviews(ctx context.Context, rawID string) ([]domain.Review, error) {
	id, err := ValidateID("Hostel", rawID)
	if err != nil {
		return nil, fmt.Errorf("app.HostelService.ListReviews: %w", err)
	}
	rs, ok := s.repo.Reviews(id)
	if !ok {
		return nil, fmt.Errorf("app.HostelService.ListReviews: hostel %d: %w", id, domain.ErrNotFound)
	}
	return rs, nil
}
