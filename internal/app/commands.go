package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"veristay/internal/domain"
)

// Every command validates the path id first, then the body, and only then
// touches the store. Errors wrap either domain.ErrValidation or domain.ErrNotFound.

func (s *TodoService) Create(ctx context.Context, body any) (domain.Todo, error) {
	in, err := ValidateTodoCreate(body)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("app.TodoService.Create: %w", err)
	}
	t := s.repo.Create(in)
	s.observe()
	zerolog.Ctx(ctx).Debug().Int64("todo_id", t.ID).Msg("todo created")
	return t, nil
}

func (s *TodoService) Update(ctx context.Context, rawID string, body any) (domain.Todo, error) {
	id, err := ValidateID("Todo", rawID)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("app.TodoService.Update: %w", err)
	}
	p, err := ValidateTodoUpdate(body)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("app.TodoService.Update: %w", err)
	}
	t, ok := s.repo.Update(id, p)
	if !ok {
		return domain.Todo{}, fmt.Errorf("app.TodoService.Update: todo %d: %w", id, domain.ErrNotFound)
	}
	zerolog.Ctx(ctx).Debug().Int64("todo_id", t.ID).Msg("todo updated")
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, rawID string) error {
	id, err := ValidateID("Todo", rawID)
	if err != nil {
		return fmt.Errorf("app.TodoService.Delete: %w", err)
	}
	if !s.repo.Delete(id) {
		return fmt.Errorf("app.TodoService.Delete: todo %d: %w", id, domain.ErrNotFound)
	}
	s.observe()
	zerolog.Ctx(ctx).Debug().Int64("todo_id", id).Msg("todo deleted")
	return nil
}

func (s *HostelService) Create(ctx context.Context, body any) (domain.Hostel, error) {
	in, err := ValidateHostelCreate(body)
	if err != nil {
		return domain.Hostel{}, fmt.Errorf("app.HostelService.Create: %w", err)
	}
	h := s.repo.Create(in)
	s.observe()
	zerolog.Ctx(ctx).Debug().Int64("hostel_id", h.ID).Msg("hostel created")
	return h, nil
}

func (s *HostelService) Update(ctx context.Context, rawID string, body any) (domain.Hostel, error) {
	id, err := ValidateID("Hostel", rawID)
	if err != nil {
		return domain.Hostel{}, fmt.Errorf("app.HostelService.Update: %w", err)
	}
	p, err := ValidateHostelUpdate(body)
	if err != nil {
		return domain.Hostel{}, fmt.Errorf("app.HostelService.Update: %w", err)
	}
	h, ok := s.repo.Update(id, p)
	if !ok {
		return domain.Hostel{}, fmt.Errorf("app.HostelService.Update: hostel %d: %w", id, domain.ErrNotFound)
	}
	zerolog.Ctx(ctx).Debug().Int64("hostel_id", h.ID).Msg("hostel updated")
	return h, nil
}

func (s *HostelService) Delete(ctx context.Context, rawID string) error {
	id, err := ValidateID("Hostel", rawID)
	if err != nil {
		return fmt.Errorf("app.HostelService.Delete: %w", err)
	}
	if !s.repo.Delete(id) {
		return fmt.Errorf("app.HostelService.Delete: hostel %d: %w", id, domain.ErrNotFound)
	}
	s.observe()
	zerolog.Ctx(ctx).Debug().Int64("hostel_id", id).Msg("hostel deleted")
	return nil
}

// AddReview appends a review to an existing hostel.
func (s *HostelService) AddReview(ctx context.Context, rawID string, body any) (domain.Review, error) {
	id, err := ValidateID("Hostel", rawID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("app.HostelService.AddReview: %w", err)
	}
	in, err := ValidateReviewCreate(body)
	if err != nil {
		return domain.Review{}, fmt.Errorf("app.HostelService.AddReview: %w", err)
	}
	rv, ok := s.repo.AddReview(id, in)
	if !ok {
		return domain.Review{}, fmt.Errorf("app.HostelService.AddReview: hostel %d: %w", id, domain.ErrNotFound)
	}
	zerolog.Ctx(ctx).Debug().Int64("hostel_id", id).Int64("review_id", rv.ID).Msg("review added")
	return rv, nil
}
