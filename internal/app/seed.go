package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"veristay/internal/domain"
)

// seedNamespace derives stable idempotency keys, so re-running the seeder
// against the same API does not duplicate hostels.
var seedNamespace = uuid.MustParse("6f1c2a0e-6a52-4c1f-9a43-5b7e0f1d2c3b")

// SeedEntry is one validated hostel from a seed file with its reviews.
type SeedEntry struct {
	Key     string
	Hostel  domain.HostelInput
	Reviews []domain.ReviewInput
}

// LoadSeed reads a JSON array of hostel objects. Each object may carry a
// "reviews" list; reviews without a user_id get an anonymous one. Every
// entry goes through the same validators as the API.
func LoadSeed(r io.Reader) ([]SeedEntry, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("app.LoadSeed: %w", err)
	}

	out := make([]SeedEntry, 0, len(raw))
	for i, item := range raw {
		reviews, ok := item["reviews"].([]any)
		if !ok && item["reviews"] != nil {
			return nil, fmt.Errorf("app.LoadSeed: entry %d: %w", i, domain.Invalid("Reviews must be a list"))
		}
		delete(item, "reviews")

		h, err := ValidateHostelCreate(item)
		if err != nil {
			return nil, fmt.Errorf("app.LoadSeed: entry %d: %w", i, err)
		}
		e := SeedEntry{
			Key:    uuid.NewSHA1(seedNamespace, []byte(h.Name+"\x00"+h.Address)).String(),
			Hostel: h,
		}
		for j, rv := range reviews {
			if m, ok := rv.(map[string]any); ok {
				if _, has := m["user_id"]; !has {
					m["user_id"] = "anon-" + uuid.NewString()
				}
			}
			in, err := ValidateReviewCreate(rv)
			if err != nil {
				return nil, fmt.Errorf("app.LoadSeed: entry %d review %d: %w", i, j, err)
			}
			e.Reviews = append(e.Reviews, in)
		}
		out = append(out, e)
	}
	return out, nil
}

// SeedReport counts what a seeding run did.
type SeedReport struct {
	Hostels int64
	Reviews int64
	Failed  int64
}

// SeedService pushes seed entries to a running API.
type SeedService struct {
	api     domain.HostelAPI
	workers int64
}

func NewSeedService(api domain.HostelAPI, workers int) *SeedService {
	if workers <= 0 {
		workers = 1
	}
	return &SeedService{api: api, workers: int64(workers)}
}

// Run seeds entries with at most workers in flight. A failing entry is
// logged and counted; only a cancelled ctx stops the run early.
func (s *SeedService) Run(ctx context.Context, entries []SeedEntry) (SeedReport, error) {
	var (
		rep SeedReport
		sem = semaphore.NewWeighted(s.workers)
		g   errgroup.Group
		lg  = zerolog.Ctx(ctx)
	)

	for _, e := range entries {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			_ = g.Wait()
			return rep, fmt.Errorf("app.SeedService.Run: %w", err)
		}
		g.Go(func() error {
			defer sem.Release(1)
			if err := s.seedOne(ctx, e, &rep); err != nil {
				atomic.AddInt64(&rep.Failed, 1)
				lg.Warn().Str("hostel", e.Hostel.Name).Err(err).Msg("seed failed")
				return nil
			}
			lg.Info().Str("hostel", e.Hostel.Name).Int("reviews", len(e.Reviews)).Msg("seed ok")
			return nil
		})
	}

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return rep, fmt.Errorf("app.SeedService.Run: %w", err)
	}
	return rep, nil
}

func (s *SeedService) seedOne(ctx context.Context, e SeedEntry, rep *SeedReport) error {
	h, err := s.api.CreateHostel(ctx, e.Hostel, e.Key)
	if err != nil {
		return err
	}
	atomic.AddInt64(&rep.Hostels, 1)

	for i, rv := range e.Reviews {
		key := e.Key + ":review:" + strconv.Itoa(i)
		if _, err := s.api.AddReview(ctx, h.ID, rv, key); err != nil {
			return fmt.Errorf("review %d: %w", i, err)
		}
		atomic.AddInt64(&rep.Reviews, 1)
	}
	return nil
}
