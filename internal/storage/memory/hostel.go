package memory

import (
	"slices"
	"sync"

	"veristay/internal/domain"
)

// HostelStore is the in-memory hostel collection. Reviews live inside their
// hostel but draw ids from one sequence shared by the whole store.
type HostelStore struct {
	mu           sync.RWMutex
	rows         table[domain.Hostel]
	nextReviewID int64
	opts         options
}

var _ domain.HostelRepository = (*HostelStore)(nil)

func NewHostelStore(opts ...Option) *HostelStore {
	return &HostelStore{
		rows:         newTable[domain.Hostel](),
		nextReviewID: 1,
		opts:         buildOptions(opts),
	}
}

func (s *HostelStore) Create(in domain.HostelInput) domain.Hostel {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.now()
	row := s.rows.insert(func(id int64) *domain.Hostel {
		return &domain.Hostel{
			ID:         id,
			Name:       in.Name,
			Address:    in.Address,
			PriceMin:   in.PriceMin,
			PriceMax:   in.PriceMax,
			Lat:        in.Lat,
			Long:       in.Long,
			Amenities:  cloneStrings(in.Amenities),
			Images:     cloneStrings(in.Images),
			IsVerified: in.IsVerified,
			Reviews:    []domain.Review{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	})
	return cloneHostel(row)
}

// List returns every hostel in insertion order. Verified-only filtering is
// not applied here.
func (s *HostelStore) List() []domain.Hostel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Hostel, 0, s.rows.len())
	s.rows.each(func(h *domain.Hostel) { out = append(out, cloneHostel(h)) })
	return out
}

func (s *HostelStore) Get(id int64) (domain.Hostel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows.get(id)
	if !ok {
		return domain.Hostel{}, false
	}
	return cloneHostel(row), true
}

// Update applies the fields present in p and refreshes UpdatedAt. Prices are
// taken as given: a patch may leave PriceMin above PriceMax.
func (s *HostelStore) Update(id int64, p domain.HostelPatch) (domain.Hostel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows.get(id)
	if !ok {
		return domain.Hostel{}, false
	}
	if p.Name != nil {
		row.Name = *p.Name
	}
	if p.Address != nil {
		row.Address = *p.Address
	}
	if p.PriceMin != nil {
		row.PriceMin = *p.PriceMin
	}
	if p.PriceMax != nil {
		row.PriceMax = *p.PriceMax
	}
	if p.Lat != nil {
		row.Lat = *p.Lat
	}
	if p.Long != nil {
		row.Long = *p.Long
	}
	if p.Amenities != nil {
		row.Amenities = cloneStrings(*p.Amenities)
	}
	if p.Images != nil {
		row.Images = cloneStrings(*p.Images)
	}
	if p.IsVerified != nil {
		row.IsVerified = *p.IsVerified
	}
	row.UpdatedAt = s.opts.now()
	return cloneHostel(row), true
}

func (s *HostelStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows.remove(id)
}

func (s *HostelStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows.len()
}

// AddReview appends a review to the hostel. An unknown hostel leaves the
// review sequence untouched. The hostel's UpdatedAt is not changed.
func (s *HostelStore) AddReview(hostelID int64, in domain.ReviewInput) (domain.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows.get(hostelID)
	if !ok {
		return domain.Review{}, false
	}
	rv := domain.Review{
		ID:        s.nextReviewID,
		UserID:    in.UserID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: s.opts.now(),
	}
	s.nextReviewID++
	row.Reviews = append(row.Reviews, rv)
	return rv, true
}

// Reviews returns a copy of the hostel's reviews in the order they were added.
func (s *HostelStore) Reviews(hostelID int64) ([]domain.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows.get(hostelID)
	if !ok {
		return nil, false
	}
	return cloneReviews(row.Reviews), true
}

// Clear drops every hostel and restarts both sequences at 1. Test isolation only.
func (s *HostelStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows.reset()
	s.nextReviewID = 1
}

func cloneHostel(h *domain.Hostel) domain.Hostel {
	out := *h
	out.Amenities = cloneStrings(h.Amenities)
	out.Images = cloneStrings(h.Images)
	out.Reviews = cloneReviews(h.Reviews)
	return out
}

// cloneStrings copies in; the result is never nil so it encodes as [].
func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}

func cloneReviews(in []domain.Review) []domain.Review {
	if in == nil {
		return []domain.Review{}
	}
	return slices.Clone(in)
}
