package domain

import "context"

// TodoRepository is the storage contract for todos. Operations never fail;
// a missing record is reported through the bool result.
type TodoRepository interface {
	Create(in TodoInput) Todo
	List() []Todo
	Get(id int64) (Todo, bool)
	Update(id int64, p TodoPatch) (Todo, bool)
	Delete(id int64) bool
	Len() int
}

// HostelRepository is the storage contract for hostels and their reviews.
type HostelRepository interface {
	Create(in HostelInput) Hostel
	List() []Hostel
	Get(id int64) (Hostel, bool)
	Update(id int64, p HostelPatch) (Hostel, bool)
	Delete(id int64) bool
	Len() int

	AddReview(hostelID int64, in ReviewInput) (Review, bool)
	Reviews(hostelID int64) ([]Review, bool)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// RecordsGauge receives the live record count of a store after each mutation.
type RecordsGauge interface {
	SetRecords(store string, n int)
}

// HostelAPI is a running Veristay API as seen by the seeder. key is sent as
// the Idempotency-Key header so retried calls do not create duplicates.
type HostelAPI interface {
	CreateHostel(ctx context.Context, in HostelInput, key string) (Hostel, error)
	AddReview(ctx context.Context, hostelID int64, in ReviewInput, key string) (Review, error)
}
