// Package memory holds the in-memory stores behind the API. Each store owns
// its records and id counters; nothing is persisted across restarts.
package memory

import (
	"slices"
	"time"
)

// table is an insertion-ordered map keyed by a monotonically increasing id.
// It is not safe for concurrent use; stores guard it with their own mutex.
type table[T any] struct {
	rows   map[int64]*T
	order  []int64
	nextID int64
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[int64]*T), nextID: 1}
}

// insert allocates the next id and stores the row built for it.
func (t *table[T]) insert(build func(id int64) *T) *T {
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int64) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// remove deletes the row. The id is never handed out again.
func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if i := slices.Index(t.order, id); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return true
}

// each visits rows in insertion order.
func (t *table[T]) each(fn func(*T)) {
	for _, id := range t.order {
		fn(t.rows[id])
	}
}

func (t *table[T]) len() int { return len(t.rows) }

func (t *table[T]) reset() {
	clear(t.rows)
	t.order = t.order[:0]
	t.nextID = 1
}

type options struct {
	now func() time.Time
}

// Option configures a store.
type Option func(*options)

// WithClock overrides the time source used for created_at / updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
