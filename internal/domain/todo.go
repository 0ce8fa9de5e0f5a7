package domain

import "time"

// Todo is a single todo item. ID, CreatedAt and UpdatedAt are owned by the store.
type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TodoInput is a validated create request.
type TodoInput struct {
	Title       string
	Description string
}

// TodoPatch is a validated update request. Nil fields keep their stored value.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}
