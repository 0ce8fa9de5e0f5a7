package domain

import "time"

// Review belongs to exactly one Hostel and is only reachable through it.
// IDs come from a sequence shared by every hostel in the same store.
type Review struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewInput struct {
	UserID  string
	Rating  float64
	Comment string
}
