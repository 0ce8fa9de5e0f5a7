package domain

import "time"

type Hostel struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	PriceMin   int64     `json:"price_min"`
	PriceMax   int64     `json:"price_max"`
	Lat        float64   `json:"lat"`
	Long       float64   `json:"long"`
	Amenities  []string  `json:"amenities"`
	Images     []string  `json:"images"`
	IsVerified bool      `json:"is_verified"`
	Reviews    []Review  `json:"reviews"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HostelInput is a validated create request.
type HostelInput struct {
	Name       string
	Address    string
	PriceMin   int64
	PriceMax   int64
	Lat        float64
	Long       float64
	Amenities  []string
	Images     []string
	IsVerified bool
}

// HostelPatch carries only the fields present in an update request.
// PriceMin and PriceMax are not checked against each other here.
type HostelPatch struct {
	Name       *string
	Address    *string
	PriceMin   *int64
	PriceMax   *int64
	Lat        *float64
	Long       *float64
	Amenities  *[]string
	Images     *[]string
	IsVerified *bool
}
