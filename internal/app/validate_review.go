package app

import (
	"strings"

	"veristay/internal/domain"
)

const (
	minRating = 1
	maxRating = 5
)

// ValidateReviewCreate checks a POST /api/hostels/{id}/reviews body.
func ValidateReviewCreate(input any) (domain.ReviewInput, error) {
	data, err := asObject(input)
	if err != nil {
		return domain.ReviewInput{}, err
	}

	var in domain.ReviewInput
	switch v := data["user_id"].(type) {
	case nil:
		return domain.ReviewInput{}, domain.Invalid("User ID is required")
	case string:
		in.UserID = strings.TrimSpace(v)
		if in.UserID == "" {
			return domain.ReviewInput{}, domain.Invalid("User ID is required")
		}
	default:
		return domain.ReviewInput{}, domain.Invalid("User ID must be a string")
	}

	raw, ok := data["rating"]
	if !ok || raw == nil {
		return domain.ReviewInput{}, domain.Invalid("Rating is required")
	}
	if in.Rating, ok = toFloat64(raw); !ok {
		return domain.ReviewInput{}, domain.Invalid("Rating must be a number")
	}
	if !(in.Rating >= minRating && in.Rating <= maxRating) {
		return domain.ReviewInput{}, domain.Invalid("Rating must be between 1 and 5")
	}

	if v, ok := data["comment"]; ok {
		s, ok := v.(string)
		if !ok {
			return domain.ReviewInput{}, domain.Invalid("Comment must be a string")
		}
		if charLen(s) > maxCommentLen {
			return domain.ReviewInput{}, domain.Invalid("Comment must be 1000 characters or less")
		}
		in.Comment = s
	}
	return in, nil
}
