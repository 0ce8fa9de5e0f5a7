// Package app holds the validation rules and the services that sit between
// the HTTP adapter and the stores. Validators turn untyped request bodies into
// domain input structs and fail on the first rule that is broken.
package app

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"veristay/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxCommentLen     = 1000
)

// ValidateID parses a path id. kind names the resource in the message,
// e.g. "Todo ID must be a positive integer". An integer too large for int64
// can name no stored record and is reported as not found.
func ValidateID(kind, raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return 0, domain.Invalidf("%s ID must be a positive integer", kind)
		}
		return 0, fmt.Errorf("%s ID %s: %w", kind, s, domain.ErrNotFound)
	}
	if err != nil {
		return 0, domain.Invalidf("%s ID must be a valid integer", kind)
	}
	if n < 1 {
		return 0, domain.Invalidf("%s ID must be a positive integer", kind)
	}
	return n, nil
}

func requireNonEmpty(data map[string]any) error {
	if len(data) == 0 {
		return domain.Invalid("At least one field must be provided for update")
	}
	return nil
}

// unexpectedFields lists keys of data outside allowed, sorted.
func unexpectedFields(data map[string]any, allowed ...string) []string {
	var out []string
	for k := range data {
		known := false
		for _, a := range allowed {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
