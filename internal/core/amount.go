// Package core holds the transaction domain model and the pure aggregation
// functions the dashboard and section views are derived from.
//
// This file contains amount parsing for user-entered values.
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts a user-entered amount string to a float64 value.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading sign. The sign is not meaningful to callers: the form that
// produced the draft fixes the direction and renormalizes via
// Direction.Normalize. Returns ErrInvalidAmount for empty, unparseable or
// zero input — zero-amount transactions are never permitted.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v == 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
