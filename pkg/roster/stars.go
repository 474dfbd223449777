package roster

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	StarFilled = '★'
	StarEmpty  = '☆'
	MaxStars   = 5
)

var ErrInvalidStars = errors.New("invalid satisfaction bar")

// Stars renders a rating as a five-symbol bar. Ratings outside 0-5 are
// clamped.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > MaxStars {
		rating = MaxStars
	}
	return strings.Repeat(string(StarFilled), rating) + strings.Repeat(string(StarEmpty), MaxStars-rating)
}

// ParseStars recovers the rating from a bar produced by Stars.
func ParseStars(bar string) (int, error) {
	if n := utf8.RuneCountInString(bar); n != MaxStars {
		return 0, fmt.Errorf("%w: %d symbols, want %d", ErrInvalidStars, n, MaxStars)
	}
	rating := 0
	seenEmpty := false
	for _, r := range bar {
		switch r {
		case StarFilled:
			if seenEmpty {
				return 0, fmt.Errorf("%w: filled symbol after empty one", ErrInvalidStars)
			}
			rating++
		case StarEmpty:
			seenEmpty = true
		default:
			return 0, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidStars, r)
		}
	}
	return rating, nil
}
