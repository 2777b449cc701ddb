package ranged_search

import (
	"errors"
	"fmt"

	"github.com/gpustack/ranged-search-go/util/json"
)

// ErrInvalidRange is returned when a SearchRange does not fit the sequence.
var ErrInvalidRange = errors.New("invalid search range")

// SearchRange delimits the part of a sequence to search,
// both Lower and Upper are inclusive zero-based indices.
type SearchRange struct {
	// Lower is the first index to search.
	Lower int `json:"lower"`
	// Upper is the last index to search.
	Upper int `json:"upper"`
}

// FullRange returns the SearchRange covering a sequence of length n.
//
// The result is invalid for an empty sequence.
func FullRange(n int) SearchRange {
	return SearchRange{Lower: 0, Upper: n - 1}
}

// Len returns the number of indices covered by the range.
func (r SearchRange) Len() int {
	if r.Upper < r.Lower {
		return 0
	}
	return r.Upper - r.Lower + 1
}

// Contains reports whether the index is within the range.
func (r SearchRange) Contains(i int) bool {
	return r.Lower <= i && i <= r.Upper
}

// Validate checks the range against a sequence of length n,
// it returns an *InvalidRangeError unless 0 <= Lower <= Upper < n.
func (r SearchRange) Validate(n int) error {
	if r.Lower < 0 || r.Upper < r.Lower || r.Upper >= n {
		return &InvalidRangeError{Range: r, Length: n}
	}
	return nil
}

func (r SearchRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lower, r.Upper)
}

// MarshalJSON implements json.Marshaler.
func (r SearchRange) MarshalJSON() ([]byte, error) {
	type plain SearchRange
	return json.Marshal(plain(r))
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SearchRange) UnmarshalJSON(b []byte) error {
	type plain SearchRange
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("unmarshal search range: %w", err)
	}
	*r = SearchRange(p)
	return nil
}

// InvalidRangeError describes a SearchRange that does not fit the sequence.
type InvalidRangeError struct {
	Range  SearchRange
	Length int
}

func (e *InvalidRangeError) Error() string {
	switch {
	case e.Range.Lower < 0:
		return fmt.Sprintf("%s: lower %d is negative", ErrInvalidRange, e.Range.Lower)
	case e.Range.Upper < e.Range.Lower:
		return fmt.Sprintf("%s: upper %d is less than lower %d", ErrInvalidRange, e.Range.Upper, e.Range.Lower)
	default:
		return fmt.Sprintf("%s: upper %d is out of length %d", ErrInvalidRange, e.Range.Upper, e.Length)
	}
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}
