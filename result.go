package ranged_search

import (
	"errors"
	"fmt"

	"github.com/gpustack/ranged-search-go/util/json"
)

// ErrUnknownResultKind is returned when decoding a SearchResult with an unknown kind.
var ErrUnknownResultKind = errors.New("unknown result kind")

// ResultKind tags a SearchResult.
type ResultKind uint8

// ResultKind constants.
const (
	ResultKindNoMatch ResultKind = iota // NoMatch
	ResultKindMatch                     // Match
)

// SearchResult is the outcome of a search,
// either a Match at an index or a NoMatch near an index.
//
// The zero value is NoMatch(0).
type SearchResult struct {
	kind  ResultKind
	index int
}

// Match returns a SearchResult for an element found at index i.
func Match(i int) SearchResult {
	return SearchResult{kind: ResultKindMatch, index: i}
}

// NoMatch returns a SearchResult for a search that found no element,
// i is the last index examined.
func NoMatch(i int) SearchResult {
	return SearchResult{kind: ResultKindNoMatch, index: i}
}

// Kind returns the tag of the result.
func (r SearchResult) Kind() ResultKind {
	return r.kind
}

// IsMatch reports whether the result is a Match.
func (r SearchResult) IsMatch() bool {
	return r.kind == ResultKindMatch
}

// Index returns the payload of the result,
// the matched index for a Match,
// or the last examined index for a NoMatch.
func (r SearchResult) Index() int {
	return r.index
}

// Get returns the index and whether the result is a Match,
// in the shape of a comma-ok expression.
func (r SearchResult) Get() (int, bool) {
	return r.index, r.kind == ResultKindMatch
}

func (r SearchResult) String() string {
	return fmt.Sprintf("%s(%d)", r.kind, r.index)
}

type _SearchResultJSON struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// MarshalJSON implements json.Marshaler.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(_SearchResultJSON{
		Kind:  r.kind.String(),
		Index: r.index,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SearchResult) UnmarshalJSON(b []byte) error {
	var v _SearchResultJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("unmarshal search result: %w", err)
	}
	switch v.Kind {
	case ResultKindMatch.String():
		*r = Match(v.Index)
	case ResultKindNoMatch.String():
		*r = NoMatch(v.Index)
	default:
		return fmt.Errorf("unmarshal search result: %w %q", ErrUnknownResultKind, v.Kind)
	}
	return nil
}
