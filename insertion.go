package ranged_search

import "github.com/gpustack/ranged-search-go/util/slicex"

// InsertionIndex returns the index within rng at which value would be inserted
// to keep s sorted, that is the first index i in [rng.Lower, rng.Upper+1]
// with cmp(value, s[i]) != OrderingGreater.
// The found result reports whether s[i] is equal to value.
//
// Unlike the NoMatch index of BinarySearch,
// the returned index does not depend on the search path.
//
// InsertionIndex panics with an *InvalidRangeError if rng is out of s.
func InsertionIndex[S ~[]T, K, T any](s S, value K, rng SearchRange, cmp func(K, T) Ordering) (index int, found bool) {
	if err := rng.Validate(len(s)); err != nil {
		panic(err)
	}

	sub := s[rng.Lower : rng.Upper+1]
	j := slicex.LowerBoundFunc(sub, value, func(e T, v K) int {
		return -int(cmp(v, e))
	})
	found = j < len(sub) && cmp(value, sub[j]) == OrderingEqual
	return rng.Lower + j, found
}
