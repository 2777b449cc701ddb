// Package ranged_search provides a binary search over an explicit,
// inclusive range of a sorted sequence, driven by a three-way comparator.
package ranged_search

// BinarySearch searches the sorted slice s for value within rng,
// using cmp to compare value against the elements.
//
// It returns Match(i) for an index i in rng with cmp(value, s[i]) == OrderingEqual,
// or NoMatch(i) if there is none, where i is the last index examined;
// it's adjacent to the position value would be inserted at, but it's not that position,
// use InsertionIndex for that.
//
// BinarySearch panics with an *InvalidRangeError if rng is out of s,
// see TryBinarySearch for a non-panicking variant.
func BinarySearch[S ~[]T, K, T any](s S, value K, rng SearchRange, cmp func(K, T) Ordering, opts ...SearchOption) SearchResult {
	r, err := TryBinarySearch(s, value, rng, cmp, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// TryBinarySearch is the same as BinarySearch,
// but returns an error wrapping ErrInvalidRange instead of panicking.
func TryBinarySearch[S ~[]T, K, T any](s S, value K, rng SearchRange, cmp func(K, T) Ordering, opts ...SearchOption) (SearchResult, error) {
	return TryBinarySearchFunc(len(s), rng, func(i int) Ordering {
		return cmp(value, s[i])
	}, opts...)
}

// BinarySearchFunc searches a sorted sequence of length n within rng,
// where f(i) compares the sought value against the element at index i.
//
// It's the same as BinarySearch for sequences that are not slices.
func BinarySearchFunc(n int, rng SearchRange, f func(i int) Ordering, opts ...SearchOption) SearchResult {
	r, err := TryBinarySearchFunc(n, rng, f, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// TryBinarySearchFunc is the same as BinarySearchFunc,
// but returns an error wrapping ErrInvalidRange instead of panicking.
func TryBinarySearchFunc(n int, rng SearchRange, f func(i int) Ordering, opts ...SearchOption) (SearchResult, error) {
	if err := rng.Validate(n); err != nil {
		return SearchResult{}, err
	}

	var o _SearchOptions
	for _, opt := range opts {
		opt(&o)
	}

	// The upper bound goes to -1 when the value sorts before index 0,
	// so both bounds stay signed.
	l, u := rng.Lower, rng.Upper
	var i int
	for l <= u {
		i = int(uint(l+u) >> 1)
		ord := f(i)
		if o.ProbeHook != nil {
			o.ProbeHook(i, ord)
		}
		switch {
		case ord < OrderingEqual:
			u = i - 1
		case ord > OrderingEqual:
			l = i + 1
		default:
			return Match(i), nil
		}
	}
	return NoMatch(i), nil
}
