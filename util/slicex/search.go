package slicex

import "golang.org/x/exp/constraints"

// UpperBound returns an index of the first element that is greater than value.
func UpperBound[T constraints.Integer | constraints.Float](s []T, e T) int {
	return UpperBoundFunc(s, e, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// LowerBound returns an index of the first element that is not less than value.
func LowerBound[T constraints.Integer | constraints.Float](s []T, e T) int {
	return LowerBoundFunc(s, e, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// LowerBoundFunc is the same as LowerBound,
// but compares the element with target by cmp,
// which returns a negative number if the element is less than target.
//
// It returns an index in [0, len(s)].
func LowerBoundFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) int {
	l, r := 0, len(s)
	for l < r {
		m := l + (r-l)/2
		if cmp(s[m], target) < 0 {
			l = m + 1
		} else {
			r = m
		}
	}
	return l
}

// UpperBoundFunc is the same as UpperBound,
// but compares the element with target by cmp,
// which returns a positive number if the element is greater than target.
//
// It returns an index in [0, len(s)].
func UpperBoundFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) int {
	l, r := 0, len(s)
	for l < r {
		m := l + (r-l)/2
		if cmp(s[m], target) <= 0 {
			l = m + 1
		} else {
			r = m
		}
	}
	return l
}
