package ranged_search

// Ordering is the result of comparing a sought key against an element.
type Ordering int8

// Ordering constants.
const (
	OrderingLess    Ordering = iota - 1 // Less
	OrderingEqual                       // Equal
	OrderingGreater                     // Greater
)

// OrderingOf converts a cmp.Compare style result,
// negative, zero or positive, to an Ordering.
func OrderingOf(n int) Ordering {
	switch {
	case n < 0:
		return OrderingLess
	case n > 0:
		return OrderingGreater
	default:
		return OrderingEqual
	}
}

// Reverse returns the opposite Ordering,
// OrderingLess becomes OrderingGreater and vice versa.
//
// Out-of-band values are read by sign, so the result is always a constant.
func (o Ordering) Reverse() Ordering {
	return OrderingOf(-int(o))
}
