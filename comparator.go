package ranged_search

import "golang.org/x/exp/constraints"

// Comparator compares the sought key against an element of the sequence,
// it must be pure and consistent with the order of the sequence.
//
// OrderingLess means the key sorts before the element,
// OrderingGreater means the key sorts after the element.
type Comparator[K, T any] func(key K, elem T) Ordering

// CompareOrdered compares two ordered values.
func CompareOrdered[K constraints.Ordered](a, b K) Ordering {
	switch {
	case a < b:
		return OrderingLess
	case a > b:
		return OrderingGreater
	default:
		return OrderingEqual
	}
}

// CompareFunc adapts a cmp.Compare style function to a Comparator.
func CompareFunc[K, T any](f func(K, T) int) Comparator[K, T] {
	return func(key K, elem T) Ordering {
		return OrderingOf(f(key, elem))
	}
}

// CompareBy returns a Comparator that compares the key
// against the key extracted from each element.
func CompareBy[K constraints.Ordered, T any](key func(T) K) Comparator[K, T] {
	return func(k K, elem T) Ordering {
		return CompareOrdered(k, key(elem))
	}
}

// Reverse returns a Comparator for sequences sorted in descending order of c.
func Reverse[K, T any](c Comparator[K, T]) Comparator[K, T] {
	return func(key K, elem T) Ordering {
		return c(key, elem).Reverse()
	}
}

// KeyValuePair holds a value sorted by its key.
type KeyValuePair[K constraints.Ordered, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// CompareKeys compares the key against the key of the pair,
// it panics if the pair is nil.
func CompareKeys[K constraints.Ordered, V any](key K, kv *KeyValuePair[K, V]) Ordering {
	if kv == nil {
		panic("ranged_search: nil key value pair")
	}
	return CompareOrdered(key, kv.Key)
}
