package sorted

import "github.com/amp-labs/sortedvec/sortable"

// Keyed is a view over a vector whose elements carry a projected key. It
// runs the same search algorithms against the key instead of requiring a
// fully constructed element to search with, which matters when building an
// element is expensive or awkward.
//
// The key's ordering must be consistent with the ordering that keeps the
// underlying vector sorted: whenever a.LessThan(b), key(a) must not order
// after key(b). This is a caller obligation and is not verified.
//
// All other operations come from the embedded vector unchanged.
type Keyed[T sortable.Sortable[T], K sortable.Sortable[K]] struct {
	*Vector[T]

	key func(T) K
}

// NewKeyed creates a keyed view over v with the given key accessor. The
// view stores nothing of its own; it shares v's storage and state.
func NewKeyed[T sortable.Sortable[T], K sortable.Sortable[K]](
	v *Vector[T],
	key func(T) K,
) *Keyed[T, K] {
	return &Keyed[T, K]{
		Vector: v,
		key:    key,
	}
}

// FindKey returns the index of an element whose projected key equals k
// within the inclusive range, or None. The search mirrors Vector.Find:
// three-probe binary search on a clean vector, linear fallback on a dirty
// one.
func (kv *Keyed[T, K]) FindKey(k K, bounds ...int) int {
	start, end, ok := kv.span(bounds)
	if !ok {
		return None
	}

	if kv.state.dirty() {
		return kv.FindKeyLinear(k, start, end)
	}

	f, l := start, end
	m := (f + l) / 2

	for f <= l {
		switch {
		case kv.key(kv.storage[m]).Equals(k):
			return m
		case kv.key(kv.storage[f]).Equals(k):
			return f
		case kv.key(kv.storage[l]).Equals(k):
			return l
		}

		if kv.key(kv.storage[m]).LessThan(k) {
			f = m + 1
		} else {
			l = m - 1
		}

		m = (f + l) / 2
	}

	return None
}

// FindKeyLinear scans the inclusive range forward for an element whose
// projected key equals k, with no sortedness assumption.
func (kv *Keyed[T, K]) FindKeyLinear(k K, bounds ...int) int {
	start, end, ok := kv.span(bounds)
	if !ok {
		return None
	}

	for i := start; i <= end; i++ {
		if kv.key(kv.storage[i]).Equals(k) {
			return i
		}
	}

	return None
}
