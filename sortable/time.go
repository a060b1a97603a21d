package sortable

import "time"

// Time is a sortable wrapper type for time.Time, ordered chronologically.
// Equality uses time.Time.Equal, so instants compare equal regardless of
// their location.
//
// Example:
//
//	v := sorted.New[sortable.Time]()
//	v.Push(sortable.Time(later))
//	v.Push(sortable.Time(earlier))
//	// Traversal yields earlier, later.
type Time time.Time

var _ Sortable[Time] = (*Time)(nil)

// Equals returns true if both values denote the same instant.
func (t Time) Equals(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

// LessThan returns true if this instant is before the other.
func (t Time) LessThan(other Time) bool {
	return time.Time(t).Before(time.Time(other))
}
