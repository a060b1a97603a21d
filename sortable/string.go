package sortable

import "facette.io/natsort"

// String is a sortable wrapper type for the built-in string type with
// lexicographic ordering.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString is a sortable wrapper type for strings ordered naturally:
// digit runs compare numerically, so "file2" orders before "file10".
// Equality is still plain string equality, which keeps distinct spellings
// of the same number ("01" vs "1") as distinct elements.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	a, b := string(s), string(other)
	if a == b {
		return false
	}

	if natsort.Compare(a, b) == natsort.Compare(b, a) {
		// Natural order ties distinct spellings such as "01" and "1";
		// break the tie lexicographically to keep the order total.
		return a < b
	}

	return natsort.Compare(a, b)
}
