package sorted

// stateKind enumerates the three corruption states of a vector.
type stateKind uint8

const (
	// stateClean means the full storage is sorted ascending.
	stateClean stateKind = iota

	// stateDirtyAt means sortedness holds everywhere except possibly
	// around one recorded index.
	stateDirtyAt

	// stateDirtyMany means the scope of disorder is unknown and only a
	// full sort can restore order.
	stateDirtyMany
)

// state is the corruption-tracking metadata of a vector: a tagged variant
// of Clean, DirtyAt(pos), or DirtyMany. pos is meaningful only when kind
// is stateDirtyAt.
type state struct {
	kind stateKind
	pos  int
}

func cleanState() state {
	return state{kind: stateClean}
}

func dirtyAt(pos int) state {
	return state{kind: stateDirtyAt, pos: pos}
}

func dirtyMany() state {
	return state{kind: stateDirtyMany}
}

// dirty reports whether sortedness is currently not guaranteed.
func (s state) dirty() bool {
	return s.kind != stateClean
}

// touched records a single-index write. A clean vector narrows to
// DirtyAt(pos). Any dirty vector widens to DirtyMany: two independent
// indices may now be out of place and a single relocation cannot fix both.
func (s state) touched(pos int) state {
	if s.kind == stateClean {
		return dirtyAt(pos)
	}

	return dirtyMany()
}

// String returns a human-readable representation of the state.
func (s state) String() string {
	switch s.kind {
	case stateClean:
		return "clean"
	case stateDirtyAt:
		return "dirty-at"
	case stateDirtyMany:
		return "dirty-many"
	default:
		return "not recognized"
	}
}
