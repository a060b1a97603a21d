package sorted

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Touched(t *testing.T) {
	t.Parallel()

	t.Run("clean narrows to dirty at the index", func(t *testing.T) {
		t.Parallel()

		s := cleanState().touched(3)
		assert.Equal(t, stateDirtyAt, s.kind)
		assert.Equal(t, 3, s.pos)
	})

	t.Run("dirty at one index widens to unknown scope", func(t *testing.T) {
		t.Parallel()

		s := dirtyAt(1).touched(5)
		assert.Equal(t, stateDirtyMany, s.kind)
	})

	t.Run("unknown scope stays unknown", func(t *testing.T) {
		t.Parallel()

		s := dirtyMany().touched(0)
		assert.Equal(t, stateDirtyMany, s.kind)
	})
}

func TestState_Dirty(t *testing.T) {
	t.Parallel()

	assert.False(t, cleanState().dirty())
	assert.True(t, dirtyAt(0).dirty())
	assert.True(t, dirtyMany().dirty())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "clean", cleanState().String())
	assert.Equal(t, "dirty-at", dirtyAt(2).String())
	assert.Equal(t, "dirty-many", dirtyMany().String())
}
