package statusbox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_AllSlotsDisabled(t *testing.T) {
	r := NewRegistry().Renderers()

	assert.Nil(t, r.Initial)
	assert.Nil(t, r.Empty)
	assert.Nil(t, r.Error)
	assert.Nil(t, r.Loading)
}

func TestDefaultRegistry_WiresBuiltins(t *testing.T) {
	r := DefaultRegistry().Renderers()

	require.NotNil(t, r.Initial)
	require.NotNil(t, r.Empty)
	require.NotNil(t, r.Error)
	require.NotNil(t, r.Loading)

	assert.Empty(t, r.Initial(Area{}))
	assert.Contains(t, r.Empty(Area{}, EmptyState{}), "No data")
	assert.Contains(t, r.Error(Area{}, ErrorState{}), "Something went wrong")
	assert.NotEmpty(t, r.Loading(Area{}, Shown(nil)))
}

func TestRegistry_InitDefaultsWithHints(t *testing.T) {
	r := NewRegistry().InitDefaultsWith(Hints{Empty: "Nothing yet", Error: "Oops"}).Renderers()

	assert.Contains(t, r.Empty(Area{}, EmptyState{}), "Nothing yet")
	assert.Contains(t, r.Error(Area{}, ErrorState{}), "Oops")
	assert.Contains(t, r.Error(Area{}, ErrorState{Message: "disk full"}), "disk full")
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := NewRegistry()
	r.SetEmptyRenderer(func(Area, EmptyState) string { return "first" })
	r.SetEmptyRenderer(func(Area, EmptyState) string { return "second" })

	assert.Equal(t, "second", r.Renderers().Empty(Area{}, EmptyState{}))

	r.SetInitialRenderer(func(Area) string { return "first" })
	r.SetInitialRenderer(func(Area) string { return "second" })
	assert.Equal(t, "second", r.Renderers().Initial(Area{}))

	r.SetErrorRenderer(func(Area, ErrorState) string { return "first" })
	r.SetErrorRenderer(func(Area, ErrorState) string { return "second" })
	assert.Equal(t, "second", r.Renderers().Error(Area{}, ErrorState{}))

	r.SetLoadingRenderer(func(Area, LoadingState) string { return "first" })
	r.SetLoadingRenderer(func(Area, LoadingState) string { return "second" })
	assert.Equal(t, "second", r.Renderers().Loading(Area{}, LoadingState{}))
}

func TestRegistry_SetNilDisablesSlot(t *testing.T) {
	r := DefaultRegistry()
	r.SetErrorRenderer(nil)

	f := Render(r, Area{}, Error[int]("boom", nil), Hidden(), nil)
	assert.Equal(t, SlotError, f.Slot)
	assert.Empty(t, f.Content)
}

func TestRegistry_SnapshotIsCopy(t *testing.T) {
	r := DefaultRegistry()
	snap := r.Renderers()
	r.SetEmptyRenderer(nil)

	assert.NotNil(t, snap.Empty)
	assert.Nil(t, r.Renderers().Empty)
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	assert.False(t, r.BlockInput())
	assert.Equal(t, Renderers{}, r.Renderers())
}

func TestDefaultViews(t *testing.T) {
	t.Run("error view shows cause", func(t *testing.T) {
		view := DefaultErrorView(Area{}, ErrorState{Message: "load failed", Cause: errors.New("eof")}, "hint")
		assert.Contains(t, view, "load failed")
		assert.Contains(t, view, "eof")
		assert.NotContains(t, view, "hint")
	})

	t.Run("error view truncates to width", func(t *testing.T) {
		view := DefaultErrorView(Area{Width: 4}, ErrorState{Message: "a very long message"}, "")
		assert.NotContains(t, view, "long")
	})

	t.Run("loading view extras", func(t *testing.T) {
		assert.Equal(t, "◐", DefaultLoadingView(Area{}, Shown(nil)))
		assert.Equal(t, "◐", DefaultLoadingView(Area{}, Shown("")))
		assert.Equal(t, "◓ saving", DefaultLoadingView(Area{Frame: 1}, Shown("saving")))
		assert.Equal(t, "◐ 3", DefaultLoadingView(Area{}, Shown(3)))
	})

	t.Run("initial view is empty", func(t *testing.T) {
		assert.Empty(t, DefaultInitialView(Area{Width: 10, Height: 10}))
	})
}
