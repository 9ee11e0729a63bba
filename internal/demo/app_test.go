package demo

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	next, ok := m.(App)
	require.True(t, ok)
	return next, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewApp(t *testing.T) {
	env, _ := testEnv()

	tests := []struct {
		id     string
		wantID string
	}{
		{id: "", wantID: HomeID},
		{id: HomeID, wantID: HomeID},
		{id: BoxID, wantID: BoxID},
		{id: AppendID, wantID: AppendID},
		{id: PrependID, wantID: PrependID},
	}
	for _, tt := range tests {
		t.Run(tt.wantID, func(t *testing.T) {
			a, err := NewApp(env, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, a.Screen().ID())
			a.Screen().Close()
		})
	}
}

func TestNewApp_UnknownDemo(t *testing.T) {
	env, _ := testEnv()

	_, err := NewApp(env, "nope")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDemo))
	assert.Contains(t, err.Error(), `Unknown demo "nope"`)
	assert.Contains(t, err.Error(), "box, append, prepend")
}

func TestApp_NavigateFromHome(t *testing.T) {
	env, log := testEnv()
	a, err := NewApp(env, "")
	require.NoError(t, err)
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 24})

	a, cmd := update(t, a, ui.MenuSelectedMsg{Item: ui.MenuItem{ID: AppendID}})
	assert.NotNil(t, cmd, "new screen is initialised")
	assert.Equal(t, AppendID, a.Screen().ID())
	assert.True(t, log.Contains("navigate home -> append"))

	a, _ = update(t, a, keyMsg("esc"))
	assert.Equal(t, HomeID, a.Screen().ID())

	a, cmd = update(t, a, keyMsg("esc"))
	assert.Equal(t, HomeID, a.Screen().ID())
	assert.Nil(t, cmd, "esc on the home menu does nothing")
}

func TestApp_EnterOpensHighlightedDemo(t *testing.T) {
	env, _ := testEnv()
	a, err := NewApp(env, "")
	require.NoError(t, err)

	a, cmd := update(t, a, keyMsg("enter"))
	require.NotNil(t, cmd)
	a, _ = update(t, a, cmd())
	assert.Equal(t, BoxID, a.Screen().ID())
	a.Screen().Close()
}

func TestApp_EscQuitsWhenOpenedDirectly(t *testing.T) {
	env, _ := testEnv()
	a, err := NewApp(env, BoxID)
	require.NoError(t, err)

	_, cmd := update(t, a, keyMsg("esc"))
	assert.True(t, isQuit(cmd))
}

func TestApp_Quit(t *testing.T) {
	env, _ := testEnv()
	for _, k := range []string{"q", "ctrl+c"} {
		a, err := NewApp(env, PrependID)
		require.NoError(t, err)

		_, cmd := update(t, a, keyMsg(k))
		assert.True(t, isQuit(cmd), k)
	}
}

func TestApp_View(t *testing.T) {
	env, _ := testEnv()
	a, err := NewApp(env, "")
	require.NoError(t, err)
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 24})

	view := a.View()
	assert.Contains(t, view, "StatusBox Demos")
	assert.Contains(t, view, "StatusBox Demo")
	assert.Contains(t, view, "Paging - Load More (Append)")
}
