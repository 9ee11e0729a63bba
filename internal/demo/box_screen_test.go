package demo

import (
	"testing"

	"github.com/rileyhilliard/statusbox/pkg/statusbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, s Screen, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, nav := s.Update(keyMsg(k))
		require.Nil(t, nav)
	}
}

func loadedBoxScreen(t *testing.T) *boxScreen {
	t.Helper()
	env, _ := testEnv()
	s := newBoxScreen(env)
	s.SetSize(40, 20)
	s.Update(statusbox.SetState(boxDemoID, statusbox.Success("Hello"))())
	require.True(t, s.showsContent())
	return s
}

func TestBoxScreen_StartsLoading(t *testing.T) {
	env, _ := testEnv()
	s := newBoxScreen(env)

	assert.Equal(t, BoxID, s.ID())
	assert.Equal(t, statusbox.KindInitial, s.box.Container().State().Kind())
	assert.True(t, s.box.Container().Loading().Visible)
	assert.Contains(t, s.Header().Subtitle, "initial + loading")
	assert.NotNil(t, s.Init())
}

func TestBoxScreen_Content(t *testing.T) {
	s := loadedBoxScreen(t)

	view := s.View()
	assert.Contains(t, view, "Hello")
	assert.Contains(t, view, "Item #0")
	assert.Contains(t, view, "Item #1")
	assert.NotContains(t, view, "Item #2")
	assert.Contains(t, view, "[- 2 +]")
}

func TestBoxScreen_ItemCount(t *testing.T) {
	s := loadedBoxScreen(t)

	press(t, s, "+", "=")
	assert.Equal(t, 4, s.vm.ItemCount())

	press(t, s, "-", "-", "-", "-", "_")
	assert.Equal(t, 0, s.vm.ItemCount())
}

func TestBoxScreen_StateKeys(t *testing.T) {
	tests := []struct {
		key  string
		want statusbox.Kind
	}{
		{key: "e", want: statusbox.KindError},
		{key: "m", want: statusbox.KindEmpty},
		{key: "s", want: statusbox.KindSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := loadedBoxScreen(t)
			s.Update(statusbox.SetState(boxDemoID, statusbox.Initial[string]())())

			cmd, _ := s.Update(keyMsg(tt.key))
			for _, msg := range drain(cmd) {
				s.Update(msg)
			}
			assert.Equal(t, tt.want, s.box.Container().State().Kind())
		})
	}
}

func TestBoxScreen_CountKeysNeedContent(t *testing.T) {
	s := loadedBoxScreen(t)
	s.Update(statusbox.SetState(boxDemoID, statusbox.Error[string]("boom", nil))())

	press(t, s, "+")
	assert.Equal(t, 2, s.vm.ItemCount())
	assert.Contains(t, s.View(), "boom")
}

func TestBoxScreen_LoadingKeepsContent(t *testing.T) {
	s := loadedBoxScreen(t)

	cmd, _ := s.Update(keyMsg("l"))
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	s.Update(msgs[0])

	assert.Equal(t, statusbox.KindSuccess, s.box.Container().State().Kind())
	assert.True(t, s.box.Container().Loading().Visible)
	assert.Contains(t, s.View(), "Loading…")
}

func TestBoxScreen_BlockInput(t *testing.T) {
	s := loadedBoxScreen(t)
	require.False(t, s.block)

	press(t, s, "b")
	assert.True(t, s.block)
	assert.Contains(t, s.Header().Subtitle, "input blocked")

	s.Update(statusbox.SetLoading(boxDemoID, true, nil)())
	press(t, s, "+")
	assert.Equal(t, 2, s.vm.ItemCount(), "keys are swallowed while loading")

	s.Update(statusbox.SetLoading(boxDemoID, false, nil)())
	press(t, s, "+")
	assert.Equal(t, 3, s.vm.ItemCount())

	press(t, s, "b")
	s.Update(statusbox.SetLoading(boxDemoID, true, nil)())
	press(t, s, "+")
	assert.Equal(t, 4, s.vm.ItemCount())
}

func TestBoxScreen_BlockInputFromConfig(t *testing.T) {
	env, _ := testEnv()
	env.Registry.SetBlockInput(true)
	s := newBoxScreen(env)

	assert.True(t, s.block)
	s.Update(statusbox.SetState(boxDemoID, statusbox.Success("Hello"))())
	s.Update(statusbox.SetLoading(boxDemoID, true, nil)())

	press(t, s, "+")
	assert.Equal(t, 2, s.vm.ItemCount(), "the counter sits behind the overlay")
}

func TestBoxScreen_ControlsWorkWhileBlocked(t *testing.T) {
	s := loadedBoxScreen(t)
	press(t, s, "b")
	require.True(t, s.block)

	cmd, _ := s.Update(keyMsg("l"))
	for _, msg := range drain(cmd) {
		s.Update(msg)
	}
	require.True(t, s.box.Container().Loading().Visible)
	require.True(t, s.box.Blocked(keyMsg("+")))

	cmd, _ = s.Update(keyMsg("s"))
	require.NotNil(t, cmd)
	for _, msg := range drain(cmd) {
		s.Update(msg)
	}
	assert.Equal(t, statusbox.KindSuccess, s.box.Container().State().Kind())
	assert.False(t, s.box.Container().Loading().Visible)
	assert.Contains(t, s.View(), "Success State!")

	s.Update(statusbox.SetLoading(boxDemoID, true, nil)())
	press(t, s, "b")
	assert.False(t, s.block, "blocking can be turned off while loading")
	assert.True(t, s.box.Container().Loading().Visible)
	assert.False(t, s.box.Blocked(keyMsg("+")))
}
