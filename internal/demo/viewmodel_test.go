package demo

import (
	"testing"
	"time"

	"github.com/rileyhilliard/statusbox/pkg/statusbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewModel_ItemCountClamped(t *testing.T) {
	vm := NewViewModel("b", 0, -3)
	assert.Equal(t, 0, vm.ItemCount())

	vm.ChangeItemCount(5)
	assert.Equal(t, 5, vm.ItemCount())

	vm.ChangeItemCount(-1)
	assert.Equal(t, 0, vm.ItemCount())
}

func TestViewModel_Commands(t *testing.T) {
	vm := NewViewModel("b", 0, 0)

	msg, ok := vm.ChangeState(statusbox.Error[string]("boom", nil))().(statusbox.StateMsg[string])
	require.True(t, ok)
	assert.Equal(t, "b", msg.BoxID)
	assert.Equal(t, statusbox.KindError, msg.State.Kind())
	assert.False(t, msg.Loading.Visible, "a new state hides the overlay")

	lmsg, ok := vm.ChangeLoading(true, "wait")().(statusbox.LoadingMsg)
	require.True(t, ok)
	assert.Equal(t, statusbox.LoadingMsg{BoxID: "b", Loading: statusbox.Shown("wait")}, lmsg)
}

func TestViewModel_LoadData(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
	}{
		{name: "instant", delay: 0},
		{name: "delayed", delay: time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := NewViewModel("b", tt.delay, 0)

			msgs := drain(vm.LoadData())
			require.Len(t, msgs, 2)
			assert.Equal(t, statusbox.LoadingMsg{BoxID: "b", Loading: statusbox.Shown(nil)}, msgs[0])

			done, ok := msgs[1].(statusbox.StateMsg[string])
			require.True(t, ok)
			data, ok := done.State.Data()
			assert.True(t, ok)
			assert.Equal(t, DefaultTitle, data)
		})
	}
}

func TestViewModel_ReloadDrivesBox(t *testing.T) {
	vm := NewViewModel("b", 0, 0)
	box := statusbox.NewBox("b", statusbox.DefaultRegistry(), nil, func(_ statusbox.Area, s string) string { return s })

	var kinds []statusbox.Kind
	for _, msg := range drain(vm.Reload()) {
		box, _ = box.Update(msg)
		kinds = append(kinds, box.Container().State().Kind())
	}

	assert.Equal(t, []statusbox.Kind{statusbox.KindInitial, statusbox.KindInitial, statusbox.KindSuccess}, kinds)
	assert.False(t, box.Container().Loading().Visible)
	assert.Equal(t, DefaultTitle, box.View())
}

