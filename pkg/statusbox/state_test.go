package statusbox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_ZeroValueIsInitial(t *testing.T) {
	var s State[string]
	assert.Equal(t, KindInitial, s.Kind())

	_, ok := s.Data()
	assert.False(t, ok)
}

func TestState_Variants(t *testing.T) {
	cause := errors.New("timeout")

	tests := []struct {
		name  string
		state State[int]
		kind  Kind
	}{
		{"initial", Initial[int](), KindInitial},
		{"empty", Empty[int]("nothing"), KindEmpty},
		{"error", Error[int]("failed", cause), KindError},
		{"success", Success(42), KindSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.state.Kind())
			assert.Equal(t, tt.name, tt.state.Kind().String())

			_, isData := tt.state.Data()
			_, isEmpty := tt.state.AsEmpty()
			_, isError := tt.state.AsError()
			assert.Equal(t, tt.kind == KindSuccess, isData)
			assert.Equal(t, tt.kind == KindEmpty, isEmpty)
			assert.Equal(t, tt.kind == KindError, isError)
		})
	}
}

func TestState_Payloads(t *testing.T) {
	data, ok := Success("hello").Data()
	require.True(t, ok)
	assert.Equal(t, "hello", data)

	empty, ok := Empty[string](7).AsEmpty()
	require.True(t, ok)
	assert.Equal(t, 7, empty.Value)

	cause := errors.New("connection refused")
	errState, ok := Error[string]("load failed", cause).AsError()
	require.True(t, ok)
	assert.Equal(t, "load failed", errState.Message)
	assert.ErrorIs(t, errState, cause)
	assert.Equal(t, "load failed: connection refused", errState.Error())
}

func TestErrorState_Error(t *testing.T) {
	tests := []struct {
		name  string
		state ErrorState
		want  string
	}{
		{"message only", ErrorState{Message: "boom"}, "boom"},
		{"cause only", ErrorState{Cause: errors.New("eof")}, "eof"},
		{"both", ErrorState{Message: "boom", Cause: errors.New("eof")}, "boom: eof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Error())
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initial", Initial[int]().String())
	assert.Equal(t, "empty(<nil>)", Empty[int](nil).String())
	assert.Equal(t, "error(x)", Error[int]("x", nil).String())
	assert.Equal(t, "success(3)", Success(3).String())
}

func TestLoadingStateHelpers(t *testing.T) {
	assert.Equal(t, LoadingState{Visible: true, Extra: "saving"}, Shown("saving"))
	assert.Equal(t, LoadingState{}, Hidden())
}

func TestKindString_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", Kind(99).String())
	assert.Equal(t, "unknown", Slot(99).String())
}
