package demo

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/statusbox/internal/config"
	"github.com/rileyhilliard/statusbox/internal/logger"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

// drain runs cmd and every command batched or sequenced inside it, returning
// the leaf messages in order. Only use it on commands that don't start
// spinner ticks.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for i := 0; i < v.Len(); i++ {
		c, _ := v.Index(i).Interface().(tea.Cmd)
		out = append(out, drain(c)...)
	}
	return out
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// testEnv returns an Env with instant loads and a small data set.
func testEnv() (Env, *logger.BufferLogger) {
	cfg := config.DefaultConfig()
	cfg.Demo.LoadDelay = 0
	cfg.Demo.ItemCount = 2
	cfg.Paging.PageSize = 3
	cfg.Paging.MaxPages = 2
	cfg.Paging.Delay = 0
	cfg.Paging.PrefetchDistance = 1
	log := logger.NewBufferLogger()
	return NewEnv(cfg, log), log
}
