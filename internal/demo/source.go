package demo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// NoKey marks the absence of an adjacent page.
const NoKey = -1

// Item is a row of the mock data set.
type Item struct {
	ID          int
	Title       string
	Description string
}

// LoadParams describes one page request.
type LoadParams struct {
	Key  int
	Size int
}

// Page is a loaded page with the keys of its neighbours. PrevKey and NextKey
// are NoKey at either end of the data set.
type Page[T any] struct {
	Key     int
	Data    []T
	PrevKey int
	NextKey int
}

// Source loads pages of T. Load runs off the UI goroutine and must honour
// ctx cancellation.
type Source[T any] interface {
	Load(ctx context.Context, p LoadParams) (Page[T], error)
}

// ErrInjected is returned by MockSource for its scheduled failures.
var ErrInjected = errors.New("simulated network error")

// MockSource serves a fixed number of generated pages after a delay. In
// Reverse mode it behaves like a chat history: page 0 holds the newest
// messages, older pages are reached through PrevKey, and each page is
// ordered oldest first.
type MockSource struct {
	PageSize int
	MaxPages int
	Delay    time.Duration
	// FailEvery makes every Nth call fail. 0 never fails.
	FailEvery int
	Reverse   bool

	calls atomic.Int64
}

// Calls returns the number of Load calls so far.
func (s *MockSource) Calls() int {
	return int(s.calls.Load())
}

// Load implements Source.
func (s *MockSource) Load(ctx context.Context, p LoadParams) (Page[Item], error) {
	call := s.calls.Add(1)

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Page[Item]{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Page[Item]{}, err
	}

	if s.FailEvery > 0 && call%int64(s.FailEvery) == 0 {
		return Page[Item]{}, fmt.Errorf("load page %d: %w", p.Key, ErrInjected)
	}

	size := p.Size
	if size <= 0 {
		size = s.PageSize
	}
	if p.Key < 0 || p.Key >= s.MaxPages {
		return Page[Item]{}, fmt.Errorf("page %d out of range [0, %d)", p.Key, s.MaxPages)
	}

	items := make([]Item, size)
	for i := range items {
		id := p.Key*size + i
		items[i] = s.item(id)
	}

	older, newer := NoKey, NoKey
	if p.Key > 0 {
		older = p.Key - 1
	}
	if p.Key+1 < s.MaxPages {
		newer = p.Key + 1
	}

	if !s.Reverse {
		return Page[Item]{Key: p.Key, Data: items, PrevKey: older, NextKey: newer}, nil
	}

	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return Page[Item]{Key: p.Key, Data: items, PrevKey: newer, NextKey: older}, nil
}

func (s *MockSource) item(id int) Item {
	if s.Reverse {
		return Item{
			ID:          id,
			Title:       fmt.Sprintf("Message #%d", id),
			Description: fmt.Sprintf("Content of message %d", id),
		}
	}
	return Item{
		ID:          id,
		Title:       fmt.Sprintf("Item #%d", id),
		Description: fmt.Sprintf("Description for item %d", id),
	}
}
