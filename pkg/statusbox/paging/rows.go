package paging

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RowKind identifies what a Row shows.
type RowKind int

const (
	RowItem RowKind = iota
	RowPlaceholder
	RowRefreshLoading
	RowRefreshError
	RowEmpty
	RowPrependLoading
	RowPrependError
	RowAppendLoading
	RowAppendError
	RowNoMore
)

var rowKindNames = map[RowKind]string{
	RowItem:           "item",
	RowPlaceholder:    "placeholder",
	RowRefreshLoading: "refresh-loading",
	RowRefreshError:   "refresh-error",
	RowEmpty:          "empty",
	RowPrependLoading: "prepend-loading",
	RowPrependError:   "prepend-error",
	RowAppendLoading:  "append-loading",
	RowAppendError:    "append-error",
	RowNoMore:         "no-more",
}

// String returns a human-readable row kind.
func (k RowKind) String() string {
	if name, ok := rowKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Stable keys of the synthetic rows.
const (
	KeyRefreshLoading = "paging_loading"
	KeyRefreshError   = "paging_error"
	KeyEmpty          = "paging_empty"
	KeyPrependLoading = "paging_prepend"
	KeyPrependError   = "paging_prepend_error"
	KeyAppendLoading  = "paging_load_more"
	KeyAppendError    = "paging_load_more_error"
	KeyNoMore         = "paging_no_more"
)

// KeyFunc derives a stable key for a loaded item.
type KeyFunc[T any] func(item T) string

// Row is one entry of the rendered list.
type Row[T any] struct {
	Kind RowKind
	Key  string
	// Index is the item index for RowItem and RowPlaceholder, -1 otherwise.
	Index int
	Item  T
	// Err is the *LoadError of error rows.
	Err error
	// Retry is set on error rows and forwards to the controller.
	Retry func() tea.Cmd
}

// IsStatus reports whether the row is synthetic rather than data.
func (r Row[T]) IsStatus() bool {
	return r.Kind != RowItem && r.Kind != RowPlaceholder
}

// IsError reports whether the row offers a retry affordance.
func (r Row[T]) IsError() bool {
	return r.Kind == RowRefreshError || r.Kind == RowPrependError || r.Kind == RowAppendError
}

// Rows returns the row sequence for items with default item keys.
func Rows[T any](items Items[T]) []Row[T] {
	return RowsWithKeys(items, nil)
}

// RowsWithKeys returns the row sequence for items. keyFn may be nil, in which
// case items are keyed by index.
func RowsWithKeys[T any](items Items[T], keyFn KeyFunc[T]) []Row[T] {
	states := items.LoadStates()

	switch states.Refresh.Kind() {
	case KindLoading:
		return []Row[T]{statusRow[T](RowRefreshLoading, KeyRefreshLoading)}
	case KindError:
		row := statusRow[T](RowRefreshError, KeyRefreshError)
		row.Err = &LoadError{Phase: PhaseRefresh, Cause: states.Refresh.Err()}
		row.Retry = items.Refresh
		return []Row[T]{row}
	}

	count := items.ItemCount()
	if count == 0 {
		return []Row[T]{statusRow[T](RowEmpty, KeyEmpty)}
	}

	rows := make([]Row[T], 0, count+2)

	switch states.Prepend.Kind() {
	case KindLoading:
		rows = append(rows, statusRow[T](RowPrependLoading, KeyPrependLoading))
	case KindError:
		row := statusRow[T](RowPrependError, KeyPrependError)
		row.Err = &LoadError{Phase: PhasePrepend, Cause: states.Prepend.Err()}
		row.Retry = items.Retry
		rows = append(rows, row)
	}

	for i := 0; i < count; i++ {
		item, ok := items.ItemAt(i)
		if !ok {
			rows = append(rows, Row[T]{Kind: RowPlaceholder, Key: fmt.Sprintf("placeholder_%d", i), Index: i})
			continue
		}
		key := fmt.Sprintf("item_%d", i)
		if keyFn != nil {
			key = keyFn(item)
		}
		rows = append(rows, Row[T]{Kind: RowItem, Key: key, Index: i, Item: item})
	}

	switch states.Append.Kind() {
	case KindLoading:
		rows = append(rows, statusRow[T](RowAppendLoading, KeyAppendLoading))
	case KindError:
		row := statusRow[T](RowAppendError, KeyAppendError)
		row.Err = &LoadError{Phase: PhaseAppend, Cause: states.Append.Err()}
		row.Retry = items.Retry
		rows = append(rows, row)
	case KindNotLoading:
		if states.Append.EndReached() {
			rows = append(rows, statusRow[T](RowNoMore, KeyNoMore))
		}
	}

	return rows
}

func statusRow[T any](kind RowKind, key string) Row[T] {
	return Row[T]{Kind: kind, Key: key, Index: -1}
}
