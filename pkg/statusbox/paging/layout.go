package paging

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderRow draws a single row. Rows whose renderer is nil draw as "".
func RenderRow[T any](row Row[T], r RowRenderers, item ItemFunc[T], ctx RowContext) string {
	switch row.Kind {
	case RowItem:
		if item == nil {
			return ""
		}
		return item(ctx, row.Index, row.Item)
	case RowPlaceholder:
		if r.Placeholder == nil {
			return ""
		}
		return r.Placeholder(ctx, row.Index)
	case RowRefreshLoading:
		return callStatus(r.RefreshLoading, ctx)
	case RowRefreshError:
		return callError(r.RefreshError, ctx, row.Err)
	case RowEmpty:
		return callStatus(r.Empty, ctx)
	case RowPrependLoading:
		return callStatus(r.PrependLoading, ctx)
	case RowPrependError:
		return callError(r.PrependError, ctx, row.Err)
	case RowAppendLoading:
		return callStatus(r.AppendLoading, ctx)
	case RowAppendError:
		return callError(r.AppendError, ctx, row.Err)
	case RowNoMore:
		return callStatus(r.NoMore, ctx)
	}
	return ""
}

func callStatus(fn StatusFunc, ctx RowContext) string {
	if fn == nil {
		return ""
	}
	return fn(ctx)
}

func callError(fn ErrorRowFunc, ctx RowContext, err error) string {
	if fn == nil {
		return ""
	}
	return fn(ctx, err)
}

// RenderRows draws every row, one string per row, in row order.
func RenderRows[T any](rows []Row[T], r RowRenderers, item ItemFunc[T], ctx RowContext) []string {
	views := make([]string, len(rows))
	for i, row := range rows {
		views[i] = RenderRow(row, r, item, ctx)
	}
	return views
}

// GridLine is one line of a grid: either a full-width status row or a run of
// up to columns item cells.
type GridLine struct {
	// Rows are indexes into the row slice passed to RenderGrid.
	Rows []int
	View string
}

// RenderGrid lays item and placeholder rows out in columns of equal width.
// Status rows span the full width and break the run of cells.
func RenderGrid[T any](rows []Row[T], r RowRenderers, item ItemFunc[T], ctx RowContext, columns int) []GridLine {
	if columns < 1 {
		columns = 1
	}
	cellCtx := ctx
	if ctx.Width > 0 {
		cellCtx.Width = ctx.Width / columns
	}
	cellStyle := lipgloss.NewStyle()
	if cellCtx.Width > 0 {
		cellStyle = cellStyle.Width(cellCtx.Width)
	}

	var lines []GridLine
	var cells []string
	var cellRows []int

	flush := func() {
		if len(cells) == 0 {
			return
		}
		lines = append(lines, GridLine{
			Rows: cellRows,
			View: lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		})
		cells, cellRows = nil, nil
	}

	for i, row := range rows {
		if row.IsStatus() {
			flush()
			lines = append(lines, GridLine{Rows: []int{i}, View: RenderRow(row, r, item, ctx)})
			continue
		}
		cells = append(cells, cellStyle.Render(RenderRow(row, r, item, cellCtx)))
		cellRows = append(cellRows, i)
		if len(cells) == columns {
			flush()
		}
	}
	flush()

	return lines
}

// JoinViews joins rendered rows, skipping empty ones.
func JoinViews(views []string) string {
	kept := make([]string, 0, len(views))
	for _, v := range views {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, "\n")
}
