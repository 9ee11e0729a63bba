// Package paging renders the loading states of an incrementally loaded list.
//
// The package does not fetch, cache or paginate anything. It reads the load
// status an external paging controller already computed (refresh, prepend
// and append, each Loading, Error or NotLoading) and decides which synthetic
// rows to splice around the data rows:
//
//	refresh Loading            -> [initial loading]
//	refresh Error              -> [initial error + retry]
//	refresh NotLoading, 0 rows -> [empty]
//	otherwise                  -> [prepend row?] items... [append row?]
//
// Rows computes that sequence; RenderRows and RenderGrid draw it with a set
// of RowRenderers; List wraps everything in a scrollable Bubble Tea
// component. Retry affordances forward to the controller's Retry and Refresh
// without adding any logic of their own.
package paging
