// Package statusbox renders one of several visual branches for a piece of UI
// depending on its request state: initial, empty, error or success with data,
// with an orthogonal loading overlay drawn on top.
//
// # States
//
// State[T] is a tagged union with exactly one active variant:
//
//	Initial[T]()            - nothing requested yet
//	Empty[T](value)         - request succeeded, nothing to show
//	Error[T](msg, cause)    - request failed
//	Success[T](data)        - request succeeded with data of type T
//
// LoadingState is independent of State[T]: a request may be in flight while
// the previous result is still on screen.
//
// # Renderers
//
// Each non-success slot (Initial, Empty, Error, Loading) is drawn by a
// renderer function. A Registry holds the application-wide defaults and is
// passed explicitly to every Render call or Box; call sites override single
// slots with WithInitial, WithEmpty, WithError and WithLoading. A nil
// renderer disables its slot: the dispatcher silently renders nothing.
//
//	reg := statusbox.DefaultRegistry()
//	reg.SetEmptyRenderer(func(a statusbox.Area, s statusbox.EmptyState) string {
//		return "nothing here yet"
//	})
//
//	frame := statusbox.Render(reg, area, state, loading,
//		func(a statusbox.Area, user User) string { return user.Name },
//		statusbox.WithError(nil), // this call site shows nothing on error
//	)
//
// The content renderer only ever receives a T: the success branch is chosen
// from the variant tag, so there is no cast that could fail at runtime.
//
// # Bubble Tea
//
// Box wraps Render in an embeddable Bubble Tea component. Asynchronous work
// pushes new values with SetState, SetStateLoading and SetLoading commands;
// the Box applies the latest one and animates the built-in spinner while the
// loading overlay is visible.
package statusbox
