package statusbox

// Area is the space a renderer draws into. A zero Width or Height means the
// size is unknown and renderers should return their natural size.
type Area struct {
	Width  int
	Height int
	// Frame is an animation counter advanced while the loading overlay is
	// visible. Static renderers ignore it.
	Frame int
}

// Renderer signatures, one per slot.
type (
	InitialFunc        func(a Area) string
	EmptyFunc          func(a Area, s EmptyState) string
	ErrorFunc          func(a Area, s ErrorState) string
	LoadingFunc        func(a Area, l LoadingState) string
	ContentFunc[T any] func(a Area, data T) string
)

// Renderers is a snapshot of the four non-success slots. A nil field disables
// its slot.
type Renderers struct {
	Initial InitialFunc
	Empty   EmptyFunc
	Error   ErrorFunc
	Loading LoadingFunc
}

// Registry holds the default renderers of an application. It is configured
// once at startup and then read on every render; it is not safe for
// concurrent mutation.
type Registry struct {
	renderers  Renderers
	blockInput bool
}

// NewRegistry returns a registry with every slot disabled.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry wired with the built-in views.
func DefaultRegistry() *Registry {
	return NewRegistry().InitDefaults()
}

// InitDefaults wires the built-in views using DefaultHints.
func (r *Registry) InitDefaults() *Registry {
	return r.InitDefaultsWith(DefaultHints())
}

// InitDefaultsWith wires the built-in views with custom hint texts: icon and
// text for Empty and Error, a spinner for Loading, nothing for Initial.
func (r *Registry) InitDefaultsWith(h Hints) *Registry {
	r.SetInitialRenderer(DefaultInitialView)
	r.SetEmptyRenderer(func(a Area, s EmptyState) string {
		return DefaultEmptyView(a, h.Empty)
	})
	r.SetErrorRenderer(func(a Area, s ErrorState) string {
		return DefaultErrorView(a, s, h.Error)
	})
	r.SetLoadingRenderer(DefaultLoadingView)
	return r
}

// SetInitialRenderer replaces the Initial slot. nil disables it.
func (r *Registry) SetInitialRenderer(fn InitialFunc) {
	r.renderers.Initial = fn
}

// SetEmptyRenderer replaces the Empty slot. nil disables it.
func (r *Registry) SetEmptyRenderer(fn EmptyFunc) {
	r.renderers.Empty = fn
}

// SetErrorRenderer replaces the Error slot. nil disables it.
func (r *Registry) SetErrorRenderer(fn ErrorFunc) {
	r.renderers.Error = fn
}

// SetLoadingRenderer replaces the Loading slot. nil disables it.
func (r *Registry) SetLoadingRenderer(fn LoadingFunc) {
	r.renderers.Loading = fn
}

// SetBlockInput sets whether a visible loading overlay blocks key and mouse
// input to the content underneath by default.
func (r *Registry) SetBlockInput(block bool) {
	r.blockInput = block
}

// BlockInput reports the default overlay input-blocking flag.
func (r *Registry) BlockInput() bool {
	if r == nil {
		return false
	}
	return r.blockInput
}

// Renderers returns a copy of the current slots. A nil registry has none.
func (r *Registry) Renderers() Renderers {
	if r == nil {
		return Renderers{}
	}
	return r.renderers
}
