// Package render draws chart geometry onto a drawing surface.
//
// The Renderer turns scales and samples into axes and series geometry and
// hands them to a Surface. SVGSurface is the reference Surface; tests can
// substitute any other implementation.
package render

// Surface is the minimal drawing interface the chart engine needs.
//
// Implementations are used from a single goroutine and need no locking.
type Surface interface {
	// Init builds the drawing layers for layout. It is called once per
	// surface, before anything else.
	Init(layout Layout) error
	// DrawAxis replaces the ticks of the axis group for axis.Kind.
	DrawAxis(axis Axis, tr Transition)
	// DrawPath replaces the series paths. Series absent from the slice are
	// removed.
	DrawPath(series []Series, tr Transition)
	// DrawFocusPoint moves and shows or hides the focus indicator.
	DrawFocusPoint(focus Focus)
	// RemoveOverlays drops every pointer-capture overlay and its bindings.
	RemoveOverlays()
	// BindPointerHandlers adds a transparent overlay routing pointer
	// events to handlers.
	BindPointerHandlers(overlay Overlay, handlers PointerHandlers)
}

// EventKind identifies a pointer event delivered to an overlay.
type EventKind int

const (
	PointerEnter EventKind = iota
	PointerMove
	PointerLeave
)

// String returns the DOM-style event name.
func (k EventKind) String() string {
	switch k {
	case PointerEnter:
		return "mouseover"
	case PointerMove:
		return "mousemove"
	case PointerLeave:
		return "mouseout"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer position relative to the plot area.
type PointerEvent struct {
	X, Y float64
	// RelatedClass is the class attribute of the element the pointer moved
	// onto, for leave events.
	RelatedClass string
}

// PointerHandlers receives overlay events. Nil fields are ignored.
type PointerHandlers struct {
	Enter func(PointerEvent)
	Move  func(PointerEvent)
	Leave func(PointerEvent)
}

// Handle calls the handler registered for kind, if any.
func (h PointerHandlers) Handle(kind EventKind, ev PointerEvent) {
	var fn func(PointerEvent)
	switch kind {
	case PointerEnter:
		fn = h.Enter
	case PointerMove:
		fn = h.Move
	case PointerLeave:
		fn = h.Leave
	}
	if fn != nil {
		fn(ev)
	}
}
