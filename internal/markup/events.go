package markup

// EventType identifies a class of page events.
type EventType string

const (
	Click     EventType = "click"
	Submit    EventType = "submit"
	Change    EventType = "change"
	Input     EventType = "input"
	Blur      EventType = "blur"
	MouseMove EventType = "mousemove"
	Scroll    EventType = "scroll"
	KeyDown   EventType = "keydown"
)

// Event is a single dispatched page event. Pointer coordinates are only
// meaningful for mouse events, Key only for keydown.
type Event struct {
	Type   EventType
	Target *Element
	X, Y   int
	Key    string

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault cancels the event's default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether the default action was cancelled.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation prevents handlers registered after the current one from
// seeing the event.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// Handler receives dispatched events. Handlers registered at the document
// level filter by ancestor search on the event target, so markup inserted
// after registration needs no individual wiring.
type Handler func(*Event)

// Document owns the page tree and the delegated handler lists.
type Document struct {
	Root *Element

	handlers map[EventType][]Handler
}

// NewDocument wraps a root element.
func NewDocument(root *Element) *Document {
	return &Document{
		Root:     root,
		handlers: make(map[EventType][]Handler),
	}
}

// On registers a document-level handler for the event type. Handlers run in
// registration order.
func (d *Document) On(t EventType, h Handler) {
	d.handlers[t] = append(d.handlers[t], h)
}

// Dispatch runs the handlers for ev and reports whether the default action
// should still proceed. A handler calling StopPropagation halts the chain.
func (d *Document) Dispatch(ev *Event) bool {
	for _, h := range d.handlers[ev.Type] {
		h(ev)
		if ev.propagationStopped {
			break
		}
	}
	return !ev.defaultPrevented
}

// SetRoot swaps the page tree while keeping registered handlers, the page
// reload analog.
func (d *Document) SetRoot(root *Element) {
	d.Root = root
}

// ByID returns the element with the given ID, or nil.
func (d *Document) ByID(id string) *Element {
	if id == "" {
		return nil
	}
	return d.Root.Find(func(e *Element) bool { return e.ID == id })
}
