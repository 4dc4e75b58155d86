// Package markup provides the declarative element tree the board controllers
// scan and the delegated event dispatch they attach to. It is the in-process
// stand-in for a rendered page: elements carry a tag, classes, attributes and
// an optional control value, and events bubble from a target element to
// handlers registered once at the document root.
package markup

import "strings"

// Element is a single node in the page tree.
type Element struct {
	Tag      string
	ID       string
	Value    string // current value for form controls
	Text     string // display text for leaf elements
	Parent   *Element
	Children []*Element

	classes map[string]bool
	attrs   map[string]string
}

// New creates an element with the given tag.
func New(tag string) *Element {
	return &Element{
		Tag:     tag,
		classes: make(map[string]bool),
		attrs:   make(map[string]string),
	}
}

// WithID sets the element ID and returns the element for chaining.
func (e *Element) WithID(id string) *Element {
	e.ID = id
	return e
}

// WithText sets the display text and returns the element for chaining.
func (e *Element) WithText(text string) *Element {
	e.Text = text
	return e
}

// WithValue sets the control value and returns the element for chaining.
func (e *Element) WithValue(v string) *Element {
	e.Value = v
	return e
}

// SetAttr sets an attribute and returns the element for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	e.attrs[name] = value
	return e
}

// Attr returns the attribute value, or "" when absent.
func (e *Element) Attr(name string) string {
	return e.attrs[name]
}

// HasAttr reports whether the attribute is present, even with an empty value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// RemoveAttr deletes an attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// AddClass adds a class and returns the element for chaining.
func (e *Element) AddClass(name string) *Element {
	e.classes[name] = true
	return e
}

// RemoveClass removes a class.
func (e *Element) RemoveClass(name string) {
	delete(e.classes, name)
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(name string) bool {
	return e.classes[name]
}

// Append adds children, reparenting them, and returns the element for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.Parent = e
		e.Children = append(e.Children, c)
	}
	return e
}

// Remove detaches the element from its parent. Detaching an orphan is a no-op.
func (e *Element) Remove() {
	p := e.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == e {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	e.Parent = nil
}

// Closest returns the nearest element, starting from e itself and walking
// toward the root, for which pred holds. Returns nil when none matches.
func (e *Element) Closest(pred func(*Element) bool) *Element {
	for cur := e; cur != nil; cur = cur.Parent {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// Find returns the first descendant (including e itself, depth-first) for
// which pred holds, or nil.
func (e *Element) Find(pred func(*Element) bool) *Element {
	if pred(e) {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant (including e itself, depth-first) for
// which pred holds.
func (e *Element) FindAll(pred func(*Element) bool) []*Element {
	var out []*Element
	if pred(e) {
		out = append(out, e)
	}
	for _, c := range e.Children {
		out = append(out, c.FindAll(pred)...)
	}
	return out
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape neutralizes markup-significant characters in user-supplied text.
func Escape(s string) string {
	return escaper.Replace(s)
}
