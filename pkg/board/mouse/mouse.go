// Package mouse maps terminal mouse events onto the hit regions the board
// registers while rendering. Regions are rectangles tied to page elements;
// later registrations win on overlap so foreground content shadows the
// background behind it.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a screen-cell rectangle. Width and height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a registered hit area.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions registered for the current frame.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Regions added later take priority on overlap.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear drops all regions. Call before re-rendering a frame.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// ActionType classifies a resolved mouse action.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// Action is a mouse event resolved against the hit map. Region is nil when
// the pointer is over empty space.
type Action struct {
	Type          ActionType
	Region        *Region
	X, Y          int
	IsDoubleClick bool
}

// doubleClickWindow is the maximum gap between two clicks on the same region
// to count as a double click.
const doubleClickWindow = 400 * time.Millisecond

// Handler resolves raw bubbletea mouse messages into actions.
type Handler struct {
	HitMap *HitMap

	lastClickID string
	lastClickAt time.Time
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse resolves a mouse message against the hit map.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return h.handleClick(msg.X, msg.Y)
		case tea.MouseButtonWheelUp:
			return Action{Type: ActionScrollUp, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
		case tea.MouseButtonWheelDown:
			return Action{Type: ActionScrollDown, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
		}
	case tea.MouseActionMotion:
		return Action{Type: ActionHover, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
	}
	return Action{Type: ActionNone, X: msg.X, Y: msg.Y}
}

func (h *Handler) handleClick(x, y int) Action {
	region := h.HitMap.Test(x, y)

	now := time.Now()
	double := false
	if region != nil && region.ID == h.lastClickID && now.Sub(h.lastClickAt) <= doubleClickWindow {
		double = true
		// Reset so a third click starts over.
		h.lastClickID = ""
	} else if region != nil {
		h.lastClickID = region.ID
		h.lastClickAt = now
	} else {
		h.lastClickID = ""
	}

	return Action{Type: ActionClick, Region: region, X: x, Y: y, IsDoubleClick: double}
}

// Clear drops all hit regions.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
