package domain

import (
	"fmt"
	"strings"
)

// WindowType is the window manager's classification of a window.
// The numeric values are persisted in session files and must not change.
type WindowType int

const (
	WindowTypeDesktop WindowType = iota
	WindowTypeDock
	WindowTypeToolbar
	WindowTypeMenu
	WindowTypeUtility
	WindowTypeSplash
	WindowTypeDialog
	WindowTypeNormal
)

var windowTypeNames = []string{
	WindowTypeDesktop: "desktop",
	WindowTypeDock:    "dock",
	WindowTypeToolbar: "toolbar",
	WindowTypeMenu:    "menu",
	WindowTypeUtility: "utility",
	WindowTypeSplash:  "splash",
	WindowTypeDialog:  "dialog",
	WindowTypeNormal:  "normal",
}

// String returns the lowercase name of the window type
func (t WindowType) String() string {
	if t < 0 || int(t) >= len(windowTypeNames) {
		return fmt.Sprintf("unknown(%d)", int(t))
	}
	return windowTypeNames[t]
}

// ParseWindowType converts a window type name (case-insensitive) to a WindowType
func ParseWindowType(name string) (WindowType, error) {
	for i, n := range windowTypeNames {
		if strings.EqualFold(n, name) {
			return WindowType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown window type %q", name)
}

// Rect is a window rectangle in root window coordinates
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Window is the window-management layer's view of a managed window at the
// time it is inspected. Handle is opaque and only compared for equality.
type Window struct {
	Above             bool
	Area              Rect
	Below             bool
	Class             string
	ClientID          string // Manager-issued session client id (SM_CLIENT_ID)
	Command           string // Legacy WM_COMMAND
	Desktop           int
	Fullscreen        bool
	Handle            string
	Iconic            bool
	MaxHorz           bool
	MaxVert           bool
	Name              string
	PreFullscreenArea Rect
	PreMaxArea        Rect
	Role              string
	Shaded            bool
	SkipPager         bool
	SkipTaskbar       bool
	Title             string
	Transient         bool
	Type              WindowType
	Undecorated       bool
}

// Normal reports whether the window is a regular application window that
// can take part in session management.
func (w Window) Normal() bool {
	if w.Transient {
		return false
	}
	switch w.Type {
	case WindowTypeDesktop, WindowTypeDock, WindowTypeToolbar,
		WindowTypeMenu, WindowTypeUtility, WindowTypeSplash:
		return false
	}
	return true
}

// Restorable reports whether a saved record for this window could ever be
// matched again on the next start.
func (w Window) Restorable() bool {
	return w.ClientID != "" || w.Command != ""
}

// UnadornedArea returns the geometry the window had before it entered
// fullscreen or maximized state. Horizontal and vertical maximization are
// undone independently.
func (w Window) UnadornedArea() Rect {
	r := w.Area
	if w.Fullscreen {
		r = w.PreFullscreenArea
	}
	if w.MaxHorz {
		r.X = w.PreMaxArea.X
		r.Width = w.PreMaxArea.Width
	}
	if w.MaxVert {
		r.Y = w.PreMaxArea.Y
		r.Height = w.PreMaxArea.Height
	}
	return r
}

// Label returns a human-readable name for log messages
func (w Window) Label() string {
	if w.Title != "" {
		return w.Title
	}
	return w.Name
}
