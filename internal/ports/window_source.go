package ports

import "wmsession/internal/domain"

// WindowSource exposes the window-management layer's live state
type WindowSource interface {
	// Desktops returns the current desktop, count, layout and names
	Desktops() domain.DesktopSnapshot
	// FocusedHandle returns the handle of the focused window, or "" if none
	FocusedHandle() string
	// Stacking returns managed windows from top to bottom
	Stacking() []domain.Window
}
