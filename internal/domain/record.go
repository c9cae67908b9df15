package domain

// StateRecord is one saved window's identity and placement, as read back
// from a session file.
type StateRecord struct {
	Above       bool
	Below       bool
	Class       string
	Command     string // Legacy launch command (set when ID is empty)
	Desktop     int
	Focused     bool
	Fullscreen  bool
	Height      int
	ID          string // Session manager client id
	Iconic      bool
	Matched     bool // Claimed by a live window; never persisted
	MaxHorz     bool
	MaxVert     bool
	Name        string
	Role        string
	Shaded      bool
	SkipPager   bool
	SkipTaskbar bool
	Type        WindowType
	Undecorated bool
	Width       int
	X           int
	Y           int
}

// Identity returns the record's identity for matching
func (r *StateRecord) Identity() Identity {
	return Identity{
		Class:    r.Class,
		ClientID: r.ID,
		Command:  r.Command,
		Name:     r.Name,
		Role:     r.Role,
		Type:     r.Type,
	}
}

// Key returns the value the record is keyed by: the client id if present,
// otherwise the legacy command.
func (r *StateRecord) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Command
}

// Geometry returns the saved unadorned geometry
func (r *StateRecord) Geometry() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
