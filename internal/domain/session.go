package domain

import "time"

// DesktopLayout describes how virtual desktops are arranged in the pager
type DesktopLayout struct {
	Columns     int
	Orientation int
	Rows        int
	StartCorner int
}

// DesktopSnapshot is the desktop state reported by the window-management
// layer when a save is performed.
type DesktopSnapshot struct {
	Current     int
	Layout      DesktopLayout
	Names       []string
	NumDesktops int
}

// SessionState is everything recovered from a session file: desktop state
// for the desktop manager and the saved window records for matching.
// It is built once at startup and then only read, apart from the records'
// Matched flags.
type SessionState struct {
	Desktop      int            // -1 when no desktop was restored
	DesktopNames []string       // nil when no names were saved
	Layout       *DesktopLayout // nil unless all four layout fields were present
	NumDesktops  int            // 0 when not restored
	Records      *RecordStore
}

// NewSessionState creates an empty session state
func NewSessionState() *SessionState {
	return &SessionState{
		Desktop: -1,
		Records: NewRecordStore(),
	}
}

// Reset releases every record and forgets the restored desktop state
func (s *SessionState) Reset() {
	s.Records.Clear()
	s.Desktop = -1
	s.NumDesktops = 0
	s.Layout = nil
	s.DesktopNames = nil
}

// SaveSnapshot is the state captured when a save is committed. It lives
// only as long as the save that captured it.
type SaveSnapshot struct {
	Desktop       int
	FocusedHandle string
}

// SessionDocument is everything the session file writer needs
type SessionDocument struct {
	Desktops DesktopSnapshot
	Snapshot SaveSnapshot
	Windows  []Window // Stacking order, top to bottom
}

// SaveEntry is a catalog entry describing one save attempt
type SaveEntry struct {
	ClientID    string
	Path        string
	SavedAt     time.Time
	Scope       SaveScope
	Success     bool
	WindowCount int
}
