package services

import (
	"wmsession/internal/domain"
	"wmsession/internal/logging"
)

// RestoreHint is what the placement layer needs to put a restored window
// back where it was
type RestoreHint struct {
	Above       bool
	Below       bool
	Desktop     int
	Focused     bool
	Fullscreen  bool
	Geometry    domain.Rect
	Iconic      bool
	MaxHorz     bool
	MaxVert     bool
	Shaded      bool
	SkipPager   bool
	SkipTaskbar bool
	Undecorated bool
}

// RestoreService matches newly managed windows against saved records
type RestoreService struct {
	session *domain.SessionState
}

// NewRestoreService creates a RestoreService over the given session state
func NewRestoreService(session *domain.SessionState) *RestoreService {
	return &RestoreService{session: session}
}

// Deduplicate drops every record that collides with another one. When two
// records cannot be told apart there is no way to know which window gets
// which state, so neither is restored. Must run before the first Find.
// Returns the number of records removed.
func (s *RestoreService) Deduplicate() int {
	records := s.session.Records.Records()
	drop := make(map[int]bool)

	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			if domain.Collides(records[i].Identity(), records[j].Identity()) {
				logging.Logger.Debug("Dropping ambiguous saved windows",
					"key", records[i].Key(),
					"name", records[i].Name,
					"class", records[i].Class,
					"role", records[i].Role)
				drop[i] = true
				drop[j] = true
			}
		}
	}

	return s.session.Records.RemoveIndices(drop)
}

// Find returns the first unclaimed record, in load order, that describes
// the same window, and marks it claimed. Returns false when the window is
// new.
func (s *RestoreService) Find(w domain.Window) (*domain.StateRecord, bool) {
	id := domain.IdentityOf(w)

	var found *domain.StateRecord
	s.session.Records.Each(func(_ int, r *domain.StateRecord) bool {
		if r.Matched || !domain.SameWindow(r.Identity(), id) {
			return true
		}
		r.Matched = true
		found = r
		return false
	})

	if found == nil {
		logging.Logger.Debug("No saved state for window",
			"window", w.Label(),
			"client_id", w.ClientID,
			"command", w.Command)
		return nil, false
	}

	logging.Logger.Debug("Matched window to saved state",
		"window", w.Label(),
		"key", found.Key())
	return found, true
}

// Restore finds the saved state for a window and converts it to a hint
func (s *RestoreService) Restore(w domain.Window) (RestoreHint, bool) {
	r, ok := s.Find(w)
	if !ok {
		return RestoreHint{}, false
	}
	return RestoreHint{
		Above:       r.Above,
		Below:       r.Below,
		Desktop:     r.Desktop,
		Focused:     r.Focused,
		Fullscreen:  r.Fullscreen,
		Geometry:    r.Geometry(),
		Iconic:      r.Iconic,
		MaxHorz:     r.MaxHorz,
		MaxVert:     r.MaxVert,
		Shaded:      r.Shaded,
		SkipPager:   r.SkipPager,
		SkipTaskbar: r.SkipTaskbar,
		Undecorated: r.Undecorated,
	}, true
}
