package domain

// Identity is the set of attributes used to recognise a window across
// restarts. All comparisons are exact and case-sensitive: session managers
// hand out opaque identifiers and a fuzzy match could restore state onto
// the wrong window.
type Identity struct {
	Class    string
	ClientID string
	Command  string
	Name     string
	Role     string
	Type     WindowType
}

// IdentityOf extracts the identity of a live window
func IdentityOf(w Window) Identity {
	return Identity{
		Class:    w.Class,
		ClientID: w.ClientID,
		Command:  w.Command,
		Name:     w.Name,
		Role:     w.Role,
		Type:     w.Type,
	}
}

// sameTriple compares the name/class/role triple
func (i Identity) sameTriple(o Identity) bool {
	return i.Name == o.Name && i.Class == o.Class && i.Role == o.Role
}

// SameWindow reports whether a saved record and a live window describe the
// same logical window.
//
// The key is the client id when both carry one, otherwise the legacy
// command. The name/class/role triple must match as well. Records keyed
// only by a legacy command must also agree on window type, since some
// applications open a different window on startup with otherwise
// identical metadata.
func SameWindow(record, window Identity) bool {
	keyed := (window.ClientID != "" && record.ClientID != "" && window.ClientID == record.ClientID) ||
		(window.Command != "" && record.Command != "" && window.Command == record.Command)
	if !keyed {
		return false
	}
	if !record.sameTriple(window) {
		return false
	}
	return record.Command == "" || record.Type == window.Type
}

// Collides reports whether two saved records cannot be told apart. Only
// like keys are compared (id with id, command with command) and the window
// type is ignored.
func Collides(a, b Identity) bool {
	var match bool
	switch {
	case a.ClientID != "" && b.ClientID != "":
		match = a.ClientID == b.ClientID
	case a.Command != "" && b.Command != "":
		match = a.Command == b.Command
	}
	return match && a.sameTriple(b)
}
