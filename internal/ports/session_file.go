package ports

import "wmsession/internal/domain"

// SessionFileReader loads a saved session
type SessionFileReader interface {
	// Read parses the session file at path. On error no state is returned.
	Read(path string) (*domain.SessionState, error)
}

// SessionFileWriter persists a session
type SessionFileWriter interface {
	// Write serializes doc to path, returning the number of windows written
	Write(path string, doc domain.SessionDocument) (int, error)
}
