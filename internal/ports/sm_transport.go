package ports

import (
	"context"

	"wmsession/internal/domain"
)

// SMEventHandler receives every notification from the session manager.
// Transports must call it from a single goroutine.
type SMEventHandler func(event domain.SMEvent)

// SMConnector opens and closes the session manager connection
type SMConnector interface {
	// Open connects to the session manager. previousID is the client id
	// from an earlier run (empty for a fresh client); the returned id is
	// the one the manager assigned.
	Open(ctx context.Context, previousID string, handler SMEventHandler) (string, error)
	Close() error
	// Vendor returns the session manager's vendor string
	Vendor() string
}

// SMPropertySetter publishes client properties
type SMPropertySetter interface {
	// SetProperties stores props, replacing earlier values of the same name
	SetProperties(props ...domain.Property) error
}

// SMSaveHandshake drives the save-yourself protocol
type SMSaveHandshake interface {
	// RequestSaveYourself asks the manager to start a save (used for logout)
	RequestSaveYourself(req domain.SaveRequest) error
	// RequestSaveYourselfPhase2 asks for an EventSaveYourselfPhase2 once
	// every client has finished phase 1
	RequestSaveYourselfPhase2() error
	SaveYourselfDone(success bool) error
}

// SMTransport is the composite session manager transport
type SMTransport interface {
	SMConnector
	SMPropertySetter
	SMSaveHandshake
}
