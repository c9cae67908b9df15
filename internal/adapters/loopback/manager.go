// Package loopback provides an in-process session manager. It speaks the
// same save-yourself handshake as a real XSMP manager, but events are
// driven by method calls and delivered on the caller's goroutine.
package loopback

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"wmsession/internal/domain"
	"wmsession/internal/logging"
	"wmsession/internal/ports"
)

// DefaultVendor is reported when no vendor is configured
const DefaultVendor = "wmsession-loopback"

// Manager is a single-client session manager
type Manager struct {
	// FailOpen makes Open fail as if no manager were running
	FailOpen bool
	// FailPhase2Request makes RequestSaveYourselfPhase2 fail
	FailPhase2Request bool

	clientID      string
	connected     bool
	done          []bool
	handler       ports.SMEventHandler
	pendingPhase2 bool
	properties    map[string]domain.Property
	requests      []domain.SaveRequest
	vendor        string
}

// Verify interface compliance at compile time
var _ ports.SMTransport = (*Manager)(nil)

// NewManager creates a loopback manager reporting the given vendor
func NewManager(vendor string) *Manager {
	if vendor == "" {
		vendor = DefaultVendor
	}
	return &Manager{
		properties: make(map[string]domain.Property),
		vendor:     vendor,
	}
}

// Open registers the client. A fresh UUID is assigned when previousID is
// empty.
func (m *Manager) Open(ctx context.Context, previousID string, handler ports.SMEventHandler) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSessionManagerUnavailable, err)
	}
	if m.FailOpen {
		return "", fmt.Errorf("%w: loopback manager refused connection", domain.ErrSessionManagerUnavailable)
	}

	m.clientID = previousID
	if m.clientID == "" {
		m.clientID = uuid.NewString()
	}
	m.handler = handler
	m.connected = true

	logging.Logger.Debug("Loopback client registered", "client_id", m.clientID, "vendor", m.vendor)
	return m.clientID, nil
}

// Close unregisters the client
func (m *Manager) Close() error {
	if !m.connected {
		return domain.ErrNotConnected
	}
	m.connected = false
	m.handler = nil
	m.pendingPhase2 = false
	logging.Logger.Debug("Loopback client closed", "client_id", m.clientID)
	return nil
}

// Vendor returns the configured vendor string
func (m *Manager) Vendor() string {
	return m.vendor
}

// SetProperties stores properties by name, replacing earlier values
func (m *Manager) SetProperties(props ...domain.Property) error {
	if !m.connected {
		return domain.ErrNotConnected
	}
	for _, p := range props {
		p.Values = slices.Clone(p.Values)
		m.properties[p.Name] = p
	}
	return nil
}

// RequestSaveYourself records the request and answers it straight away
// with a save-yourself event, as a manager would for a single client
func (m *Manager) RequestSaveYourself(req domain.SaveRequest) error {
	if !m.connected {
		return domain.ErrNotConnected
	}
	m.requests = append(m.requests, req)
	m.deliver(domain.SMEvent{
		Fast:     req.Fast,
		Interact: req.Interact,
		Kind:     domain.EventSaveYourself,
		Scope:    req.Scope,
		Shutdown: req.Shutdown,
	})
	return nil
}

// RequestSaveYourselfPhase2 queues a phase-2 event. It is delivered by
// DeliverPhase2, which stands in for "every other client finished phase 1".
func (m *Manager) RequestSaveYourselfPhase2() error {
	if !m.connected {
		return domain.ErrNotConnected
	}
	if m.FailPhase2Request {
		return fmt.Errorf("%w: phase 2 request rejected", domain.ErrSessionManagerUnavailable)
	}
	m.pendingPhase2 = true
	return nil
}

// SaveYourselfDone records the client's acknowledgment
func (m *Manager) SaveYourselfDone(success bool) error {
	if !m.connected {
		return domain.ErrNotConnected
	}
	m.done = append(m.done, success)
	logging.Logger.Debug("Loopback save acknowledged", "success", success)
	return nil
}

// SaveYourself sends a save-yourself event to the client
func (m *Manager) SaveYourself(scope domain.SaveScope, shutdown bool, interact domain.InteractStyle, fast bool) {
	m.deliver(domain.SMEvent{
		Fast:     fast,
		Interact: interact,
		Kind:     domain.EventSaveYourself,
		Scope:    scope,
		Shutdown: shutdown,
	})
}

// DeliverPhase2 sends the queued phase-2 event. Returns false when the
// client never asked for one.
func (m *Manager) DeliverPhase2() bool {
	if !m.pendingPhase2 {
		return false
	}
	m.pendingPhase2 = false
	m.deliver(domain.SMEvent{Kind: domain.EventSaveYourselfPhase2})
	return true
}

// Die tells the client to exit
func (m *Manager) Die() {
	m.deliver(domain.SMEvent{Kind: domain.EventDie})
}

// SaveComplete tells the client the session save finished
func (m *Manager) SaveComplete() {
	m.deliver(domain.SMEvent{Kind: domain.EventSaveComplete})
}

// ShutdownCancelled tells the client the shutdown was aborted
func (m *Manager) ShutdownCancelled() {
	m.deliver(domain.SMEvent{Kind: domain.EventShutdownCancelled})
}

func (m *Manager) deliver(event domain.SMEvent) {
	if !m.connected || m.handler == nil {
		logging.Logger.Debug("Loopback event dropped, no client", "event", event.Kind.String())
		return
	}
	m.handler(event)
}

// ClientID returns the id assigned to the client
func (m *Manager) ClientID() string {
	return m.clientID
}

// Connected reports whether a client is registered
func (m *Manager) Connected() bool {
	return m.connected
}

// Property returns a stored property
func (m *Manager) Property(name string) (domain.Property, bool) {
	p, ok := m.properties[name]
	return p, ok
}

// PendingPhase2 reports whether a phase-2 request is queued
func (m *Manager) PendingPhase2() bool {
	return m.pendingPhase2
}

// DoneResults returns every SaveYourselfDone value received, oldest first
func (m *Manager) DoneResults() []bool {
	return slices.Clone(m.done)
}

// Requests returns every save request the client made
func (m *Manager) Requests() []domain.SaveRequest {
	return slices.Clone(m.requests)
}
