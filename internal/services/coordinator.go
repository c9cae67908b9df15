package services

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"wmsession/internal/domain"
	"wmsession/internal/logging"
	"wmsession/internal/ports"
)

const catalogTimeout = 5 * time.Second

// CoordinatorState is where the coordinator is in the session protocol
type CoordinatorState int

const (
	StateDisconnected CoordinatorState = iota
	StateConnected
	StateAwaitingSaveRequest
	StateSavingPhase1
	StateSavingPhase2
	StateDying
)

// String returns the state name
func (s CoordinatorState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateAwaitingSaveRequest:
		return "awaiting-save-request"
	case StateSavingPhase1:
		return "saving-phase1"
	case StateSavingPhase2:
		return "saving-phase2"
	case StateDying:
		return "dying"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// StartupOptions carries the session flags the process was started with
type StartupOptions struct {
	Args        []string // Our own command line, argv[0] first
	ClientID    string   // Client id from a previous run
	Disabled    bool
	Restore     bool   // Load SaveFile before connecting
	SaveFile    string // Session file from a previous run
	SessionsDir string // Where new session files are created
}

// DefaultEagerSnapshotVendors are the session manager vendors known to
// finish phase 1 before any client interacts
var DefaultEagerSnapshotVendors = []string{"KDE"}

// CoordinatorOption configures a Coordinator
type CoordinatorOption func(*Coordinator)

// WithEagerSnapshotVendors sets the session manager vendors that finish
// phase 1 before letting any client interact, so the focus and desktop
// can be captured then. Replaces DefaultEagerSnapshotVendors.
func WithEagerSnapshotVendors(vendors ...string) CoordinatorOption {
	return func(c *Coordinator) {
		c.eagerVendors = make(map[string]bool, len(vendors))
		for _, v := range vendors {
			c.eagerVendors[v] = true
		}
	}
}

// WithCatalog records every save in catalog
func WithCatalog(catalog ports.SaveCatalog) CoordinatorOption {
	return func(c *Coordinator) { c.catalog = catalog }
}

// WithPriority sets the _GSM_Priority property
func WithPriority(priority uint8) CoordinatorOption {
	return func(c *Coordinator) { c.priority = priority }
}

// WithUserName overrides the UserID property
func WithUserName(name string) CoordinatorOption {
	return func(c *Coordinator) { c.userName = name }
}

// WithPID overrides the ProcessID property and the save file name
func WithPID(pid int) CoordinatorOption {
	return func(c *Coordinator) { c.pid = pid }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) { c.now = now }
}

// Coordinator owns the connection to the session manager and answers its
// save requests by writing the session file. It is driven entirely by
// HandleEvent and is not safe for concurrent use.
type Coordinator struct {
	args         []string
	catalog      ports.SaveCatalog
	clientID     string
	eagerVendors map[string]bool
	exiter       ports.ProcessExiter
	handlers     map[domain.SMEventKind]func(domain.SMEvent)
	now          func() time.Time
	pending      *domain.SaveSnapshot
	pid          int
	priority     uint8
	reader       ports.SessionFileReader
	restorer     *RestoreService
	saveFile     string
	scope        domain.SaveScope
	session      *domain.SessionState
	state        CoordinatorState
	transport    ports.SMTransport
	userName     string
	windows      ports.WindowSource
	writer       ports.SessionFileWriter
}

// NewCoordinator creates a disconnected coordinator
func NewCoordinator(
	transport ports.SMTransport,
	windows ports.WindowSource,
	reader ports.SessionFileReader,
	writer ports.SessionFileWriter,
	exiter ports.ProcessExiter,
	opts ...CoordinatorOption,
) *Coordinator {
	session := domain.NewSessionState()
	c := &Coordinator{
		exiter:       exiter,
		now:          time.Now,
		pid:          os.Getpid(),
		priority:     DefaultGSMPriority,
		reader:       reader,
		restorer:     NewRestoreService(session),
		session:      session,
		state:        StateDisconnected,
		transport:    transport,
		userName:     currentUserName(),
		windows:      windows,
		writer:       writer,
	}
	c.handlers = map[domain.SMEventKind]func(domain.SMEvent){
		domain.EventSaveYourself:       c.onSaveYourself,
		domain.EventSaveYourselfPhase2: c.onSaveYourselfPhase2,
		domain.EventDie:                c.onDie,
		domain.EventSaveComplete:       c.onSaveComplete,
		domain.EventShutdownCancelled:  c.onShutdownCancelled,
	}
	WithEagerSnapshotVendors(DefaultEagerSnapshotVendors...)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Startup loads the previous session if asked to, picks the save file and
// connects to the session manager. A manager that cannot be reached leaves
// session management disabled; it is never fatal.
func (c *Coordinator) Startup(ctx context.Context, opts StartupOptions) {
	if opts.Disabled {
		logging.Logger.Info("Session management disabled")
		return
	}

	c.args = slices.Clone(opts.Args)
	if len(c.args) == 0 {
		c.args = slices.Clone(os.Args)
	}

	if opts.SessionsDir != "" {
		if err := os.MkdirAll(opts.SessionsDir, 0700); err != nil {
			logging.Logger.Warn("Unable to create sessions directory", "path", opts.SessionsDir, "error", err)
		}
	}

	if opts.SaveFile != "" {
		c.saveFile = opts.SaveFile
		if opts.Restore {
			c.load(opts.SaveFile)
		}
	} else {
		c.saveFile = GenerateSaveFileName(opts.SessionsDir, c.now(), c.pid)
	}

	logging.Logger.Debug("Connecting to session manager", "previous_id", opts.ClientID)
	id, err := c.transport.Open(ctx, opts.ClientID, c.HandleEvent)
	if err != nil {
		logging.Logger.Warn("Failed to connect to session manager", "error", err)
		return
	}
	c.clientID = id
	c.state = StateConnected
	logging.Logger.Info("Connected to session manager",
		"client_id", id,
		"vendor", c.transport.Vendor(),
		"save_file", c.saveFile)

	c.setProperties(
		programProperty(c.args[0]),
		userProperty(c.userName),
		restartStyleProperty(domain.RestartImmediately),
		pidProperty(c.pid),
		priorityProperty(c.priority),
		cloneCommandProperty(c.args),
	)
	c.state = StateAwaitingSaveRequest
}

// HandleEvent dispatches a session manager notification
func (c *Coordinator) HandleEvent(event domain.SMEvent) {
	handler, ok := c.handlers[event.Kind]
	if !ok {
		logging.Logger.Warn("Ignoring unknown session manager event", "event", event.Kind.String())
		return
	}
	handler(event)
}

// RequestLogout asks the session manager to end the session. With silent
// the manager is asked not to let clients interact with the user.
func (c *Coordinator) RequestLogout(silent bool) error {
	if !c.connected() {
		logging.Logger.Info("Not connected to a session manager")
		return domain.ErrNotConnected
	}

	interact := domain.InteractAny
	if silent {
		interact = domain.InteractNone
	}
	req := domain.SaveRequest{
		Fast:     true,
		Global:   true,
		Interact: interact,
		Scope:    domain.SaveGlobal,
		Shutdown: true,
	}
	if err := c.transport.RequestSaveYourself(req); err != nil {
		return fmt.Errorf("failed to request logout: %w", err)
	}
	return nil
}

// Shutdown closes the connection and releases the saved state. With
// permanent the manager is told not to start us again in this session.
func (c *Coordinator) Shutdown(permanent bool) error {
	if !c.connected() {
		return domain.ErrNotConnected
	}

	if permanent {
		c.setProperties(restartStyleProperty(domain.RestartIfRunning))
	}
	if err := c.transport.Close(); err != nil {
		logging.Logger.Warn("Failed to close session manager connection", "error", err)
	}

	c.session.Reset()
	c.pending = nil
	c.state = StateDisconnected
	logging.Logger.Info("Disconnected from session manager", "permanent", permanent)
	return nil
}

// State returns the protocol state
func (c *Coordinator) State() CoordinatorState {
	return c.state
}

// ClientID returns the id assigned by the session manager
func (c *Coordinator) ClientID() string {
	return c.clientID
}

// SaveFile returns the path the session is saved to
func (c *Coordinator) SaveFile() string {
	return c.saveFile
}

// Session returns the state loaded at startup
func (c *Coordinator) Session() *domain.SessionState {
	return c.session
}

// Restorer returns the matcher over the loaded state
func (c *Coordinator) Restorer() *RestoreService {
	return c.restorer
}

func (c *Coordinator) connected() bool {
	return c.state != StateDisconnected
}

func (c *Coordinator) load(path string) {
	logging.Logger.Debug("Loading from session file", "path", path)
	state, err := c.reader.Read(path)
	if err != nil {
		logging.Logger.Warn("Failed to load session file, starting fresh", "path", path, "error", err)
		return
	}

	c.session = state
	c.restorer = NewRestoreService(state)
	dropped := c.restorer.Deduplicate()
	logging.Logger.Info("Session loaded",
		"path", path,
		"records", state.Records.Len(),
		"dropped", dropped)
}

func (c *Coordinator) onSaveYourself(event domain.SMEvent) {
	logging.Logger.Debug("Session save requested",
		"scope", event.Scope.String(),
		"shutdown", event.Shutdown,
		"interact", int(event.Interact),
		"fast", event.Fast)

	// Nothing to contribute to a global save, we keep no open documents
	if event.Scope == domain.SaveGlobal {
		c.done(true)
		return
	}

	c.state = StateSavingPhase1
	c.scope = event.Scope
	c.pending = nil

	vendor := c.transport.Vendor()
	logging.Logger.Debug("Session manager vendor", "vendor", vendor)
	if c.eagerVendors[vendor] {
		snapshot := c.captureSnapshot()
		c.pending = &snapshot
	}

	if err := c.transport.RequestSaveYourselfPhase2(); err != nil {
		logging.Logger.Warn("Failed to request save phase 2", "error", err)
		c.pending = nil
		c.done(false)
		c.state = StateAwaitingSaveRequest
	}
}

func (c *Coordinator) onSaveYourselfPhase2(domain.SMEvent) {
	if c.state != StateSavingPhase1 {
		logging.Logger.Warn("Ignoring unexpected save phase 2", "state", c.state.String())
		return
	}
	c.state = StateSavingPhase2

	snapshot := c.pending
	c.pending = nil
	if snapshot == nil {
		s := c.captureSnapshot()
		snapshot = &s
	}

	success := c.save(*snapshot)
	c.done(success)
	c.state = StateAwaitingSaveRequest
}

func (c *Coordinator) onDie(domain.SMEvent) {
	logging.Logger.Info("Die requested")
	c.state = StateDying
	c.exiter.Exit(0)
}

func (c *Coordinator) onSaveComplete(domain.SMEvent) {
	logging.Logger.Debug("Save complete")
}

func (c *Coordinator) onShutdownCancelled(domain.SMEvent) {
	logging.Logger.Debug("Shutdown cancelled")
}

func (c *Coordinator) captureSnapshot() domain.SaveSnapshot {
	return domain.SaveSnapshot{
		Desktop:       c.windows.Desktops().Current,
		FocusedHandle: c.windows.FocusedHandle(),
	}
}

// save writes the session file and, on success, tells the manager how to
// restart us with it
func (c *Coordinator) save(snapshot domain.SaveSnapshot) bool {
	logging.Logger.Debug("Saving session", "path", c.saveFile)

	doc := domain.SessionDocument{
		Desktops: c.windows.Desktops(),
		Snapshot: snapshot,
		Windows:  c.windows.Stacking(),
	}
	count, err := c.writer.Write(c.saveFile, doc)
	success := err == nil
	if success {
		logging.Logger.Info("Session saved", "path", c.saveFile, "windows", count)
		c.setProperties(restartCommandProperty(c.args, c.clientID, c.saveFile))
	} else {
		logging.Logger.Error("Failed to save session", "path", c.saveFile, "error", err)
	}

	c.recordSave(count, success)
	return success
}

func (c *Coordinator) recordSave(count int, success bool) {
	if c.catalog == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	entry := domain.SaveEntry{
		ClientID:    c.clientID,
		Path:        c.saveFile,
		SavedAt:     c.now(),
		Scope:       c.scope,
		Success:     success,
		WindowCount: count,
	}
	if err := c.catalog.Record(ctx, entry); err != nil {
		logging.Logger.Warn("Failed to record save in catalog", "path", c.saveFile, "error", err)
	}
}

func (c *Coordinator) done(success bool) {
	logging.Logger.Debug("Saving is done", "success", success)
	if err := c.transport.SaveYourselfDone(success); err != nil {
		logging.Logger.Warn("Failed to acknowledge save", "error", err)
	}
}

func (c *Coordinator) setProperties(props ...domain.Property) {
	for _, p := range props {
		logging.Logger.Debug("Setting session property", "name", p.Name, "values", p.Values)
	}
	if err := c.transport.SetProperties(props...); err != nil {
		logging.Logger.Warn("Failed to set session properties", "error", err)
	}
}

// GenerateSaveFileName returns a fresh session file path in dir
func GenerateSaveFileName(dir string, now time.Time, pid int) string {
	name := fmt.Sprintf("%d-%d-%d.obs", now.Unix(), pid, uuid.New().ID())
	return filepath.Join(dir, name)
}

func currentUserName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
