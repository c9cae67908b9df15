package domain

import (
	"fmt"
	"strings"
)

// SaveScope is the kind of state a session manager asks a client to save
type SaveScope int

const (
	SaveLocal SaveScope = iota
	SaveGlobal
	SaveBoth
)

// String returns the scope name
func (s SaveScope) String() string {
	switch s {
	case SaveLocal:
		return "local"
	case SaveGlobal:
		return "global"
	case SaveBoth:
		return "both"
	default:
		return fmt.Sprintf("invalid(%d)", int(s))
	}
}

// ParseSaveScope converts a scope name to a SaveScope
func ParseSaveScope(s string) (SaveScope, error) {
	switch strings.ToLower(s) {
	case "local":
		return SaveLocal, nil
	case "global":
		return SaveGlobal, nil
	case "both":
		return SaveBoth, nil
	}
	return 0, fmt.Errorf("unknown save scope %q", s)
}

// InteractStyle tells a client how much user interaction a save may involve
type InteractStyle int

const (
	InteractNone InteractStyle = iota
	InteractErrors
	InteractAny
)

// SMEventKind identifies a notification delivered by the session manager
type SMEventKind int

const (
	EventSaveYourself SMEventKind = iota
	EventSaveYourselfPhase2
	EventDie
	EventSaveComplete
	EventShutdownCancelled
)

// String returns the event name
func (k SMEventKind) String() string {
	switch k {
	case EventSaveYourself:
		return "save-yourself"
	case EventSaveYourselfPhase2:
		return "save-yourself-phase2"
	case EventDie:
		return "die"
	case EventSaveComplete:
		return "save-complete"
	case EventShutdownCancelled:
		return "shutdown-cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// SMEvent is one notification from the session manager. Scope, Shutdown,
// Interact and Fast are only meaningful for EventSaveYourself.
type SMEvent struct {
	Fast     bool
	Interact InteractStyle
	Kind     SMEventKind
	Scope    SaveScope
	Shutdown bool
}

// SaveRequest asks the session manager to start a save on our behalf
type SaveRequest struct {
	Fast     bool
	Global   bool
	Interact InteractStyle
	Scope    SaveScope
	Shutdown bool
}

// Property value types
const (
	PropTypeArray8       = "ARRAY8"
	PropTypeCard8        = "CARD8"
	PropTypeListOfArray8 = "LISTofARRAY8"
)

// Property names advertised to the session manager
const (
	PropCloneCommand     = "CloneCommand"
	PropGSMPriority      = "_GSM_Priority"
	PropProcessID        = "ProcessID"
	PropProgram          = "Program"
	PropRestartCommand   = "RestartCommand"
	PropRestartStyleHint = "RestartStyleHint"
	PropUserID           = "UserID"
)

// RestartStyle is the value of the RestartStyleHint property
type RestartStyle byte

const (
	RestartIfRunning   RestartStyle = 0
	RestartAnyway      RestartStyle = 1
	RestartImmediately RestartStyle = 2
	RestartNever       RestartStyle = 3
)

// Property is a session manager property. CARD8 properties carry a single
// value holding the decimal byte.
type Property struct {
	Name   string
	Type   string
	Values []string
}
