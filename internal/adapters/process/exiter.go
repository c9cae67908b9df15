package process

import (
	"os"

	"wmsession/internal/logging"
	"wmsession/internal/ports"
)

// OSExiter implements ProcessExiter by terminating the running process.
// Cleanup hooks run first because os.Exit skips deferred calls.
type OSExiter struct {
	cleanup []func()
	exit    func(int)
}

// Compile-time interface verification
var _ ports.ProcessExiter = (*OSExiter)(nil)

// NewOSExiter creates an exiter that runs cleanup in order before exiting
func NewOSExiter(cleanup ...func()) *OSExiter {
	return &OSExiter{
		cleanup: cleanup,
		exit:    os.Exit,
	}
}

// Exit runs the cleanup hooks and ends the process with code
func (e *OSExiter) Exit(code int) {
	logging.Logger.Info("Exiting at session manager request", "code", code)
	for _, fn := range e.cleanup {
		fn()
	}
	e.exit(code)
}
