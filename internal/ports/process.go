package ports

// ProcessExiter terminates the process
type ProcessExiter interface {
	// Exit ends the process with the given code
	Exit(code int)
}
