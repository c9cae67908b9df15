package cmd

// SessionsCmd manages recorded saves
type SessionsCmd struct {
	List  SessionsListCmd  `cmd:"list" help:"List recorded saves" default:"1"`
	Prune SessionsPruneCmd `cmd:"prune" help:"Forget old saves and optionally delete their files"`
}
