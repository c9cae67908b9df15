package cmd

import (
	"context"
	"fmt"
	"strings"

	"wmsession/internal/adapters/loopback"
	"wmsession/internal/adapters/process"
	"wmsession/internal/adapters/snapshot"
	"wmsession/internal/domain"
	"wmsession/internal/logging"
	"wmsession/internal/services"
	"wmsession/internal/theme"
)

// SaveCmd runs one save handshake against the in-process session manager
type SaveCmd struct {
	Quit     bool   `help:"Ask the session manager to end the process after saving"`
	Restart  string `help:"Command line published as the restart command (defaults to this invocation)"`
	Scope    string `help:"Save scope requested by the session manager" enum:"local,global,both" default:"both"`
	Snapshot string `help:"YAML window snapshot, stacking order top first" required:"" type:"existingfile"`
	Vendor   string `help:"Vendor reported by the session manager" default:"${loopback_vendor}"`
}

// Run executes the save command
func (s *SaveCmd) Run(cli *CLI, container *Container) error {
	logging.Logger.Info("Executing save command",
		"snapshot", s.Snapshot,
		"scope", s.Scope,
		"vendor", s.Vendor)

	if cli.SMDisable {
		return fmt.Errorf("session management is disabled")
	}

	scope, err := domain.ParseSaveScope(s.Scope)
	if err != nil {
		return err
	}
	windows, err := snapshot.Load(s.Snapshot)
	if err != nil {
		return err
	}

	manager := loopback.NewManager(s.Vendor)
	exiter := process.NewOSExiter(func() { _ = cli.Close() })
	coordinator := services.NewCoordinator(
		manager,
		windows,
		container.Reader,
		container.Writer,
		exiter,
		container.CoordinatorOptions()...,
	)

	coordinator.Startup(context.Background(), services.StartupOptions{
		Args:        strings.Fields(s.Restart),
		ClientID:    cli.SMClientID,
		Restore:     cli.SMSaveFile != "",
		SaveFile:    cli.SMSaveFile,
		SessionsDir: container.SessionsDir,
	})
	if coordinator.State() == services.StateDisconnected {
		return fmt.Errorf("failed to connect: %w", domain.ErrSessionManagerUnavailable)
	}

	manager.SaveYourself(scope, s.Quit, domain.InteractNone, false)
	manager.DeliverPhase2()

	results := manager.DoneResults()
	if len(results) == 0 {
		return fmt.Errorf("session manager received no save result")
	}
	success := results[len(results)-1]

	s.printOutcome(coordinator, manager, scope, success, container)

	if success && s.Quit {
		// Exits through the coordinator's die path
		manager.Die()
		return nil
	}

	if err := coordinator.Shutdown(false); err != nil {
		logging.Logger.Warn("Failed to disconnect from session manager", "error", err)
	}
	if !success {
		return domain.ErrSaveFailed
	}
	return nil
}

func (s *SaveCmd) printOutcome(
	coordinator *services.Coordinator,
	manager *loopback.Manager,
	scope domain.SaveScope,
	success bool,
	container *Container,
) {
	label := func(name string) string { return theme.LabelStyle.Render(name) }

	fmt.Printf("%s %s\n", label("Client ID:"), coordinator.ClientID())
	fmt.Printf("%s %s\n", label("Scope:"), scope)
	fmt.Printf("%s %s\n", label("Result:"), theme.Outcome(success, "saved", "failed"))

	if scope == domain.SaveGlobal {
		fmt.Println(theme.MutedStyle.Render("Global save, no session file written"))
		return
	}
	if !success {
		return
	}

	fmt.Printf("%s %s\n", label("Session file:"), coordinator.SaveFile())
	if state, err := container.Reader.Read(coordinator.SaveFile()); err == nil {
		fmt.Printf("%s %d\n", label("Windows:"), state.Records.Len())
	}
	if prop, ok := manager.Property(domain.PropRestartCommand); ok {
		fmt.Printf("%s %s\n", label("Restart command:"), strings.Join(prop.Values, " "))
	}
}
