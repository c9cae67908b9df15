package services

import (
	"slices"
	"strconv"
	"strings"

	"wmsession/internal/domain"
)

// DefaultGSMPriority asks gnome-session to start us before regular
// applications
const DefaultGSMPriority uint8 = 20

// Restart command flags understood by the CLI
const (
	FlagClientID = "--sm-client-id"
	FlagSaveFile = "--sm-save-file"
)

// RestartCommand is the command line the session manager runs to bring us
// back with the saved session. Session flags already present in args are
// replaced so repeated restarts do not accumulate them.
func RestartCommand(args []string, clientID, saveFile string) []string {
	return append(withoutSessionFlags(args), FlagClientID, clientID, FlagSaveFile, saveFile)
}

func withoutSessionFlags(args []string) []string {
	cmd := make([]string, 0, len(args)+4)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == FlagClientID || arg == FlagSaveFile {
			i++
			continue
		}
		if strings.HasPrefix(arg, FlagClientID+"=") || strings.HasPrefix(arg, FlagSaveFile+"=") {
			continue
		}
		cmd = append(cmd, arg)
	}
	return cmd
}

func array8Property(name, value string) domain.Property {
	return domain.Property{Name: name, Type: domain.PropTypeArray8, Values: []string{value}}
}

func card8Property(name string, value uint8) domain.Property {
	return domain.Property{Name: name, Type: domain.PropTypeCard8, Values: []string{strconv.Itoa(int(value))}}
}

func listProperty(name string, values []string) domain.Property {
	return domain.Property{Name: name, Type: domain.PropTypeListOfArray8, Values: slices.Clone(values)}
}

func programProperty(program string) domain.Property {
	return array8Property(domain.PropProgram, program)
}

func userProperty(user string) domain.Property {
	return array8Property(domain.PropUserID, user)
}

func restartStyleProperty(style domain.RestartStyle) domain.Property {
	return card8Property(domain.PropRestartStyleHint, uint8(style))
}

func pidProperty(pid int) domain.Property {
	return array8Property(domain.PropProcessID, strconv.Itoa(pid))
}

func priorityProperty(priority uint8) domain.Property {
	return card8Property(domain.PropGSMPriority, priority)
}

// cloneCommandProperty starts a new, unrelated instance
func cloneCommandProperty(args []string) domain.Property {
	return listProperty(domain.PropCloneCommand, withoutSessionFlags(args))
}

func restartCommandProperty(args []string, clientID, saveFile string) domain.Property {
	return listProperty(domain.PropRestartCommand, RestartCommand(args, clientID, saveFile))
}
