package theme

import "github.com/charmbracelet/lipgloss"

// Text styles for command output
var (
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Outcome styles
var (
	FailureStyle = lipgloss.NewStyle().
			Foreground(ColorFailure)

	MissingStyle = lipgloss.NewStyle().
			Foreground(ColorMissing)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Outcome renders ok in the success style and anything else as a failure
func Outcome(ok bool, yes, no string) string {
	if ok {
		return SuccessStyle.Render(yes)
	}
	return FailureStyle.Render(no)
}
