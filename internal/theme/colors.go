package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - headings
	ColorSecondary Color = "86" // Cyan - section labels
)

// Outcome colors
const (
	ColorFailure Color = "1" // Red - failed save, unmatched window
	ColorMissing Color = "3" // Yellow - missing session file
	ColorSuccess Color = "2" // Green - saved, matched
)

// UI semantic colors
const (
	ColorMuted  Color = "241" // Gray - secondary text
	ColorSubtle Color = "245" // Light gray - labels
)
