package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"wmsession/internal/domain"
	"wmsession/internal/logging"
	"wmsession/internal/services"
	"wmsession/internal/theme"
)

// InspectCmd prints what a session file would restore
type InspectCmd struct {
	File    string `arg:"" help:"Session file to inspect" type:"existingfile"`
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	NoDedup bool   `help:"Keep records that would be dropped as ambiguous"`
}

type inspectOutput struct {
	Desktop      *int                  `json:"desktop,omitempty"`
	DesktopNames []string              `json:"desktop_names,omitempty"`
	Dropped      int                   `json:"dropped"`
	Layout       *domain.DesktopLayout `json:"layout,omitempty"`
	NumDesktops  int                   `json:"num_desktops,omitempty"`
	Path         string                `json:"path"`
	Records      []recordView          `json:"records"`
}

// Run executes the inspect command
func (i *InspectCmd) Run(container *Container) error {
	logging.Logger.Info("Executing inspect command", "file", i.File, "no_dedup", i.NoDedup)

	state, err := container.Reader.Read(i.File)
	if err != nil {
		return fmt.Errorf("failed to load session file: %w", err)
	}

	dropped := 0
	if !i.NoDedup {
		dropped = services.NewRestoreService(state).Deduplicate()
	}

	output := inspectOutput{
		DesktopNames: state.DesktopNames,
		Dropped:      dropped,
		Layout:       state.Layout,
		NumDesktops:  state.NumDesktops,
		Path:         i.File,
		Records:      []recordView{},
	}
	if state.Desktop >= 0 {
		desktop := state.Desktop
		output.Desktop = &desktop
	}
	for _, r := range state.Records.Records() {
		output.Records = append(output.Records, newRecordView(r))
	}

	if i.Format == "json" {
		return printJSON(output)
	}
	return i.printTable(output)
}

func (i *InspectCmd) printTable(output inspectOutput) error {
	fmt.Println(theme.HeadingStyle.Render(output.Path))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	desktop := "-"
	if output.Desktop != nil {
		desktop = fmt.Sprintf("%d", *output.Desktop)
	}
	fmt.Fprintf(w, "%s\t%s\n", theme.LabelStyle.Render("Desktop:"), desktop)
	fmt.Fprintf(w, "%s\t%d\n", theme.LabelStyle.Render("Desktops:"), output.NumDesktops)
	if output.Layout != nil {
		fmt.Fprintf(w, "%s\torientation=%d corner=%d %dx%d\n",
			theme.LabelStyle.Render("Layout:"),
			output.Layout.Orientation,
			output.Layout.StartCorner,
			output.Layout.Columns,
			output.Layout.Rows)
	}
	if len(output.DesktopNames) > 0 {
		fmt.Fprintf(w, "%s\t%v\n", theme.LabelStyle.Render("Names:"), output.DesktopNames)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(theme.SectionStyle.Render("Windows"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tCLASS\tROLE\tTYPE\tDESKTOP\tGEOMETRY\tSTATE")
	for _, r := range output.Records {
		key := r.ID
		if key == "" {
			key = "cmd:" + r.Command
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%dx%d+%d+%d\t%s\n",
			key, r.Name, r.Class, r.Role, r.Type, r.Desktop,
			r.Width, r.Height, r.X, r.Y,
			stateFlags(r))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d records", len(output.Records))
	if output.Dropped > 0 {
		fmt.Printf(" (%s)", theme.MissingStyle.Render(fmt.Sprintf("%d dropped as ambiguous", output.Dropped)))
	}
	fmt.Println()
	return nil
}
