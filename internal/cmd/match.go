package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"wmsession/internal/adapters/snapshot"
	"wmsession/internal/logging"
	"wmsession/internal/services"
	"wmsession/internal/theme"
)

// MatchCmd replays window creation from a snapshot against a session file
type MatchCmd struct {
	File     string `arg:"" help:"Session file to restore from" type:"existingfile"`
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Snapshot string `help:"YAML window snapshot, stacking order top first" required:"" type:"existingfile"`
}

type matchView struct {
	Class   string      `json:"class"`
	Handle  string      `json:"handle"`
	Key     string      `json:"key,omitempty"`
	Matched bool        `json:"matched"`
	Name    string      `json:"name"`
	Record  *recordView `json:"record,omitempty"`
}

type matchOutput struct {
	Dropped   int         `json:"dropped"`
	Unclaimed int         `json:"unclaimed"`
	Windows   []matchView `json:"windows"`
}

// Run executes the match command
func (m *MatchCmd) Run(container *Container) error {
	logging.Logger.Info("Executing match command", "file", m.File, "snapshot", m.Snapshot)

	state, err := container.Reader.Read(m.File)
	if err != nil {
		return fmt.Errorf("failed to load session file: %w", err)
	}
	source, err := snapshot.Load(m.Snapshot)
	if err != nil {
		return err
	}

	restorer := services.NewRestoreService(state)
	output := matchOutput{
		Dropped: restorer.Deduplicate(),
		Windows: []matchView{},
	}

	for _, w := range source.Stacking() {
		view := matchView{
			Class:  w.Class,
			Handle: w.Handle,
			Name:   w.Label(),
		}
		if r, ok := restorer.Find(w); ok {
			record := newRecordView(r)
			view.Key = r.Key()
			view.Matched = true
			view.Record = &record
		}
		output.Windows = append(output.Windows, view)
	}
	output.Unclaimed = state.Records.Unmatched()

	if m.Format == "json" {
		return printJSON(output)
	}
	return m.printTable(output)
}

func (m *MatchCmd) printTable(output matchOutput) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HANDLE\tNAME\tCLASS\tMATCH\tDESKTOP\tGEOMETRY\tSTATE")
	matched := 0
	for _, v := range output.Windows {
		if v.Record == nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t-\t-\t-\n", v.Handle, v.Name, v.Class, theme.MutedStyle.Render("new"))
			continue
		}
		matched++
		r := v.Record
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%dx%d+%d+%d\t%s\n",
			v.Handle, v.Name, v.Class,
			theme.SuccessStyle.Render(v.Key),
			r.Desktop, r.Width, r.Height, r.X, r.Y,
			stateFlags(*r))
	}
	w.Flush()

	fmt.Printf("\nMatched %d of %d windows, %d saved records unclaimed", matched, len(output.Windows), output.Unclaimed)
	if output.Dropped > 0 {
		fmt.Printf(", %d dropped as ambiguous", output.Dropped)
	}
	fmt.Println()
	return nil
}
