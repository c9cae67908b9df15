package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"wmsession/internal/logging"
	"wmsession/internal/services"
	"wmsession/internal/theme"
)

// SessionsListCmd lists recorded saves
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Verify bool   `help:"Load each session file and report its record count"`
}

type saveView struct {
	ClientID    string `json:"client_id"`
	Exists      *bool  `json:"exists,omitempty"`
	Path        string `json:"path"`
	Problem     string `json:"problem,omitempty"`
	Records     *int   `json:"records,omitempty"`
	SavedAt     string `json:"saved_at"`
	Scope       string `json:"scope"`
	Success     bool   `json:"success"`
	WindowCount int    `json:"window_count"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(container *Container) error {
	logging.Logger.Info("Executing sessions list command", "verify", s.Verify)

	statuses, err := container.CatalogService.List(context.Background(), s.Verify)
	if err != nil {
		return fmt.Errorf("failed to list saves: %w", err)
	}

	if s.Format == "json" {
		views := make([]saveView, 0, len(statuses))
		for _, st := range statuses {
			views = append(views, newSaveView(st))
		}
		return printJSON(views)
	}
	return s.printTable(statuses)
}

func newSaveView(st services.SaveStatus) saveView {
	view := saveView{
		ClientID:    st.ClientID,
		Path:        st.Path,
		Problem:     st.Problem,
		SavedAt:     st.SavedAt.Local().Format("2006-01-02 15:04:05"),
		Scope:       st.Scope.String(),
		Success:     st.Success,
		WindowCount: st.WindowCount,
	}
	if st.Verified {
		exists, records := st.Exists, st.Records
		view.Exists = &exists
		view.Records = &records
	}
	return view
}

func (s *SessionsListCmd) printTable(statuses []services.SaveStatus) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "SAVED AT\tSCOPE\tRESULT\tWINDOWS\tCLIENT ID\tPATH"
	if s.Verify {
		header += "\tFILE"
	}
	fmt.Fprintln(w, header)

	for _, st := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s",
			st.SavedAt.Local().Format("2006-01-02 15:04:05"),
			st.Scope,
			theme.Outcome(st.Success, "ok", "failed"),
			st.WindowCount,
			st.ClientID,
			st.Path)
		if s.Verify {
			fmt.Fprintf(w, "\t%s", fileStatus(st))
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d saves\n", len(statuses))
	return nil
}

func fileStatus(st services.SaveStatus) string {
	switch {
	case !st.Exists:
		return theme.MissingStyle.Render("missing")
	case st.Problem != "":
		return theme.FailureStyle.Render("unreadable")
	default:
		return theme.SuccessStyle.Render(fmt.Sprintf("%d records", st.Records))
	}
}
