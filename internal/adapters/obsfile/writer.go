package obsfile

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"wmsession/internal/domain"
	"wmsession/internal/logging"
	"wmsession/internal/ports"
)

// Writer saves sessions to disk
type Writer struct{}

// Verify interface compliance at compile time
var _ ports.SessionFileWriter = (*Writer)(nil)

// NewWriter creates a new Writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes doc to path and returns the number of windows saved.
//
// The file is written to a temporary sibling and renamed into place while
// holding an advisory lock on path+".lock", so a failed save leaves the
// previous session file untouched. Errors wrap domain.ErrSaveFailed.
func (w *Writer) Write(path string, doc domain.SessionDocument) (int, error) {
	session := buildSession(doc)

	unlock, err := lockPath(path + ".lock")
	if err != nil {
		return 0, fmt.Errorf("%w: failed to lock %s: %w", domain.ErrSaveFailed, path, err)
	}
	defer unlock()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		logging.Logger.Warn("Unable to save the session", "path", path, "error", err)
		return 0, fmt.Errorf("%w: failed to create %s: %w", domain.ErrSaveFailed, path, err)
	}
	tmpPath := tmp.Name()

	if err := encode(tmp, session); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		logging.Logger.Warn("Error while saving the session", "path", path, "error", err)
		return 0, fmt.Errorf("%w: failed to write %s: %w", domain.ErrSaveFailed, path, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		logging.Logger.Warn("Error while saving the session", "path", path, "error", err)
		return 0, fmt.Errorf("%w: failed to flush %s: %w", domain.ErrSaveFailed, path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: failed to close %s: %w", domain.ErrSaveFailed, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: failed to replace %s: %w", domain.ErrSaveFailed, path, err)
	}

	logging.Logger.Debug("Session file written", "path", path, "windows", len(session.Windows))
	return len(session.Windows), nil
}

func encode(f *os.File, session sessionXML) error {
	bw := bufio.NewWriter(f)
	if _, err := bw.WriteString(xmlHeader); err != nil {
		return err
	}

	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")
	if err := enc.Encode(session); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// buildSession converts the document to its XML form, dropping windows
// that could never be matched on restore.
func buildSession(doc domain.SessionDocument) sessionXML {
	session := sessionXML{
		Desktop:     doc.Snapshot.Desktop,
		NumDesktops: doc.Desktops.NumDesktops,
		Layout: layoutXML{
			Orientation: doc.Desktops.Layout.Orientation,
			StartCorner: doc.Desktops.Layout.StartCorner,
			Columns:     doc.Desktops.Layout.Columns,
			Rows:        doc.Desktops.Layout.Rows,
		},
	}

	if len(doc.Desktops.Names) > 0 {
		session.DesktopNames = &desktopNamesXML{Names: doc.Desktops.Names}
	}

	for _, win := range doc.Windows {
		if !win.Normal() {
			continue
		}
		if !win.Restorable() {
			logging.Logger.Debug("Window has neither a session id nor a command, not saving it",
				"window", win.Label())
			continue
		}

		logging.Logger.Debug("Saving state for window", "window", win.Label())
		session.Windows = append(session.Windows, windowToXML(win, doc.Snapshot.FocusedHandle))
	}

	return session
}

func windowToXML(win domain.Window, focusedHandle string) windowXML {
	area := win.UnadornedArea()

	out := windowXML{
		Name:        win.Name,
		Class:       win.Class,
		Role:        win.Role,
		WindowType:  int(win.Type),
		Desktop:     win.Desktop,
		X:           area.X,
		Y:           area.Y,
		Width:       area.Width,
		Height:      area.Height,
		Shaded:      flagIf(win.Shaded),
		Iconic:      flagIf(win.Iconic),
		SkipPager:   flagIf(win.SkipPager),
		SkipTaskbar: flagIf(win.SkipTaskbar),
		Fullscreen:  flagIf(win.Fullscreen),
		Above:       flagIf(win.Above),
		Below:       flagIf(win.Below),
		MaxHorz:     flagIf(win.MaxHorz),
		MaxVert:     flagIf(win.MaxVert),
		Undecorated: flagIf(win.Undecorated),
		Focused:     flagIf(focusedHandle != "" && win.Handle == focusedHandle),
	}

	if win.ClientID != "" {
		out.ID = win.ClientID
	} else {
		out.Command = win.Command
	}
	return out
}
