package obsfile

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"wmsession/internal/domain"
	"wmsession/internal/logging"
	"wmsession/internal/ports"
)

// Reader loads sessions from disk
type Reader struct{}

// Verify interface compliance at compile time
var _ ports.SessionFileReader = (*Reader)(nil)

// NewReader creates a new Reader
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the session file at path into a fresh SessionState.
//
// Unreadable files and documents that are not well-formed
// openbox_session documents fail with domain.ErrMalformedSessionFile and
// return no state. Individual <window> entries that lack a required field
// are dropped and the rest of the file is still loaded. The records are
// returned in file order; duplicates are not removed here.
func (r *Reader) Read(path string) (*domain.SessionState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", domain.ErrMalformedSessionFile, path, err)
	}
	return Parse(data)
}

// Parse decodes a session document
func Parse(data []byte) (*domain.SessionState, error) {
	var doc sessionFileXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedSessionFile, err)
	}

	state := domain.NewSessionState()

	if doc.Desktop != nil {
		if n, err := parseInt(*doc.Desktop); err == nil {
			state.Desktop = n
		} else {
			logging.Logger.Warn("Ignoring invalid desktop in session file", "value", *doc.Desktop)
		}
	}

	if doc.NumDesktops != nil {
		if n, err := parseInt(*doc.NumDesktops); err == nil {
			state.NumDesktops = n
		} else {
			logging.Logger.Warn("Ignoring invalid numdesktops in session file", "value", *doc.NumDesktops)
		}
	}

	if doc.Layout != nil {
		state.Layout = parseLayout(doc.Layout)
	}

	if doc.DesktopNames != nil && len(doc.DesktopNames.Names) > 0 {
		state.DesktopNames = append([]string(nil), doc.DesktopNames.Names...)
	}

	for i, w := range doc.Windows {
		record, err := buildRecord(w)
		if err != nil {
			logging.Logger.Debug("Dropping saved window", "index", i, "error", err)
			continue
		}
		state.Records.Append(record)
	}

	return state, nil
}

// parseLayout returns nil unless all four fields are present and valid
func parseLayout(l *layoutFileXML) *domain.DesktopLayout {
	fields := []*string{l.Orientation, l.StartCorner, l.Columns, l.Rows}
	values := make([]int, len(fields))
	for i, f := range fields {
		if f == nil {
			return nil
		}
		n, err := parseInt(*f)
		if err != nil {
			return nil
		}
		values[i] = n
	}
	return &domain.DesktopLayout{
		Orientation: values[0],
		StartCorner: values[1],
		Columns:     values[2],
		Rows:        values[3],
	}
}

// recordBuilder fills a record field by field and remembers the first
// failure; later steps become no-ops once a field is missing.
type recordBuilder struct {
	err    error
	record domain.StateRecord
}

func (b *recordBuilder) str(field string, v *string, dst *string) {
	if b.err != nil {
		return
	}
	if v == nil {
		b.err = fmt.Errorf("%w: missing <%s>", domain.ErrIncompleteRecord, field)
		return
	}
	*dst = *v
}

func (b *recordBuilder) num(field string, v *string, dst *int) {
	if b.err != nil {
		return
	}
	if v == nil {
		b.err = fmt.Errorf("%w: missing <%s>", domain.ErrIncompleteRecord, field)
		return
	}
	n, err := parseInt(*v)
	if err != nil {
		b.err = fmt.Errorf("%w: invalid <%s> %q", domain.ErrIncompleteRecord, field, *v)
		return
	}
	*dst = n
}

// buildRecord turns one <window> element into a record, or fails with
// domain.ErrIncompleteRecord without returning a partial record.
func buildRecord(w windowFileXML) (*domain.StateRecord, error) {
	b := &recordBuilder{}

	switch {
	case w.ID != nil && *w.ID != "":
		b.record.ID = *w.ID
	case w.Command != nil && *w.Command != "":
		b.record.Command = *w.Command
	default:
		return nil, fmt.Errorf("%w: neither id nor command", domain.ErrIncompleteRecord)
	}

	var windowType int
	b.str("name", w.Name, &b.record.Name)
	b.str("class", w.Class, &b.record.Class)
	b.str("role", w.Role, &b.record.Role)
	b.num("windowtype", w.WindowType, &windowType)
	b.num("desktop", w.Desktop, &b.record.Desktop)
	b.num("x", w.X, &b.record.X)
	b.num("y", w.Y, &b.record.Y)
	b.num("width", w.Width, &b.record.Width)
	b.num("height", w.Height, &b.record.Height)
	if b.err != nil {
		return nil, b.err
	}

	record := b.record
	record.Type = domain.WindowType(windowType)
	record.Shaded = w.Shaded != nil
	record.Iconic = w.Iconic != nil
	record.SkipPager = w.SkipPager != nil
	record.SkipTaskbar = w.SkipTaskbar != nil
	record.Fullscreen = w.Fullscreen != nil
	record.Above = w.Above != nil
	record.Below = w.Below != nil
	record.MaxHorz = w.MaxHorz != nil
	record.MaxVert = w.MaxVert != nil
	record.Undecorated = w.Undecorated != nil
	record.Focused = w.Focused != nil
	return &record, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
