// Package snapshot reads a description of live windows from a YAML file.
// It stands in for the window-management layer when saving or matching
// sessions from the command line.
//
//	desktop: 1
//	num_desktops: 4
//	layout: {orientation: 0, start_corner: 0, columns: 2, rows: 2}
//	names: [web, mail]
//	focused: w2
//	windows:            # stacking order, top first
//	  - handle: w2
//	    client_id: 1a2b3c
//	    name: xterm
//	    class: XTerm
//	    role: main
//	    type: normal
//	    area: {x: 10, y: 20, width: 640, height: 480}
//	    shaded: true
package snapshot

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"wmsession/internal/domain"
	"wmsession/internal/ports"
)

type rectYAML struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (r *rectYAML) toDomain() domain.Rect {
	if r == nil {
		return domain.Rect{}
	}
	return domain.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

type layoutYAML struct {
	Columns     int `yaml:"columns"`
	Orientation int `yaml:"orientation"`
	Rows        int `yaml:"rows"`
	StartCorner int `yaml:"start_corner"`
}

type windowYAML struct {
	Above             bool      `yaml:"above"`
	Area              rectYAML  `yaml:"area"`
	Below             bool      `yaml:"below"`
	Class             string    `yaml:"class"`
	ClientID          string    `yaml:"client_id"`
	Command           string    `yaml:"command"`
	Desktop           int       `yaml:"desktop"`
	Fullscreen        bool      `yaml:"fullscreen"`
	Handle            string    `yaml:"handle"`
	Iconic            bool      `yaml:"iconic"`
	MaxHorz           bool      `yaml:"max_horz"`
	MaxVert           bool      `yaml:"max_vert"`
	Name              string    `yaml:"name"`
	PreFullscreenArea *rectYAML `yaml:"pre_fullscreen_area"`
	PreMaxArea        *rectYAML `yaml:"pre_max_area"`
	Role              string    `yaml:"role"`
	Shaded            bool      `yaml:"shaded"`
	SkipPager         bool      `yaml:"skip_pager"`
	SkipTaskbar       bool      `yaml:"skip_taskbar"`
	Title             string    `yaml:"title"`
	Transient         bool      `yaml:"transient"`
	Type              string    `yaml:"type"`
	Undecorated       bool      `yaml:"undecorated"`
}

type fileYAML struct {
	Desktop     int          `yaml:"desktop"`
	Focused     string       `yaml:"focused"`
	Layout      layoutYAML   `yaml:"layout"`
	Names       []string     `yaml:"names"`
	NumDesktops int          `yaml:"num_desktops"`
	Windows     []windowYAML `yaml:"windows"`
}

// Source is a fixed set of windows loaded from a snapshot file
type Source struct {
	desktops domain.DesktopSnapshot
	focused  string
	windows  []domain.Window
}

// Verify interface compliance at compile time
var _ ports.WindowSource = (*Source)(nil)

// Load reads a snapshot file
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read window snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes a snapshot document. Windows without a type are normal;
// pre-maximize and pre-fullscreen areas default to the current area.
func Parse(data []byte) (*Source, error) {
	var doc fileYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse window snapshot: %w", err)
	}

	src := &Source{
		desktops: domain.DesktopSnapshot{
			Current: doc.Desktop,
			Layout: domain.DesktopLayout{
				Columns:     doc.Layout.Columns,
				Orientation: doc.Layout.Orientation,
				Rows:        doc.Layout.Rows,
				StartCorner: doc.Layout.StartCorner,
			},
			Names:       slices.Clone(doc.Names),
			NumDesktops: doc.NumDesktops,
		},
		focused: doc.Focused,
	}
	if src.desktops.NumDesktops == 0 {
		src.desktops.NumDesktops = 1
	}

	seen := make(map[string]bool, len(doc.Windows))
	for i, w := range doc.Windows {
		win, err := w.toDomain()
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		if win.Handle == "" {
			win.Handle = fmt.Sprintf("window-%d", i)
		}
		if seen[win.Handle] {
			return nil, fmt.Errorf("window %d: duplicate handle %q", i, win.Handle)
		}
		seen[win.Handle] = true
		src.windows = append(src.windows, win)
	}

	return src, nil
}

func (w windowYAML) toDomain() (domain.Window, error) {
	windowType := domain.WindowTypeNormal
	if w.Type != "" {
		t, err := domain.ParseWindowType(w.Type)
		if err != nil {
			return domain.Window{}, err
		}
		windowType = t
	}

	area := w.Area.toDomain()
	preMax := area
	if w.PreMaxArea != nil {
		preMax = w.PreMaxArea.toDomain()
	}
	preFullscreen := area
	if w.PreFullscreenArea != nil {
		preFullscreen = w.PreFullscreenArea.toDomain()
	}

	return domain.Window{
		Above:             w.Above,
		Area:              area,
		Below:             w.Below,
		Class:             w.Class,
		ClientID:          w.ClientID,
		Command:           w.Command,
		Desktop:           w.Desktop,
		Fullscreen:        w.Fullscreen,
		Handle:            w.Handle,
		Iconic:            w.Iconic,
		MaxHorz:           w.MaxHorz,
		MaxVert:           w.MaxVert,
		Name:              w.Name,
		PreFullscreenArea: preFullscreen,
		PreMaxArea:        preMax,
		Role:              w.Role,
		Shaded:            w.Shaded,
		SkipPager:         w.SkipPager,
		SkipTaskbar:       w.SkipTaskbar,
		Title:             w.Title,
		Transient:         w.Transient,
		Type:              windowType,
		Undecorated:       w.Undecorated,
	}, nil
}

// Desktops returns the desktop state recorded in the snapshot
func (s *Source) Desktops() domain.DesktopSnapshot {
	d := s.desktops
	d.Names = slices.Clone(d.Names)
	return d
}

// FocusedHandle returns the focused window's handle
func (s *Source) FocusedHandle() string {
	return s.focused
}

// Stacking returns the windows top to bottom
func (s *Source) Stacking() []domain.Window {
	return slices.Clone(s.windows)
}
