package cmd

import (
	"encoding/json"
	"fmt"

	"wmsession/internal/domain"
)

// recordView is the printable form of a saved window record
type recordView struct {
	Above       bool   `json:"above,omitempty"`
	Below       bool   `json:"below,omitempty"`
	Class       string `json:"class"`
	Command     string `json:"command,omitempty"`
	Desktop     int    `json:"desktop"`
	Focused     bool   `json:"focused,omitempty"`
	Fullscreen  bool   `json:"fullscreen,omitempty"`
	Height      int    `json:"height"`
	ID          string `json:"id,omitempty"`
	Iconic      bool   `json:"iconic,omitempty"`
	Matched     bool   `json:"matched"`
	MaxHorz     bool   `json:"max_horz,omitempty"`
	MaxVert     bool   `json:"max_vert,omitempty"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Shaded      bool   `json:"shaded,omitempty"`
	SkipPager   bool   `json:"skip_pager,omitempty"`
	SkipTaskbar bool   `json:"skip_taskbar,omitempty"`
	Type        string `json:"type"`
	Undecorated bool   `json:"undecorated,omitempty"`
	Width       int    `json:"width"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
}

func newRecordView(r *domain.StateRecord) recordView {
	return recordView{
		Above:       r.Above,
		Below:       r.Below,
		Class:       r.Class,
		Command:     r.Command,
		Desktop:     r.Desktop,
		Focused:     r.Focused,
		Fullscreen:  r.Fullscreen,
		Height:      r.Height,
		ID:          r.ID,
		Iconic:      r.Iconic,
		Matched:     r.Matched,
		MaxHorz:     r.MaxHorz,
		MaxVert:     r.MaxVert,
		Name:        r.Name,
		Role:        r.Role,
		Shaded:      r.Shaded,
		SkipPager:   r.SkipPager,
		SkipTaskbar: r.SkipTaskbar,
		Type:        r.Type.String(),
		Undecorated: r.Undecorated,
		Width:       r.Width,
		X:           r.X,
		Y:           r.Y,
	}
}

// stateFlags lists the state flags set on a record, for table output
func stateFlags(r recordView) string {
	flags := ""
	add := func(set bool, name string) {
		if !set {
			return
		}
		if flags != "" {
			flags += ","
		}
		flags += name
	}
	add(r.Focused, "focused")
	add(r.Iconic, "iconic")
	add(r.Shaded, "shaded")
	add(r.MaxHorz, "max_horz")
	add(r.MaxVert, "max_vert")
	add(r.Fullscreen, "fullscreen")
	add(r.Above, "above")
	add(r.Below, "below")
	add(r.SkipPager, "skip_pager")
	add(r.SkipTaskbar, "skip_taskbar")
	add(r.Undecorated, "undecorated")
	if flags == "" {
		return "-"
	}
	return flags
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
