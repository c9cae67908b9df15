package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wmsession/internal/domain"
)

const sampleSnapshot = `
desktop: 1
num_desktops: 4
layout: {orientation: 1, start_corner: 2, columns: 2, rows: 2}
names: [web, mail]
focused: w2
windows:
  - handle: w1
    command: xterm -ls
    name: xterm
    class: XTerm
    role: ""
    type: dialog
    desktop: 2
    area: {x: 1, y: 2, width: 3, height: 4}
  - handle: w2
    client_id: abc
    name: firefox
    class: Firefox
    role: browser
    maximized: ignored
    max_horz: true
    shaded: true
    area: {x: 0, y: 10, width: 1920, height: 500}
    pre_max_area: {x: 100, y: 10, width: 800, height: 500}
`

func TestParse(t *testing.T) {
	src, err := Parse([]byte(sampleSnapshot))
	require.NoError(t, err)

	assert.Equal(t, domain.DesktopSnapshot{
		Current:     1,
		Layout:      domain.DesktopLayout{Orientation: 1, StartCorner: 2, Columns: 2, Rows: 2},
		Names:       []string{"web", "mail"},
		NumDesktops: 4,
	}, src.Desktops())
	assert.Equal(t, "w2", src.FocusedHandle())

	windows := src.Stacking()
	require.Len(t, windows, 2)

	assert.Equal(t, "w1", windows[0].Handle)
	assert.Equal(t, "xterm -ls", windows[0].Command)
	assert.Equal(t, domain.WindowTypeDialog, windows[0].Type)
	assert.Equal(t, 2, windows[0].Desktop)
	assert.Equal(t, domain.Rect{X: 1, Y: 2, Width: 3, Height: 4}, windows[0].PreMaxArea)
	assert.Equal(t, domain.Rect{X: 1, Y: 2, Width: 3, Height: 4}, windows[0].PreFullscreenArea)

	assert.Equal(t, "abc", windows[1].ClientID)
	assert.Equal(t, domain.WindowTypeNormal, windows[1].Type)
	assert.True(t, windows[1].MaxHorz)
	assert.True(t, windows[1].Shaded)
	assert.Equal(t, domain.Rect{X: 100, Y: 10, Width: 800, Height: 500}, windows[1].UnadornedArea())
}

func TestParse_Defaults(t *testing.T) {
	src, err := Parse([]byte("windows:\n  - name: a\n  - name: b\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, src.Desktops().NumDesktops)
	assert.Empty(t, src.FocusedHandle())
	windows := src.Stacking()
	require.Len(t, windows, 2)
	assert.Equal(t, "window-0", windows[0].Handle)
	assert.Equal(t, "window-1", windows[1].Handle)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"invalid yaml", "windows: [", "failed to parse window snapshot"},
		{"unknown type", "windows:\n  - type: popup\n", "unknown window type"},
		{"duplicate handle", "windows:\n  - handle: a\n  - handle: a\n", "duplicate handle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Parse([]byte(tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, src)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0600))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, src.Stacking(), 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStacking_ReturnsCopy(t *testing.T) {
	src, err := Parse([]byte(sampleSnapshot))
	require.NoError(t, err)

	windows := src.Stacking()
	windows[0].Name = "changed"

	assert.Equal(t, "xterm", src.Stacking()[0].Name)
}
