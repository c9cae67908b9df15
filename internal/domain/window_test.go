package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_UnadornedArea(t *testing.T) {
	base := Window{
		Area:              Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		PreFullscreenArea: Rect{X: 10, Y: 20, Width: 300, Height: 400},
		PreMaxArea:        Rect{X: 50, Y: 60, Width: 700, Height: 800},
	}

	tests := []struct {
		name     string
		modify   func(w *Window)
		expected Rect
	}{
		{
			name:     "plain window keeps its area",
			modify:   func(w *Window) {},
			expected: Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		},
		{
			name:     "fullscreen uses pre-fullscreen rect",
			modify:   func(w *Window) { w.Fullscreen = true },
			expected: Rect{X: 10, Y: 20, Width: 300, Height: 400},
		},
		{
			name:     "horizontal maximize only touches x and width",
			modify:   func(w *Window) { w.MaxHorz = true },
			expected: Rect{X: 50, Y: 0, Width: 700, Height: 1080},
		},
		{
			name:     "vertical maximize only touches y and height",
			modify:   func(w *Window) { w.MaxVert = true },
			expected: Rect{X: 0, Y: 60, Width: 1920, Height: 800},
		},
		{
			name:     "both axes",
			modify:   func(w *Window) { w.MaxHorz = true; w.MaxVert = true },
			expected: Rect{X: 50, Y: 60, Width: 700, Height: 800},
		},
		{
			name:     "fullscreen and vertical maximize combine",
			modify:   func(w *Window) { w.Fullscreen = true; w.MaxVert = true },
			expected: Rect{X: 10, Y: 60, Width: 300, Height: 800},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := base
			tt.modify(&w)
			assert.Equal(t, tt.expected, w.UnadornedArea())
		})
	}
}

func TestWindow_Normal(t *testing.T) {
	tests := []struct {
		windowType WindowType
		transient  bool
		expected   bool
	}{
		{WindowTypeNormal, false, true},
		{WindowTypeDialog, false, true},
		{WindowTypeNormal, true, false},
		{WindowTypeUtility, false, false},
		{WindowTypeDesktop, false, false},
		{WindowTypeDock, false, false},
		{WindowTypeToolbar, false, false},
		{WindowTypeMenu, false, false},
		{WindowTypeSplash, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.windowType.String(), func(t *testing.T) {
			w := Window{Type: tt.windowType, Transient: tt.transient}
			assert.Equal(t, tt.expected, w.Normal())
		})
	}
}

func TestParseWindowType(t *testing.T) {
	wt, err := ParseWindowType("Normal")
	require.NoError(t, err)
	assert.Equal(t, WindowTypeNormal, wt)

	wt, err = ParseWindowType("splash")
	require.NoError(t, err)
	assert.Equal(t, WindowTypeSplash, wt)

	_, err = ParseWindowType("popup")
	assert.Error(t, err)
}

func TestWindowType_String(t *testing.T) {
	assert.Equal(t, "normal", WindowTypeNormal.String())
	assert.Equal(t, "unknown(42)", WindowType(42).String())
}
