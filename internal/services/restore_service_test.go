package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wmsession/internal/domain"
)

func termRecord(modify func(r *domain.StateRecord)) *domain.StateRecord {
	r := &domain.StateRecord{
		Class:   "Term",
		Desktop: 0,
		Height:  400,
		Name:    "term",
		Role:    "main",
		Type:    domain.WindowTypeNormal,
		Width:   600,
	}
	modify(r)
	return r
}

func termWindow(modify func(w *domain.Window)) domain.Window {
	w := domain.Window{
		Class: "Term",
		Name:  "term",
		Role:  "main",
		Type:  domain.WindowTypeNormal,
	}
	modify(&w)
	return w
}

func sessionWith(records ...*domain.StateRecord) *domain.SessionState {
	state := domain.NewSessionState()
	for _, r := range records {
		state.Records.Append(r)
	}
	return state
}

func TestFind_FirstUnmatchedInLoadOrder(t *testing.T) {
	first := termRecord(func(r *domain.StateRecord) { r.ID = "A"; r.Desktop = 1 })
	second := termRecord(func(r *domain.StateRecord) { r.ID = "A"; r.Desktop = 2 })
	service := NewRestoreService(sessionWith(first, second))
	window := termWindow(func(w *domain.Window) { w.ClientID = "A" })

	got, ok := service.Find(window)
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.True(t, first.Matched)
	assert.False(t, second.Matched)

	got, ok = service.Find(window)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.True(t, second.Matched)

	_, ok = service.Find(window)
	assert.False(t, ok)
}

func TestFind_SkipsAlreadyMatched(t *testing.T) {
	claimed := termRecord(func(r *domain.StateRecord) { r.ID = "A"; r.Matched = true })
	free := termRecord(func(r *domain.StateRecord) { r.ID = "A" })
	service := NewRestoreService(sessionWith(claimed, free))

	got, ok := service.Find(termWindow(func(w *domain.Window) { w.ClientID = "A" }))

	require.True(t, ok)
	assert.Same(t, free, got)
}

func TestFind_NoMatchLeavesFlagsAlone(t *testing.T) {
	record := termRecord(func(r *domain.StateRecord) { r.ID = "A" })
	service := NewRestoreService(sessionWith(record))

	_, ok := service.Find(termWindow(func(w *domain.Window) { w.ClientID = "B" }))

	assert.False(t, ok)
	assert.False(t, record.Matched)
}

func TestFind_LegacyCommandRequiresSameType(t *testing.T) {
	tests := []struct {
		name       string
		windowType domain.WindowType
		expected   bool
	}{
		{"same type matches", domain.WindowTypeNormal, true},
		{"different type does not match", domain.WindowTypeDialog, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := termRecord(func(r *domain.StateRecord) { r.Command = "xterm" })
			service := NewRestoreService(sessionWith(record))

			_, ok := service.Find(termWindow(func(w *domain.Window) {
				w.Command = "xterm"
				w.Type = tt.windowType
			}))

			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.expected, record.Matched)
		})
	}
}

func TestFind_IDBeatsCommandRecord(t *testing.T) {
	byID := termRecord(func(r *domain.StateRecord) { r.ID = "A" })
	byCommand := termRecord(func(r *domain.StateRecord) { r.Command = "xterm" })
	state := sessionWith(byID, byCommand)
	service := NewRestoreService(state)

	removed := service.Deduplicate()
	require.Equal(t, 0, removed)

	got, ok := service.Find(termWindow(func(w *domain.Window) { w.ClientID = "A" }))

	require.True(t, ok)
	assert.Same(t, byID, got)
	assert.False(t, byCommand.Matched)
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name     string
		records  []*domain.StateRecord
		expected []string
	}{
		{
			name: "same id different type removes both",
			records: []*domain.StateRecord{
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "A"; r.Type = domain.WindowTypeDialog }),
			},
			expected: nil,
		},
		{
			name: "identical records removes both",
			records: []*domain.StateRecord{
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
			},
			expected: nil,
		},
		{
			name: "same command removes both",
			records: []*domain.StateRecord{
				termRecord(func(r *domain.StateRecord) { r.Command = "xterm" }),
				termRecord(func(r *domain.StateRecord) { r.Command = "xterm" }),
			},
			expected: nil,
		},
		{
			name: "three way collision removes all",
			records: []*domain.StateRecord{
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
			},
			expected: nil,
		},
		{
			name: "different roles survive",
			records: []*domain.StateRecord{
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "A"; r.Role = "popup" }),
			},
			expected: []string{"A", "A"},
		},
		{
			name: "id and command never collide",
			records: []*domain.StateRecord{
				termRecord(func(r *domain.StateRecord) { r.ID = "xterm" }),
				termRecord(func(r *domain.StateRecord) { r.Command = "xterm" }),
			},
			expected: []string{"xterm", "xterm"},
		},
		{
			name: "unrelated records keep their order",
			records: []*domain.StateRecord{
				termRecord(func(r *domain.StateRecord) { r.ID = "B" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "C" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
				termRecord(func(r *domain.StateRecord) { r.ID = "D" }),
			},
			expected: []string{"B", "C", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := sessionWith(tt.records...)
			service := NewRestoreService(state)

			removed := service.Deduplicate()

			var keys []string
			for _, r := range state.Records.Records() {
				keys = append(keys, r.Key())
			}
			assert.Equal(t, tt.expected, keys)
			assert.Equal(t, len(tt.records)-len(tt.expected), removed)
		})
	}
}

func TestDeduplicate_PreventsAnyMatch(t *testing.T) {
	state := sessionWith(
		termRecord(func(r *domain.StateRecord) { r.ID = "A" }),
		termRecord(func(r *domain.StateRecord) { r.ID = "A"; r.Type = domain.WindowTypeDialog }),
	)
	service := NewRestoreService(state)
	service.Deduplicate()

	_, ok := service.Find(termWindow(func(w *domain.Window) { w.ClientID = "A" }))

	assert.False(t, ok)
}

func TestRestore_ReturnsHint(t *testing.T) {
	record := termRecord(func(r *domain.StateRecord) {
		r.ID = "A"
		r.Desktop = 3
		r.X, r.Y = 10, 20
		r.Shaded = true
		r.Undecorated = true
		r.Focused = true
	})
	service := NewRestoreService(sessionWith(record))

	hint, ok := service.Restore(termWindow(func(w *domain.Window) { w.ClientID = "A" }))

	require.True(t, ok)
	assert.Equal(t, 3, hint.Desktop)
	assert.Equal(t, domain.Rect{X: 10, Y: 20, Width: 600, Height: 400}, hint.Geometry)
	assert.True(t, hint.Shaded)
	assert.True(t, hint.Undecorated)
	assert.True(t, hint.Focused)
	assert.False(t, hint.Iconic)

	_, ok = service.Restore(termWindow(func(w *domain.Window) { w.ClientID = "A" }))
	assert.False(t, ok)
}
