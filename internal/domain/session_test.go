package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionState(t *testing.T) {
	s := NewSessionState()

	assert.Equal(t, -1, s.Desktop)
	assert.Zero(t, s.NumDesktops)
	assert.Nil(t, s.Layout)
	assert.Nil(t, s.DesktopNames)
	require.NotNil(t, s.Records)
	assert.Zero(t, s.Records.Len())
}

func TestSessionState_Reset(t *testing.T) {
	s := NewSessionState()
	s.Desktop = 2
	s.NumDesktops = 4
	s.Layout = &DesktopLayout{Columns: 2, Rows: 2}
	s.DesktopNames = []string{"one"}
	s.Records.Append(&StateRecord{ID: "a"})

	s.Reset()

	assert.Equal(t, -1, s.Desktop)
	assert.Zero(t, s.NumDesktops)
	assert.Nil(t, s.Layout)
	assert.Nil(t, s.DesktopNames)
	assert.Zero(t, s.Records.Len())
}

func TestParseSaveScope(t *testing.T) {
	tests := []struct {
		input    string
		expected SaveScope
		wantErr  bool
	}{
		{"local", SaveLocal, false},
		{"GLOBAL", SaveGlobal, false},
		{"both", SaveBoth, false},
		{"everything", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			scope, err := ParseSaveScope(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, scope)
			assert.Equal(t, scope, mustParse(t, scope.String()))
		})
	}
}

func mustParse(t *testing.T, name string) SaveScope {
	t.Helper()
	scope, err := ParseSaveScope(name)
	require.NoError(t, err)
	return scope
}

func TestSMEventKind_String(t *testing.T) {
	assert.Equal(t, "save-yourself-phase2", EventSaveYourselfPhase2.String())
	assert.Equal(t, "die", EventDie.String())
	assert.Equal(t, "unknown(42)", SMEventKind(42).String())
}
