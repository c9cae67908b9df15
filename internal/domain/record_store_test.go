package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordStore_RemoveIndicesKeepsOrder(t *testing.T) {
	store := NewRecordStore()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		store.Append(&StateRecord{ID: id})
	}

	removed := store.RemoveIndices(map[int]bool{1: true, 3: true})

	assert.Equal(t, 2, removed)
	var ids []string
	for _, r := range store.Records() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "c", "e"}, ids)
}

func TestRecordStore_RemoveIndicesEmpty(t *testing.T) {
	store := NewRecordStore()
	store.Append(&StateRecord{ID: "a"})

	assert.Equal(t, 0, store.RemoveIndices(nil))
	assert.Equal(t, 1, store.Len())
}

func TestRecordStore_Unmatched(t *testing.T) {
	store := NewRecordStore()
	store.Append(&StateRecord{ID: "a", Matched: true})
	store.Append(&StateRecord{ID: "b"})

	assert.Equal(t, 1, store.Unmatched())
}

func TestSessionState_ResetRecordStore(t *testing.T) {
	state := NewSessionState()
	state.Desktop = 2
	state.NumDesktops = 4
	state.Layout = &DesktopLayout{Columns: 2, Rows: 2}
	state.DesktopNames = []string{"one"}
	state.Records.Append(&StateRecord{ID: "a"})

	state.Reset()

	assert.Equal(t, -1, state.Desktop)
	assert.Equal(t, 0, state.NumDesktops)
	assert.Nil(t, state.Layout)
	assert.Nil(t, state.DesktopNames)
	assert.Equal(t, 0, state.Records.Len())
}

func TestStateRecord_Key(t *testing.T) {
	assert.Equal(t, "A", (&StateRecord{ID: "A"}).Key())
	assert.Equal(t, "xterm", (&StateRecord{Command: "xterm"}).Key())
}
