package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache/db/model"
	"github.com/stretchr/testify/require"
)

// TestMap_EvictUntilWithinLimit frees the lowest scored payloads first.
func TestMap_EvictUntilWithinLimit(t *testing.T) {
	m, removed := newRecordingMap(10, 10)

	for i := 0; i < 4; i++ {
		e := model.NewEntry(fmt.Sprintf("k%d", i), make([]byte, 100), epoch)
		e.SetAccessCount(int64(i + 1))
		m.Set(e, epoch)
	}
	require.Equal(t, int64(400), m.Mem())

	freed, evicted := m.EvictUntilWithinLimit(epoch, 250, 10)
	require.Equal(t, int64(200), freed)
	require.Equal(t, int64(2), evicted)
	require.Equal(t, int64(200), m.Mem())
	require.Equal(t, []removal{{"k0", Evicted}, {"k1", Evicted}}, *removed)
}

// TestMap_EvictUntilWithinLimit_Backoff removes no more than backoff entries per call.
func TestMap_EvictUntilWithinLimit_Backoff(t *testing.T) {
	m, _ := newRecordingMap(10, 10)
	for i := 0; i < 4; i++ {
		m.Set(model.NewEntry(fmt.Sprintf("k%d", i), make([]byte, 100), epoch), epoch)
	}

	_, evicted := m.EvictUntilWithinLimit(epoch, 0, 1)
	require.Equal(t, int64(1), evicted)
	require.Equal(t, int64(3), m.Len())
}

// TestMap_EvictUntilWithinLimit_Noop does nothing under the limit.
func TestMap_EvictUntilWithinLimit_Noop(t *testing.T) {
	m, _ := newRecordingMap(10, 10)
	m.Set(model.NewEntry("a", make([]byte, 10), epoch), epoch)

	freed, evicted := m.EvictUntilWithinLimit(epoch, 100, 10)
	require.Zero(t, freed)
	require.Zero(t, evicted)
}

// TestMap_Victims ages entries by hour.
func TestMap_Victims(t *testing.T) {
	m, _ := newRecordingMap(10, 10)

	recent := model.NewEntry("recent", nil, epoch.Add(9*time.Hour))
	recent.SetAccessCount(5)
	m.Set(model.NewEntry("old", nil, epoch), epoch)
	m.Set(recent, epoch)

	victims := m.Victims(epoch.Add(10 * time.Hour))
	require.Equal(t, "old", victims[0].Key())
	require.Equal(t, "recent", victims[1].Key())
}
