package db

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache/db/model"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type removal struct {
	key    string
	reason Reason
}

func newRecordingMap(bound, target int) (*Map, *[]removal) {
	var removed []removal
	m := NewMap(bound, target, func(e *model.Entry, reason Reason) {
		removed = append(removed, removal{key: e.Key(), reason: reason})
	})
	return m, &removed
}

func issueSeq() func(e *model.Entry) string {
	var n int
	return func(e *model.Entry) string {
		n++
		h := fmt.Sprintf("%s#%d", e.Key(), n)
		e.AddHandle(h, 0)
		return h
	}
}

// TestMap_SetAndGet tracks length and weight.
func TestMap_SetAndGet(t *testing.T) {
	m, _ := newRecordingMap(10, 10)

	m.Set(model.NewEntry("a", []byte("1234"), epoch), epoch)
	m.Set(model.NewEntry("b", []byte("12"), epoch), epoch)

	require.Equal(t, int64(2), m.Len())
	require.Equal(t, int64(6), m.Mem())

	e, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, []byte("1234"), e.Payload())
	require.Equal(t, int64(1), e.AccessCount(), "Get must not count an access")
}

// TestMap_Set_ReplacesExisting resets the entry and reports the old one as replaced.
func TestMap_Set_ReplacesExisting(t *testing.T) {
	m, removed := newRecordingMap(10, 10)

	old := model.NewEntry("a", []byte("old"), epoch)
	m.Set(old, epoch)
	old.Touch()

	fresh := model.NewEntry("a", []byte("newer"), epoch.Add(time.Hour))
	m.Set(fresh, epoch.Add(time.Hour))

	require.Equal(t, int64(1), m.Len())
	require.Equal(t, int64(5), m.Mem())
	e, _ := m.Get("a")
	require.Same(t, fresh, e)
	require.Equal(t, int64(1), e.AccessCount())
	require.Equal(t, []removal{{"a", Replaced}}, *removed)
}

// TestMap_Set_EvictsLowestScore keeps the popular recent entry over the old one.
func TestMap_Set_EvictsLowestScore(t *testing.T) {
	m, removed := newRecordingMap(2, 2)

	a := model.NewEntry("A", []byte("a"), epoch.Add(9*time.Hour))
	a.SetAccessCount(5)
	b := model.NewEntry("B", []byte("b"), epoch)
	m.Set(b, epoch)
	m.Set(a, epoch.Add(9*time.Hour))

	now := epoch.Add(10 * time.Hour)
	evicted := m.Set(model.NewEntry("C", []byte("c"), now), now)

	require.Equal(t, 1, evicted)
	require.Equal(t, int64(2), m.Len())
	_, ok := m.Get("B")
	require.False(t, ok)
	_, ok = m.Get("A")
	require.True(t, ok)
	require.Equal(t, []removal{{"B", Evicted}}, *removed)
}

// TestMap_Set_TieBreakByInsertion evicts the older of two equally scored entries.
func TestMap_Set_TieBreakByInsertion(t *testing.T) {
	m, _ := newRecordingMap(10, 10)

	m.Set(model.NewEntry("first", nil, epoch), epoch)
	m.Set(model.NewEntry("second", nil, epoch), epoch)

	victims := m.Victims(epoch)
	require.Equal(t, "first", victims[0].Key())
	require.Equal(t, "second", victims[1].Key())
}

// TestMap_Set_Headroom drops down to the target rather than to the bound.
func TestMap_Set_Headroom(t *testing.T) {
	m, _ := newRecordingMap(5, 3)

	for i := 0; i < 5; i++ {
		m.Set(model.NewEntry(fmt.Sprintf("k%d", i), nil, epoch), epoch)
	}
	require.Equal(t, int64(5), m.Len())

	evicted := m.Set(model.NewEntry("k5", nil, epoch), epoch)
	require.Equal(t, 3, evicted)
	require.Equal(t, int64(3), m.Len())
}

// TestMap_Set_MayEvictInserted drops the new entry when it scores lowest.
func TestMap_Set_MayEvictInserted(t *testing.T) {
	m, _ := newRecordingMap(1, 1)

	hot := model.NewEntry("hot", nil, epoch)
	hot.SetAccessCount(10)
	m.Set(hot, epoch)

	cold := model.NewEntry("cold", nil, epoch)
	m.Set(cold, epoch)

	_, ok := m.Get("cold")
	require.False(t, ok)
	_, ok = m.Attach(cold, issueSeq())
	require.False(t, ok)
}

// TestNewMap_TargetClamped falls back to the bound for invalid targets.
func TestNewMap_TargetClamped(t *testing.T) {
	require.Equal(t, 4, NewMap(4, 0, nil).target)
	require.Equal(t, 4, NewMap(4, 9, nil).target)
	require.Equal(t, 2, NewMap(4, 2, nil).target)
}

// TestMap_Acquire counts an access and attaches the issued handle.
func TestMap_Acquire(t *testing.T) {
	m, removed := newRecordingMap(10, 10)
	issue := issueSeq()
	maxAge := 24 * time.Hour

	_, res := m.Acquire("a", epoch, maxAge, issue)
	require.Equal(t, Miss, res)

	m.Set(model.NewEntry("a", []byte("x"), epoch), epoch)

	h, res := m.Acquire("a", epoch.Add(time.Hour), maxAge, issue)
	require.Equal(t, Hit, res)
	require.Equal(t, "a#1", h)

	e, _ := m.Get("a")
	require.Equal(t, int64(2), e.AccessCount())
	require.Equal(t, []string{"a#1"}, e.Handles())

	_, res = m.Acquire("a", epoch.Add(maxAge), maxAge, issue)
	require.Equal(t, Stale, res)
	require.Equal(t, int64(0), m.Len())
	require.Equal(t, []removal{{"a", Expired}}, *removed)
}

// TestMap_Attach refuses entries that are no longer stored.
func TestMap_Attach(t *testing.T) {
	m, _ := newRecordingMap(10, 10)
	issue := issueSeq()

	e := model.NewEntry("a", nil, epoch)
	m.Set(e, epoch)

	h, ok := m.Attach(e, issue)
	require.True(t, ok)
	require.Equal(t, "a#1", h)
	require.Equal(t, int64(1), e.AccessCount())

	m.Set(model.NewEntry("a", nil, epoch), epoch)
	_, ok = m.Attach(e, issue)
	require.False(t, ok)
}

// TestMap_ExpireStale removes entries at or past maxAge.
func TestMap_ExpireStale(t *testing.T) {
	m, _ := newRecordingMap(10, 10)
	maxAge := time.Hour

	m.Set(model.NewEntry("old", []byte("12"), epoch), epoch)
	m.Set(model.NewEntry("edge", []byte("1"), epoch.Add(30*time.Minute)), epoch)
	m.Set(model.NewEntry("new", []byte("123"), epoch.Add(59*time.Minute)), epoch)

	expired := m.ExpireStale(epoch.Add(90*time.Minute), maxAge)
	require.Equal(t, 2, expired)
	require.Equal(t, int64(1), m.Len())
	require.Equal(t, int64(3), m.Mem())
}

// TestMap_Clear reports every entry as cleared and is idempotent.
func TestMap_Clear(t *testing.T) {
	m, removed := newRecordingMap(10, 10)

	m.Set(model.NewEntry("a", []byte("1"), epoch), epoch)
	m.Set(model.NewEntry("b", []byte("2"), epoch), epoch)

	require.Equal(t, 2, m.Clear())
	require.Equal(t, int64(0), m.Len())
	require.Equal(t, int64(0), m.Mem())
	require.Len(t, *removed, 2)
	for _, r := range *removed {
		require.Equal(t, Cleared, r.reason)
	}

	require.Equal(t, 0, m.Clear())
}

// TestMap_Walk stops when the callback returns false.
func TestMap_Walk(t *testing.T) {
	m, _ := newRecordingMap(10, 10)
	for i := 0; i < 5; i++ {
		m.Set(model.NewEntry(fmt.Sprintf("k%d", i), nil, epoch), epoch)
	}

	var seen int
	m.Walk(context.Background(), func(*model.Entry) bool {
		seen++
		return seen < 3
	})
	require.Equal(t, 3, seen)
}

// TestMap_ConcurrentSet never exceeds the bound.
func TestMap_ConcurrentSet(t *testing.T) {
	m := NewMap(8, 8, nil)
	const bound = 8

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Go(func() {
			m.Set(model.NewEntry(fmt.Sprintf("k%d", i%50), []byte("x"), epoch), epoch)
			require.LessOrEqual(t, m.Len(), int64(bound))
		})
	}
	wg.Wait()

	require.LessOrEqual(t, m.Len(), int64(bound))
	require.Equal(t, m.Len(), m.Mem())
}
