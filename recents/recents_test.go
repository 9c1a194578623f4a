////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package recents

import (
	"strconv"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gitlab.com/elixxir/ekv"

	"gitlab.com/elixxir/emojicon/emoji"
	"gitlab.com/elixxir/emojicon/storage"
	"gitlab.com/elixxir/emojicon/storage/versioned"
)

var (
	grinning = emoji.FromCodePoint(0x1F600)
	heart    = emoji.FromCodePoint(0x2764)
	japan    = emoji.FromSequence(0x1F1EF, 0x1F1F5)
	keycap1  = emoji.FromSequence('1', emoji.CombiningEnclosingKeycap)
	legacy   = emoji.FromLegacy(0xE056)
)

func newTestPreferences(t *testing.T) storage.Preferences {
	prefs, err := storage.NewKVPreferences(
		versioned.NewKV(ekv.MakeMemstore()), storage.DefaultNamespace)
	require.NoError(t, err)
	return prefs
}

func newTestManager(t *testing.T, maximumSize int) (*Manager,
	storage.Preferences) {
	prefs := newTestPreferences(t)
	m, err := NewOrLoad(prefs, maximumSize)
	require.NoError(t, err)
	return m, prefs
}

// failingPreferences wraps Preferences and fails writes while fail is set.
type failingPreferences struct {
	storage.Preferences
	fail bool
}

func (f *failingPreferences) SetString(key, value string) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Preferences.SetString(key, value)
}

func (f *failingPreferences) SetInt(key string, value int) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Preferences.SetInt(key, value)
}

// Tests that pushes are kept most recent first and written through.
func TestManager_Push(t *testing.T) {
	m, prefs := newTestManager(t, DefaultMaximumSize)
	require.Equal(t, 0, m.Len())

	require.NoError(t, m.Push(grinning))
	require.NoError(t, m.Push(japan))
	require.NoError(t, m.Push(keycap1))

	expected := []emoji.Emojicon{keycap1, japan, grinning}
	require.Equal(t, expected, m.Get())

	s, err := prefs.GetString(RecentsKey, "")
	require.NoError(t, err)
	require.Equal(t, Marshal(expected), s)
}

// Error path: tests that emoji that would not read back as themselves are
// rejected without touching the list or the store.
func TestManager_Push_Invalid(t *testing.T) {
	m, prefs := newTestManager(t, DefaultMaximumSize)
	require.NoError(t, m.Push(grinning))

	for _, e := range []emoji.Emojicon{
		emoji.FromChars(""), emoji.FromChars("a,b"), emoji.FromChars(","),
	} {
		err := m.Push(e)
		require.ErrorIs(t, err, ErrInvalidEmoji)
	}
	require.Equal(t, []emoji.Emojicon{grinning}, m.Get())

	s, err := prefs.GetString(RecentsKey, "")
	require.NoError(t, err)
	require.Equal(t, Marshal([]emoji.Emojicon{grinning}), s)

	loaded, err := NewOrLoad(prefs, DefaultMaximumSize)
	require.NoError(t, err)
	require.Equal(t, m.Get(), loaded.Get())
}

// Tests that pushing an emoji already in the list moves it to the front
// without duplicating it.
func TestManager_Push_MoveToFront(t *testing.T) {
	m, _ := newTestManager(t, DefaultMaximumSize)

	for _, e := range []emoji.Emojicon{grinning, heart, japan} {
		require.NoError(t, m.Push(e))
	}
	require.NoError(t, m.Push(grinning))
	require.Equal(t, []emoji.Emojicon{grinning, japan, heart}, m.Get())

	// Same emoji with a different icon is still the same emoji
	require.NoError(t, m.Push(heart.WithIcon(emoji.Default())))
	require.Equal(t, 3, m.Len())
	require.Equal(t, heart.Emoji, m.Get()[0].Emoji)
}

// Tests that pushing past the maximum evicts from the tail.
func TestManager_Push_Evict(t *testing.T) {
	m, _ := newTestManager(t, 2)

	require.NoError(t, m.Push(grinning))
	require.NoError(t, m.Push(heart))
	require.NoError(t, m.Push(japan))
	require.Equal(t, []emoji.Emojicon{japan, heart}, m.Get())
	require.False(t, m.Contains(grinning))

	m0, _ := newTestManager(t, 0)
	require.NoError(t, m0.Push(grinning))
	require.Equal(t, 0, m0.Len())
}

func TestManager_Remove(t *testing.T) {
	m, prefs := newTestManager(t, DefaultMaximumSize)
	require.NoError(t, m.Push(grinning))
	require.NoError(t, m.Push(heart))

	removed, err := m.Remove(grinning)
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, []emoji.Emojicon{heart}, m.Get())

	s, err := prefs.GetString(RecentsKey, "")
	require.NoError(t, err)
	require.Equal(t, heart.Emoji, s)

	removed, err = m.Remove(japan)
	require.NoError(t, err)
	require.False(t, removed)
	require.Equal(t, 1, m.Len())
}

// Tests that lowering the maximum does not truncate until the next push.
func TestManager_SetMaximumSize(t *testing.T) {
	m, _ := newTestManager(t, DefaultMaximumSize)
	for _, e := range []emoji.Emojicon{grinning, heart, japan, keycap1} {
		require.NoError(t, m.Push(e))
	}

	m.SetMaximumSize(2)
	require.Equal(t, 2, m.MaximumSize())
	require.Equal(t, 4, m.Len())

	require.NoError(t, m.Push(legacy))
	require.Equal(t, []emoji.Emojicon{legacy, keycap1}, m.Get())

	m.SetMaximumSize(-3)
	require.Equal(t, 0, m.MaximumSize())
}

// Tests that a new manager over the same preferences sees the saved list.
func TestNewOrLoad(t *testing.T) {
	m, prefs := newTestManager(t, DefaultMaximumSize)
	for _, e := range []emoji.Emojicon{grinning, legacy, japan, keycap1} {
		require.NoError(t, m.Push(e))
	}

	loaded, err := NewOrLoad(prefs, DefaultMaximumSize)
	require.NoError(t, err)
	require.Equal(t, m.Get(), loaded.Get())
}

// Tests that loading an oversized list keeps the most recent items.
func TestNewOrLoad_Truncate(t *testing.T) {
	prefs := newTestPreferences(t)
	require.NoError(t, prefs.SetString(RecentsKey,
		Marshal([]emoji.Emojicon{japan, heart, grinning})))

	m, err := NewOrLoad(prefs, 2)
	require.NoError(t, err)
	require.Equal(t, []emoji.Emojicon{japan, heart}, m.Get())
}

// Tests that empty tokens in the persisted string are skipped.
func TestNewOrLoad_EmptyTokens(t *testing.T) {
	prefs := newTestPreferences(t)
	require.NoError(t, prefs.SetString(RecentsKey,
		","+grinning.Emoji+",,"+heart.Emoji+","))

	m, err := NewOrLoad(prefs, DefaultMaximumSize)
	require.NoError(t, err)
	require.Equal(t, []emoji.Emojicon{grinning, heart}, m.Get())
}

// Error path: tests that NewOrLoad rejects bad arguments.
func TestNewOrLoad_Error(t *testing.T) {
	_, err := NewOrLoad(nil, DefaultMaximumSize)
	require.Error(t, err)

	_, err = NewOrLoad(newTestPreferences(t), -1)
	require.Error(t, err)
}

// Error path: tests that a failed write is returned while the list keeps the
// change.
func TestManager_PersistFailure(t *testing.T) {
	prefs := &failingPreferences{Preferences: newTestPreferences(t)}
	m, err := NewOrLoad(prefs, DefaultMaximumSize)
	require.NoError(t, err)
	require.NoError(t, m.Push(grinning))

	prefs.fail = true
	require.Error(t, m.Push(heart))
	require.Equal(t, []emoji.Emojicon{heart, grinning}, m.Get())

	removed, err := m.Remove(grinning)
	require.Error(t, err)
	require.True(t, removed)
	require.Equal(t, []emoji.Emojicon{heart}, m.Get())

	require.Error(t, m.SetRecentPage(3))

	// The store still holds the last successful write
	s, err := prefs.GetString(RecentsKey, "")
	require.NoError(t, err)
	require.Equal(t, grinning.Emoji, s)
}

func TestManager_RecentPage(t *testing.T) {
	m, _ := newTestManager(t, DefaultMaximumSize)

	page, err := m.RecentPage()
	require.NoError(t, err)
	require.Equal(t, 0, page)

	require.NoError(t, m.SetRecentPage(3))
	page, err = m.RecentPage()
	require.NoError(t, err)
	require.Equal(t, 3, page)
}

// Tests that Get returns a copy.
func TestManager_Get_Copy(t *testing.T) {
	m, _ := newTestManager(t, DefaultMaximumSize)
	require.NoError(t, m.Push(grinning))

	items := m.Get()
	items[0] = heart
	require.Equal(t, grinning, m.Get()[0])
}

// Tests that concurrent pushes never exceed the maximum or duplicate.
func TestManager_Concurrent(t *testing.T) {
	m, _ := newTestManager(t, 5)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := emoji.FromChars(strconv.Itoa(i % 8))
			if err := m.Push(e); err != nil {
				t.Errorf("Push failed: %+v", err)
			}
		}(i)
	}
	wg.Wait()

	items := m.Get()
	require.Len(t, items, 5)
	seen := make(map[string]bool)
	for _, e := range items {
		require.False(t, seen[e.Emoji], "duplicate %q", e.Emoji)
		seen[e.Emoji] = true
	}
}
