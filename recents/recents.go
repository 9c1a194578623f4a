////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package recents keeps the list of recently picked emoji, most recent first,
// and persists it after every change.
package recents

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/emojicon/emoji"
	"gitlab.com/elixxir/emojicon/storage"
)

// Preference keys.
const (
	RecentsKey = "recent_emojis"
	PageKey    = "recent_page"
)

// DefaultMaximumSize is the cap used when none is configured.
const DefaultMaximumSize = 40

// ErrInvalidEmoji is returned by Push for an emoji that cannot be persisted:
// empty text or text containing Delimiter.
var ErrInvalidEmoji = errors.New("emoji cannot be stored in the recents")

// Manager owns the ordered recents list. All methods are safe for concurrent
// use; mutations are written through to the Preferences before returning.
type Manager struct {
	prefs   storage.Preferences
	maximum int
	items   []emoji.Emojicon
	mux     sync.Mutex
}

// NewOrLoad loads the recents persisted in prefs. A persisted list longer
// than maximumSize keeps its most recent maximumSize items.
func NewOrLoad(prefs storage.Preferences, maximumSize int) (*Manager, error) {
	if prefs == nil {
		return nil, errors.New("cannot load recents without preferences")
	}
	if maximumSize < 0 {
		return nil, errors.Errorf("invalid maximum size %d", maximumSize)
	}

	s, err := prefs.GetString(RecentsKey, "")
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load recents")
	}

	items := Unmarshal(s)
	if len(items) > maximumSize {
		jww.DEBUG.Printf("[RECENTS] Dropping %d persisted recents over the "+
			"maximum of %d", len(items)-maximumSize, maximumSize)
		items = items[:maximumSize]
	}

	jww.DEBUG.Printf("[RECENTS] Loaded %d recents", len(items))
	return &Manager{prefs: prefs, maximum: maximumSize, items: items}, nil
}

// Push moves e to the front of the list, inserting it if it is new, then
// evicts from the tail until the list fits the maximum size. A failed write
// is returned but the list keeps the change. Emoji that would not read back
// as themselves are rejected with ErrInvalidEmoji and the list is unchanged.
func (m *Manager) Push(e emoji.Emojicon) error {
	if e.Emoji == "" || strings.Contains(e.Emoji, Delimiter) {
		return errors.Wrapf(ErrInvalidEmoji, "%q", e.Emoji)
	}

	m.mux.Lock()
	defer m.mux.Unlock()

	if i := m.indexOf(e); i >= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
	}

	m.items = append(m.items, emoji.Emojicon{})
	copy(m.items[1:], m.items)
	m.items[0] = e

	if len(m.items) > m.maximum {
		m.items = m.items[:m.maximum]
	}

	return m.save()
}

// Remove deletes the first occurrence of e and reports whether it was
// present. Nothing is written when it was not.
func (m *Manager) Remove(e emoji.Emojicon) (bool, error) {
	m.mux.Lock()
	defer m.mux.Unlock()

	i := m.indexOf(e)
	if i < 0 {
		return false, nil
	}

	m.items = append(m.items[:i], m.items[i+1:]...)
	return true, m.save()
}

// SetMaximumSize changes the cap applied by later pushes. A list already
// longer than n is not truncated until the next Push. Negative sizes are
// treated as zero.
func (m *Manager) SetMaximumSize(n int) {
	if n < 0 {
		n = 0
	}

	m.mux.Lock()
	m.maximum = n
	m.mux.Unlock()
}

// MaximumSize returns the current cap.
func (m *Manager) MaximumSize() int {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.maximum
}

// Get returns a copy of the list, most recent first.
func (m *Manager) Get() []emoji.Emojicon {
	m.mux.Lock()
	defer m.mux.Unlock()
	return append([]emoji.Emojicon{}, m.items...)
}

// Len returns the number of recents.
func (m *Manager) Len() int {
	m.mux.Lock()
	defer m.mux.Unlock()
	return len(m.items)
}

// Contains reports whether e is in the list.
func (m *Manager) Contains(e emoji.Emojicon) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.indexOf(e) >= 0
}

// RecentPage returns the last viewed catalog page, 0 if none was saved.
func (m *Manager) RecentPage() (int, error) {
	page, err := m.prefs.GetInt(PageKey, 0)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to load recent page")
	}
	return page, nil
}

// SetRecentPage saves the last viewed catalog page.
func (m *Manager) SetRecentPage(page int) error {
	if err := m.prefs.SetInt(PageKey, page); err != nil {
		jww.WARN.Printf("[RECENTS] Failed to save recent page %d: %+v",
			page, err)
		return errors.WithMessage(err, "failed to save recent page")
	}
	return nil
}

func (m *Manager) indexOf(e emoji.Emojicon) int {
	for i := range m.items {
		if m.items[i].Equal(e) {
			return i
		}
	}
	return -1
}

// save must be called with the lock held.
func (m *Manager) save() error {
	if err := m.prefs.SetString(RecentsKey, Marshal(m.items)); err != nil {
		jww.WARN.Printf("[RECENTS] Failed to save %d recents: %+v",
			len(m.items), err)
		return errors.WithMessage(err, "failed to save recents")
	}
	return nil
}
