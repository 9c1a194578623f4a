////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/elixxir/ekv"

	"gitlab.com/elixxir/emojicon/storage/versioned"
)

func newTestKVPreferences(t *testing.T) *KVPreferences {
	prefs, err := NewKVPreferences(versioned.NewKV(ekv.MakeMemstore()),
		DefaultNamespace)
	require.NoError(t, err)
	return prefs
}

func newTestBoltPreferences(t *testing.T) *BoltPreferences {
	prefs, err := NewBoltPreferences(
		filepath.Join(t.TempDir(), "prefs.db"), DefaultNamespace)
	require.NoError(t, err)
	t.Cleanup(func() { _ = prefs.Close() })
	return prefs
}

// testPreferences exercises the Preferences contract on any backend.
func testPreferences(t *testing.T, prefs Preferences) {
	s, err := prefs.GetString("recent_emojis", "fallback")
	require.NoError(t, err)
	require.Equal(t, "fallback", s)

	n, err := prefs.GetInt("recent_page", 4)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	value := "\U0001F600,\U0001F1EF\U0001F1F5,1\u20e3"
	require.NoError(t, prefs.SetString("recent_emojis", value))
	s, err = prefs.GetString("recent_emojis", "")
	require.NoError(t, err)
	require.Equal(t, value, s)

	// Empty strings are values, not missing keys
	require.NoError(t, prefs.SetString("recent_emojis", ""))
	s, err = prefs.GetString("recent_emojis", "fallback")
	require.NoError(t, err)
	require.Equal(t, "", s)

	for _, v := range []int{0, 3, -1, 1 << 40} {
		require.NoError(t, prefs.SetInt("recent_page", v))
		n, err = prefs.GetInt("recent_page", 99)
		require.NoError(t, err)
		require.Equal(t, v, n)
	}
}

func TestKVPreferences(t *testing.T) {
	testPreferences(t, newTestKVPreferences(t))
}

func TestBoltPreferences(t *testing.T) {
	testPreferences(t, newTestBoltPreferences(t))
}

// Error path: tests that a value that is not an integer is reported and the
// default returned.
func TestKVPreferences_GetInt_NotInteger(t *testing.T) {
	prefs := newTestKVPreferences(t)
	require.NoError(t, prefs.SetString("recent_page", "three"))

	n, err := prefs.GetInt("recent_page", 2)
	require.Error(t, err)
	require.Equal(t, 2, n)
}

// Error path: tests that a value that is not an integer is reported and the
// default returned.
func TestBoltPreferences_GetInt_NotInteger(t *testing.T) {
	prefs := newTestBoltPreferences(t)
	require.NoError(t, prefs.SetString("recent_page", "three"))

	n, err := prefs.GetInt("recent_page", 2)
	require.Error(t, err)
	require.Equal(t, 2, n)
}

// Tests that namespaces sharing one store do not see each other's keys.
func TestKVPreferences_Namespaces(t *testing.T) {
	kv := versioned.NewKV(ekv.MakeMemstore())
	a, err := NewKVPreferences(kv, "a")
	require.NoError(t, err)
	b, err := NewKVPreferences(kv, "b")
	require.NoError(t, err)

	require.NoError(t, a.SetString("key", "value"))
	s, err := b.GetString("key", "none")
	require.NoError(t, err)
	require.Equal(t, "none", s)

	_, err = NewKVPreferences(kv, "")
	require.Error(t, err)
	_, err = NewKVPreferences(kv, "a/b")
	require.Error(t, err)
}

// Tests that bolt values survive closing and reopening the database.
func TestBoltPreferences_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	prefs, err := NewBoltPreferences(path, DefaultNamespace)
	require.NoError(t, err)
	require.NoError(t, prefs.SetString("recent_emojis", "\U0001F600"))
	require.NoError(t, prefs.SetInt("recent_page", 2))
	require.NoError(t, prefs.Close())

	prefs, err = NewBoltPreferences(path, DefaultNamespace)
	require.NoError(t, err)
	defer prefs.Close()

	s, err := prefs.GetString("recent_emojis", "")
	require.NoError(t, err)
	require.Equal(t, "\U0001F600", s)
	n, err := prefs.GetInt("recent_page", 0)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	other, err := NewBoltPreferences(filepath.Join(t.TempDir(), "o.db"),
		"other")
	require.NoError(t, err)
	defer other.Close()
	s, err = other.GetString("recent_emojis", "none")
	require.NoError(t, err)
	require.Equal(t, "none", s)
}

// Error path: tests that bolt preferences need a path and a namespace.
func TestNewBoltPreferences_Error(t *testing.T) {
	_, err := NewBoltPreferences("", DefaultNamespace)
	require.Error(t, err)

	_, err = NewBoltPreferences(filepath.Join(t.TempDir(), "p.db"), "")
	require.Error(t, err)

	_, err = NewBoltPreferences(
		filepath.Join(t.TempDir(), "missing", "dir", "p.db"), "emojicon")
	require.Error(t, err)
}

// Tests each backend Open can select.
func TestOpen(t *testing.T) {
	prefs, closer, err := Open(GetDefaultStoreParams())
	require.NoError(t, err)
	require.IsType(t, &KVPreferences{}, prefs)
	testPreferences(t, prefs)
	require.NoError(t, closer.Close())

	params := GetDefaultStoreParams()
	params.Path = filepath.Join(t.TempDir(), "ekv")
	params.Password = "password"
	prefs, closer, err = Open(params)
	require.NoError(t, err)
	testPreferences(t, prefs)
	require.NoError(t, closer.Close())

	params = StoreParams{Type: "BOLT",
		Path: filepath.Join(t.TempDir(), "prefs.db")}
	prefs, closer, err = Open(params)
	require.NoError(t, err)
	require.IsType(t, &BoltPreferences{}, prefs)
	testPreferences(t, prefs)
	require.NoError(t, closer.Close())
}

// Error path: tests that Open rejects unknown backends.
func TestOpen_Error(t *testing.T) {
	_, _, err := Open(StoreParams{Type: "sqlite"})
	require.Error(t, err)

	_, _, err = Open(StoreParams{Type: BoltStore})
	require.Error(t, err)
}
