////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package storage persists small named preference values, such as the recent
// emoji list, in either an ekv store or a bbolt database.
package storage

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/elixxir/ekv"

	"gitlab.com/elixxir/emojicon/storage/versioned"
)

// Preferences is a namespace of string and integer values. Reading a key that
// was never written yields the given default rather than an error.
type Preferences interface {
	GetString(key, def string) (string, error)
	SetString(key, value string) error
	GetInt(key string, def int) (int, error)
	SetInt(key string, value int) error
}

// Store types accepted by Open.
const (
	EkvStore  = "ekv"
	BoltStore = "bolt"
)

// DefaultNamespace is the preference namespace used by the emojicon tools.
const DefaultNamespace = "emojicon"

// StoreParams selects and configures a Preferences backend.
type StoreParams struct {
	// Type is EkvStore or BoltStore. Empty means EkvStore.
	Type string

	// Path is the ekv directory or the bbolt file. An empty path with the
	// ekv backend keeps everything in memory.
	Path string

	// Password encrypts the ekv filestore.
	Password string

	// Namespace groups the keys. Empty means DefaultNamespace.
	Namespace string
}

// GetDefaultStoreParams returns a default set of StoreParams.
func GetDefaultStoreParams() StoreParams {
	return StoreParams{
		Type:      EkvStore,
		Path:      "",
		Password:  "",
		Namespace: DefaultNamespace,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open creates the Preferences backend described by params. The returned
// closer releases the backend and must be called when done.
func Open(params StoreParams) (Preferences, io.Closer, error) {
	name := params.Namespace
	if name == "" {
		name = DefaultNamespace
	}

	switch strings.ToLower(params.Type) {
	case "", EkvStore:
		var data ekv.KeyValue
		if params.Path == "" {
			jww.INFO.Printf("[STORE] Using in-memory preferences %q", name)
			data = ekv.MakeMemstore()
		} else {
			fs, err := ekv.NewFilestore(params.Path, params.Password)
			if err != nil {
				return nil, nil, errors.Wrapf(err,
					"failed to open ekv store at %s", params.Path)
			}
			jww.INFO.Printf("[STORE] Opened ekv preferences %q at %s",
				name, params.Path)
			data = fs
		}

		prefs, err := NewKVPreferences(versioned.NewKV(data), name)
		if err != nil {
			return nil, nil, err
		}
		return prefs, nopCloser{}, nil

	case BoltStore:
		prefs, err := NewBoltPreferences(params.Path, name)
		if err != nil {
			return nil, nil, err
		}
		jww.INFO.Printf("[STORE] Opened bolt preferences %q at %s",
			name, params.Path)
		return prefs, prefs, nil

	default:
		return nil, nil, errors.Errorf("unknown store type %q", params.Type)
	}
}
