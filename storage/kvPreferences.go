////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"strconv"

	"github.com/pkg/errors"

	"gitlab.com/elixxir/emojicon/storage/versioned"
)

const currentPreferenceVersion = 0

// KVPreferences stores each value as a versioned object under its own
// namespace prefix.
type KVPreferences struct {
	kv *versioned.KV
}

// NewKVPreferences returns the preferences stored under name in kv.
func NewKVPreferences(kv *versioned.KV, name string) (*KVPreferences, error) {
	kv, err := kv.Prefix(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid preference namespace %q", name)
	}
	return &KVPreferences{kv: kv}, nil
}

// GetString returns the string stored under key, or def if there is none.
func (p *KVPreferences) GetString(key, def string) (string, error) {
	data, found, err := p.get(key)
	if err != nil || !found {
		return def, err
	}
	return string(data), nil
}

// SetString stores value under key.
func (p *KVPreferences) SetString(key, value string) error {
	return p.set(key, []byte(value))
}

// GetInt returns the integer stored under key, or def if there is none.
func (p *KVPreferences) GetInt(key string, def int) (int, error) {
	data, found, err := p.get(key)
	if err != nil || !found {
		return def, err
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return def, errors.Wrapf(err, "preference %s is not an integer", key)
	}
	return n, nil
}

// SetInt stores value under key.
func (p *KVPreferences) SetInt(key string, value int) error {
	return p.set(key, []byte(strconv.Itoa(value)))
}

func (p *KVPreferences) get(key string) ([]byte, bool, error) {
	obj, err := p.kv.Get(key, currentPreferenceVersion)
	if err != nil {
		if !p.kv.Exists(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to load preference %s",
			key)
	}
	return obj.Data, true, nil
}

func (p *KVPreferences) set(key string, data []byte) error {
	obj := versioned.NewObject(data, currentPreferenceVersion)
	if err := p.kv.Set(key, obj); err != nil {
		return errors.Wrapf(err, "failed to store preference %s", key)
	}
	return nil
}
