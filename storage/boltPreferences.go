////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"encoding/binary"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const boltOpenTimeout = time.Second

// BoltPreferences keeps one namespace in a bucket of a bbolt database.
// Strings are stored as raw bytes and integers as 8 little-endian bytes.
type BoltPreferences struct {
	db     *bolt.DB
	bucket []byte
}

// NewBoltPreferences opens, or creates, the database at path and the bucket
// for name.
func NewBoltPreferences(path, name string) (*BoltPreferences, error) {
	if path == "" {
		return nil, errors.New("bolt preferences require a path")
	}
	if name == "" {
		return nil, errors.New("bolt preferences require a namespace")
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bolt database %s", path)
	}

	bucket := []byte(name)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err2 := tx.CreateBucketIfNotExists(bucket)
		return err2
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to create bucket %s", name)
	}

	return &BoltPreferences{db: db, bucket: bucket}, nil
}

// GetString returns the string stored under key, or def if there is none.
func (p *BoltPreferences) GetString(key, def string) (string, error) {
	value := def
	err := p.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(p.bucket).Get([]byte(key)); v != nil {
			value = string(v)
		}
		return nil
	})
	return value, errors.Wrapf(err, "failed to load preference %s", key)
}

// SetString stores value under key.
func (p *BoltPreferences) SetString(key, value string) error {
	return p.put(key, []byte(value))
}

// GetInt returns the integer stored under key, or def if there is none.
func (p *BoltPreferences) GetInt(key string, def int) (int, error) {
	value := def
	err := p.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(p.bucket).Get([]byte(key))
		if v == nil {
			return nil
		}
		if len(v) != 8 {
			return errors.Errorf("preference %s holds %d bytes, not an "+
				"integer", key, len(v))
		}
		value = int(int64(binary.LittleEndian.Uint64(v)))
		return nil
	})
	if err != nil {
		return def, errors.Wrapf(err, "failed to load preference %s", key)
	}
	return value, nil
}

// SetInt stores value under key.
func (p *BoltPreferences) SetInt(key string, value int) error {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(int64(value)))
	return p.put(key, b)
}

// Close releases the database.
func (p *BoltPreferences) Close() error {
	return p.db.Close()
}

func (p *BoltPreferences) put(key string, value []byte) error {
	err := p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(p.bucket).Put([]byte(key), value)
	})
	return errors.Wrapf(err, "failed to store preference %s", key)
}
