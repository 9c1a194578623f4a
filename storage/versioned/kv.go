////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package versioned

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/elixxir/ekv"
)

// PrefixSeparator joins nested prefixes.
const PrefixSeparator = "/"

// Error messages.
const (
	emptyPrefixErr   = "prefix must not be empty"
	invalidPrefixErr = "prefix %q must not contain %q"
)

type root struct {
	data ekv.KeyValue
}

// KV stores versioned objects under a key prefix. Every KV derived with
// Prefix shares the same backing store.
type KV struct {
	r      *root
	prefix string
}

// NewKV creates a versioned key/value store backed by any ekv.KeyValue.
func NewKV(data ekv.KeyValue) *KV {
	return &KV{r: &root{data: data}}
}

// Get loads the object stored under key at the given version. Use Exists on
// the returned error to tell a missing key from a failed read.
func (v *KV) Get(key string, version uint64) (*Object, error) {
	key = v.makeKey(key, version)
	jww.TRACE.Printf("[KV] get %s", key)

	result := &Object{}
	if err := v.r.data.Get(key, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Set upserts object under key at the object's version.
func (v *KV) Set(key string, object *Object) error {
	key = v.makeKey(key, object.Version)
	jww.TRACE.Printf("[KV] set %s", key)
	return v.r.data.Set(key, object)
}

// Delete removes the object stored under key at the given version.
func (v *KV) Delete(key string, version uint64) error {
	key = v.makeKey(key, version)
	jww.TRACE.Printf("[KV] delete %s", key)
	return v.r.data.Delete(key)
}

// GetPrefix returns the prefix of the KV.
func (v *KV) GetPrefix() string {
	return v.prefix
}

// Prefix returns a new KV nested under prefix.
func (v *KV) Prefix(prefix string) (*KV, error) {
	if prefix == "" {
		return nil, errors.New(emptyPrefixErr)
	}
	if strings.Contains(prefix, PrefixSeparator) {
		return nil, errors.Errorf(invalidPrefixErr, prefix, PrefixSeparator)
	}

	return &KV{r: v.r, prefix: v.prefix + prefix + PrefixSeparator}, nil
}

// IsMemStore reports whether the backing store is an in-memory ekv.Memstore.
func (v *KV) IsMemStore() bool {
	_, ok := v.r.data.(*ekv.Memstore)
	return ok
}

// GetFullKey returns the key with all prefixes and the version applied.
func (v *KV) GetFullKey(key string, version uint64) string {
	return v.makeKey(key, version)
}

func (v *KV) makeKey(key string, version uint64) string {
	return fmt.Sprintf("%s%s_%d", v.prefix, key, version)
}

// Exists returns false if the error indicates the element doesn't exist.
func (v *KV) Exists(err error) bool {
	return ekv.Exists(err)
}
