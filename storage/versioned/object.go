////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package versioned

import (
	"encoding/json"
	"time"

	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/netTime"
)

// Object is a stored value with the version of its encoding and the time it
// was written.
type Object struct {
	// Version of the encoding of Data
	Version uint64

	// Set when this object is written
	Timestamp time.Time

	// Serialized value
	Data []byte
}

// NewObject wraps data at version, stamped with the current time.
func NewObject(data []byte, version uint64) *Object {
	return &Object{
		Version:   version,
		Timestamp: netTime.Now(),
		Data:      data,
	}
}

// Unmarshal deserializes an Object from JSON. It makes Object loadable from
// an ekv.KeyValue.
func (v *Object) Unmarshal(data []byte) error {
	return json.Unmarshal(data, v)
}

// Marshal serializes an Object to JSON. It makes Object storable in an
// ekv.KeyValue.
func (v *Object) Marshal() []byte {
	d, err := json.Marshal(v)
	if err != nil {
		// Only simple exported fields, so this cannot fail
		jww.FATAL.Panicf("[KV] Could not marshal object at version %d: %+v",
			v.Version, err)
	}
	return d
}
