////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"sort"

	"github.com/golang-collections/collections/set"
	jww "github.com/spf13/jwalterweatherman"
)

// Registry resolves emoji code points to asset identifiers. Implementations
// must be safe for concurrent reads and must never panic on any input.
type Registry interface {
	// Lookup returns the asset for a single standard code point.
	Lookup(cp CodePoint) (AssetID, bool)

	// LookupLegacy returns the asset for a legacy vendor code unit. Units
	// outside the legacy range are never found.
	LookupLegacy(unit uint16) (AssetID, bool)

	// LookupPair returns the asset for a keycap or regional indicator flag
	// sequence.
	LookupPair(first, second CodePoint) (AssetID, bool)
}

// Table is the immutable Registry produced by a Builder. The zero value is an
// empty registry.
type Table struct {
	standard map[CodePoint]AssetID
	legacy   map[uint16]AssetID
	pairs    map[Pair]AssetID

	duplicates []string
}

// Lookup returns the asset for a single standard code point.
func (t *Table) Lookup(cp CodePoint) (AssetID, bool) {
	asset, exists := t.standard[cp]
	return asset, exists
}

// LookupLegacy returns the asset for a legacy vendor code unit.
func (t *Table) LookupLegacy(unit uint16) (AssetID, bool) {
	if !IsLegacy(unit) {
		return "", false
	}
	asset, exists := t.legacy[unit]
	return asset, exists
}

// LookupPair returns the asset for a two code point sequence.
func (t *Table) LookupPair(first, second CodePoint) (AssetID, bool) {
	asset, exists := t.pairs[Pair{first, second}]
	return asset, exists
}

// Len returns the number of entries in the standard, legacy and pair tables.
func (t *Table) Len() (standard, legacy, pairs int) {
	return len(t.standard), len(t.legacy), len(t.pairs)
}

// Duplicates lists the keys that were inserted more than once while the table
// was built, in the form "<table>:<hex>". The last insertion won for each.
func (t *Table) Duplicates() []string {
	return append([]string(nil), t.duplicates...)
}

// Builder accumulates registry entries. It is not safe for concurrent use; the
// Table it builds is.
type Builder struct {
	standard map[CodePoint]AssetID
	legacy   map[uint16]AssetID
	pairs    map[Pair]AssetID

	// keys seen more than once, tracked per table
	duplicates *set.Set
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		standard:   make(map[CodePoint]AssetID),
		legacy:     make(map[uint16]AssetID),
		pairs:      make(map[Pair]AssetID),
		duplicates: set.New(),
	}
}

// Add maps a standard code point to an asset. Re-adding a code point replaces
// the earlier asset.
func (b *Builder) Add(cp CodePoint, asset AssetID) *Builder {
	if old, exists := b.standard[cp]; exists {
		b.duplicate("standard:"+cp.String(), old, asset)
	}
	b.standard[cp] = asset
	return b
}

// AddLegacy maps a legacy vendor code unit to an asset. Re-adding a unit
// replaces the earlier asset.
func (b *Builder) AddLegacy(unit uint16, asset AssetID) *Builder {
	if old, exists := b.legacy[unit]; exists {
		b.duplicate("legacy:"+CodePoint(unit).String(), old, asset)
	}
	b.legacy[unit] = asset
	return b
}

// AddPair maps a two code point sequence to an asset. Re-adding a pair
// replaces the earlier asset.
func (b *Builder) AddPair(first, second CodePoint, asset AssetID) *Builder {
	p := Pair{first, second}
	if old, exists := b.pairs[p]; exists {
		b.duplicate("pair:"+p.String(), old, asset)
	}
	b.pairs[p] = asset
	return b
}

func (b *Builder) duplicate(key string, old, replacement AssetID) {
	jww.WARN.Printf("[EMOJI] Duplicate registry key %s: %s replaced by %s",
		key, old, replacement)
	b.duplicates.Insert(key)
}

// Build copies the accumulated entries into an immutable Table. The Builder
// may continue to be used afterwards without affecting the Table.
func (b *Builder) Build() *Table {
	t := &Table{
		standard: make(map[CodePoint]AssetID, len(b.standard)),
		legacy:   make(map[uint16]AssetID, len(b.legacy)),
		pairs:    make(map[Pair]AssetID, len(b.pairs)),
	}
	for k, v := range b.standard {
		t.standard[k] = v
	}
	for k, v := range b.legacy {
		t.legacy[k] = v
	}
	for k, v := range b.pairs {
		t.pairs[k] = v
	}

	b.duplicates.Do(func(key interface{}) {
		t.duplicates = append(t.duplicates, key.(string))
	})
	sort.Strings(t.duplicates)

	return t
}
