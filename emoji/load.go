////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

//go:embed registry.json
var registryJSON []byte

// Source supplies a registry document.
type Source interface {
	Open() (io.ReadCloser, error)
}

// EmbeddedSource serves the registry document compiled into the binary.
type EmbeddedSource struct{}

// Open returns a reader over the embedded document.
func (EmbeddedSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(registryJSON)), nil
}

// FileSource reads a registry document from disk.
type FileSource string

// Open opens the file.
func (f FileSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(string(f))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open registry file %q",
			string(f))
	}
	return file, nil
}

// EmbeddedDocument returns a copy of the raw embedded registry document.
func EmbeddedDocument() []byte {
	return append([]byte(nil), registryJSON...)
}

var (
	defaultSource Source = EmbeddedSource{}
	defaultTable  *Table
	defaultOnce   sync.Once
)

// Default returns the Table built from the embedded registry document. The
// document is parsed once; a malformed document is fatal.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = mustLoadSource(defaultSource)
	})
	return defaultTable
}

// mustLoadSource builds the Table of src and panics through the FATAL logger
// if it cannot.
func mustLoadSource(src Source) *Table {
	t, err := LoadSource(src)
	if err != nil {
		jww.FATAL.Panicf("[EMOJI] Failed to load default registry: %+v", err)
	}
	return t
}

// LoadSource reads and parses the document provided by src.
func LoadSource(src Source) (*Table, error) {
	r, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			jww.WARN.Printf("[EMOJI] Failed to close registry source: %+v",
				closeErr)
		}
	}()

	return Load(r)
}

// LoadFile parses the registry document stored at path.
func LoadFile(path string) (*Table, error) {
	return LoadSource(FileSource(path))
}

// Load parses a registry document. Any malformed entry fails the whole load so
// that a partial table is never returned.
func Load(r io.Reader) (*Table, error) {
	doc, err := ReadDocument(r)
	if err != nil {
		return nil, err
	}

	t, err := doc.Table()
	if err != nil {
		return nil, err
	}

	standard, legacy, pairs := t.Len()
	jww.DEBUG.Printf("[EMOJI] Loaded registry: %d standard, %d legacy, "+
		"%d pair entries", standard, legacy, pairs)

	return t, nil
}

// ReadDocument decodes a registry document and checks its version.
func ReadDocument(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode registry document")
	}

	if doc.Version != DocumentVersion {
		return nil, errors.Errorf("unsupported registry document version "+
			"%d (expected %d)", doc.Version, DocumentVersion)
	}

	return doc, nil
}

// Table validates every entry of the document and builds a Table from it.
func (doc *Document) Table() (*Table, error) {
	b := NewBuilder()

	for i, e := range doc.Standard {
		cp, err := e.single("standard", i)
		if err != nil {
			return nil, err
		}
		b.Add(cp, e.Asset)
	}

	for i, e := range doc.Legacy {
		cp, err := e.single("legacy", i)
		if err != nil {
			return nil, err
		}
		if cp < LegacyFirst || cp > LegacyLast {
			return nil, errors.Errorf("legacy entry %d: %s is outside "+
				"the legacy range %04x-%04x", i, cp, LegacyFirst, LegacyLast)
		}
		b.AddLegacy(uint16(cp), e.Asset)
	}

	pairTables := []struct {
		name    string
		entries []Entry
	}{{"keycaps", doc.Keycaps}, {"flags", doc.Flags}}
	for _, pt := range pairTables {
		for i, e := range pt.entries {
			p, err := e.pair(pt.name, i)
			if err != nil {
				return nil, err
			}
			b.AddPair(p.First, p.Second, e.Asset)
		}
	}

	return b.Build(), nil
}

func (e Entry) single(table string, i int) (CodePoint, error) {
	if e.Asset == "" {
		return 0, errors.Errorf("%s entry %d (%q) has no asset", table, i,
			e.CodePoint)
	}
	if e.Next != "" {
		return 0, errors.Errorf("%s entry %d (%q) must not have a second "+
			"code point", table, i, e.CodePoint)
	}

	cp, err := ParseCodePoint(e.CodePoint)
	if err != nil {
		return 0, errors.Wrapf(err, "%s entry %d", table, i)
	}
	return cp, nil
}

func (e Entry) pair(table string, i int) (Pair, error) {
	if e.Asset == "" {
		return Pair{}, errors.Errorf("%s entry %d (%q) has no asset", table,
			i, e.CodePoint)
	}
	if e.Next == "" {
		return Pair{}, errors.Errorf("%s entry %d (%q) is missing its "+
			"second code point", table, i, e.CodePoint)
	}

	first, err := ParseCodePoint(e.CodePoint)
	if err != nil {
		return Pair{}, errors.Wrapf(err, "%s entry %d", table, i)
	}
	second, err := ParseCodePoint(e.Next)
	if err != nil {
		return Pair{}, errors.Wrapf(err, "%s entry %d", table, i)
	}
	return Pair{first, second}, nil
}
