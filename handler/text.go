////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package handler

import (
	"sort"
	"unicode/utf16"

	"github.com/pkg/errors"
)

// Error messages.
const (
	spanRangeErr   = "span [%d, %d) is outside the text [0, %d)"
	spanOverlapErr = "span [%d, %d) overlaps existing span [%d, %d)"
)

// Text is a UTF-16 buffer with emoji spans attached to it. The code units
// never change after construction; spans are metadata on top of them. Text is
// not safe for concurrent use.
type Text struct {
	units []uint16

	// ordered by Start, never overlapping
	spans []Span
}

// New encodes s as UTF-16.
func New(s string) *Text {
	return &Text{units: utf16.Encode([]rune(s))}
}

// FromUnits wraps a copy of raw UTF-16 code units. Unpaired surrogates are
// kept as they are.
func FromUnits(units []uint16) *Text {
	return &Text{units: append([]uint16(nil), units...)}
}

// Len returns the number of code units.
func (t *Text) Len() int {
	return len(t.units)
}

// At returns the code unit at index i.
func (t *Text) At(i int) uint16 {
	return t.units[i]
}

// Units returns a copy of the code units.
func (t *Text) Units() []uint16 {
	return append([]uint16(nil), t.units...)
}

// String decodes the units. Unpaired surrogates become U+FFFD.
func (t *Text) String() string {
	return string(utf16.Decode(t.units))
}

// CodePointAt decodes the code point starting at index i and returns it with
// the number of units it occupies.
func (t *Text) CodePointAt(i int) (rune, int) {
	return codePointAt(t.units, i, len(t.units))
}

// SetSpan attaches s to the text. Spans outside the text, empty spans and
// spans overlapping an attached span are rejected.
func (t *Text) SetSpan(s Span) error {
	if s.Start < 0 || s.End > len(t.units) || s.Start >= s.End {
		return errors.Errorf(spanRangeErr, s.Start, s.End, len(t.units))
	}

	i := sort.Search(len(t.spans), func(i int) bool {
		return t.spans[i].End > s.Start
	})
	if i < len(t.spans) && t.spans[i].Start < s.End {
		return errors.Errorf(spanOverlapErr, s.Start, s.End,
			t.spans[i].Start, t.spans[i].End)
	}

	t.spans = append(t.spans, Span{})
	copy(t.spans[i+1:], t.spans[i:])
	t.spans[i] = s
	return nil
}

// Spans returns the attached spans that intersect [start, end), in order. A
// negative end means the end of the text.
func (t *Text) Spans(start, end int) []Span {
	start, end = clamp(start, end, len(t.units))

	var out []Span
	for _, s := range t.spans {
		if s.intersects(start, end) {
			out = append(out, s)
		}
	}
	return out
}

// AllSpans returns every attached span in order.
func (t *Text) AllSpans() []Span {
	return append([]Span(nil), t.spans...)
}

// RemoveSpans detaches every span intersecting [start, end) and returns how
// many were removed. A negative end means the end of the text.
func (t *Text) RemoveSpans(start, end int) int {
	start, end = clamp(start, end, len(t.units))

	kept := t.spans[:0]
	for _, s := range t.spans {
		if !s.intersects(start, end) {
			kept = append(kept, s)
		}
	}
	removed := len(t.spans) - len(kept)
	t.spans = kept
	return removed
}

// ClearSpans detaches every span.
func (t *Text) ClearSpans() {
	t.spans = nil
}

// clamp bounds [start, end) to a buffer of length n. A negative end, or one
// past n, means n.
func clamp(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	} else if start > n {
		start = n
	}
	if end < 0 || end > n {
		end = n
	}
	return start, end
}
