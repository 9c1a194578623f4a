////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package handler

import (
	"unicode"
	"unicode/utf16"

	"gitlab.com/elixxir/emojicon/emoji"
)

// Scan finds every emoji in units[start:end] that reg can resolve and returns
// the spans in order. A negative end, or one past the buffer, means the end of
// the buffer; start is clamped to the buffer. Nothing past end is ever read.
//
// Each position is matched in this order: a legacy vendor unit, a standard
// code point above U+00FF, then a keycap or regional indicator pair formed
// with the following code point. Positions that do not match are skipped by
// the width of their code point.
func Scan(units []uint16, reg emoji.Registry, start, end int) []Span {
	start, end = clamp(start, end, len(units))

	var spans []Span
	for i := start; i < end; {
		if s, matched := matchAt(units, reg, i, end); matched {
			spans = append(spans, s)
			i = s.End
			continue
		}

		_, width := codePointAt(units, i, end)
		i += width
	}

	return spans
}

// matchAt tries to match a single emoji starting at units[i].
func matchAt(units []uint16, reg emoji.Registry, i, end int) (Span, bool) {
	unit := units[i]
	if emoji.IsLegacy(unit) {
		if asset, ok := reg.LookupLegacy(unit); ok {
			return Span{Start: i, End: i + 1, Asset: asset}, true
		}
	}

	r, width := codePointAt(units, i, end)
	cp := emoji.CodePoint(r)
	if !emoji.IsLatin1(cp) {
		if asset, ok := reg.Lookup(cp); ok {
			return Span{Start: i, End: i + width, Asset: asset}, true
		}
	}

	next := i + width
	if next >= end {
		return Span{}, false
	}

	r, followWidth := codePointAt(units, next, end)
	follow := emoji.CodePoint(r)
	if follow != emoji.CombiningEnclosingKeycap &&
		!(emoji.IsRegionalIndicator(cp) && emoji.IsRegionalIndicator(follow)) {
		return Span{}, false
	}

	if asset, ok := reg.LookupPair(cp, follow); ok {
		return Span{Start: i, End: next + followWidth, Asset: asset}, true
	}
	return Span{}, false
}

// codePointAt decodes the code point at units[i] without reading at or past
// limit. A valid surrogate pair is one code point of width 2; anything else,
// including an unpaired surrogate, is a single unit.
func codePointAt(units []uint16, i, limit int) (rune, int) {
	u := rune(units[i])
	if utf16.IsSurrogate(u) && i+1 < limit {
		if r := utf16.DecodeRune(u, rune(units[i+1])); r != unicode.ReplacementChar {
			return r, 2
		}
	}
	return u, 1
}
