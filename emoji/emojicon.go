////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package emoji

import "unicode/utf16"

// Emojicon is a single selectable emoji: its literal text and, when known, the
// asset it renders as. Two Emojicons are the same emoji when their text is
// equal.
type Emojicon struct {
	Emoji string
	Icon  AssetID
}

// FromChars wraps literal emoji text.
func FromChars(chars string) Emojicon {
	return Emojicon{Emoji: chars}
}

// FromCodePoint builds the Emojicon for a single standard code point.
func FromCodePoint(cp CodePoint) Emojicon {
	return Emojicon{Emoji: string(rune(cp))}
}

// FromSequence builds the Emojicon for a sequence of code points, such as a
// keycap or a flag.
func FromSequence(cps ...CodePoint) Emojicon {
	runes := make([]rune, len(cps))
	for i, cp := range cps {
		runes[i] = rune(cp)
	}
	return Emojicon{Emoji: string(runes)}
}

// FromLegacy builds the Emojicon for a legacy vendor code unit. The unit is a
// BMP private-use code point, so its text is a single rune.
func FromLegacy(unit uint16) Emojicon {
	return Emojicon{Emoji: string(rune(unit))}
}

// Equal reports whether both values denote the same emoji.
func (e Emojicon) Equal(other Emojicon) bool {
	return e.Emoji == other.Emoji
}

// Units returns the UTF-16 encoding of the emoji text.
func (e Emojicon) Units() []uint16 {
	return utf16.Encode([]rune(e.Emoji))
}

// WithIcon returns a copy of e with its Icon resolved against reg. Sequences
// that are not one of the registry's shapes keep an empty Icon.
func (e Emojicon) WithIcon(reg Registry) Emojicon {
	e.Icon = Resolve(reg, []rune(e.Emoji))
	return e
}

// Resolve returns the asset for a complete emoji sequence, or "" if reg has
// none. A single rune is tried as a legacy unit and then as a standard code
// point; two runes are tried as a pair. A trailing U+FE0F is ignored.
func Resolve(reg Registry, runes []rune) AssetID {
	if n := len(runes); n > 1 && CodePoint(runes[n-1]) == VariationSelector16 {
		runes = runes[:n-1]
	}

	switch len(runes) {
	case 1:
		r := runes[0]
		if r >= 0 && r <= 0xFFFF && IsLegacy(uint16(r)) {
			if asset, ok := reg.LookupLegacy(uint16(r)); ok {
				return asset
			}
		}
		if asset, ok := reg.Lookup(CodePoint(r)); ok {
			return asset
		}
	case 2:
		if asset, ok := reg.LookupPair(CodePoint(runes[0]),
			CodePoint(runes[1])); ok {
			return asset
		}
	}

	return ""
}
