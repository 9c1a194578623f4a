////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CodePoint is a Unicode scalar value or a legacy vendor code unit. It is the
// key used to look up assets in a Registry. Any value, including negative ones,
// may be passed to a lookup; values that are not in a table are simply not
// found.
type CodePoint rune

// AssetID identifies a renderable image resource (for example "emoji_1f600").
// The registry does not interpret it.
type AssetID string

// Pair is a two code point sequence that resolves to a single asset, such as a
// keycap ("1" U+20E3) or a regional indicator flag.
type Pair struct {
	First  CodePoint
	Second CodePoint
}

const (
	// CombiningEnclosingKeycap is the mark that turns a digit or '#' into a
	// keycap emoji.
	CombiningEnclosingKeycap CodePoint = 0x20E3

	// VariationSelector16 requests emoji presentation. It carries no asset of
	// its own and is dropped when parsing emoji data.
	VariationSelector16 CodePoint = 0xFE0F

	// RegionalIndicatorA and RegionalIndicatorZ bound the regional indicator
	// symbol block used to build flags.
	RegionalIndicatorA CodePoint = 0x1F1E6
	RegionalIndicatorZ CodePoint = 0x1F1FF

	// LegacyFirst and LegacyLast bound the vendor private-use range used by
	// the legacy carrier emoji encoding.
	LegacyFirst = 0xE000
	LegacyLast  = 0xEFFF

	// latin1Max is the largest code point that is never treated as an emoji on
	// its own.
	latin1Max CodePoint = 0xFF
)

// IsLegacy reports whether a single UTF-16 code unit falls in the legacy
// vendor range, i.e. its top nibble is 0xE.
func IsLegacy(unit uint16) bool {
	return unit>>12 == 0xE
}

// IsRegionalIndicator reports whether cp is one of the 26 regional indicator
// letters.
func IsRegionalIndicator(cp CodePoint) bool {
	return cp >= RegionalIndicatorA && cp <= RegionalIndicatorZ
}

// IsKeycapBase reports whether cp can be combined with U+20E3 into a keycap
// known to the registry: the digits 0 to 9 and '#'.
func IsKeycapBase(cp CodePoint) bool {
	return (cp >= '0' && cp <= '9') || cp == '#'
}

// IsLatin1 reports whether cp is in the Latin-1 range, which never holds a
// stand-alone emoji.
func IsLatin1(cp CodePoint) bool {
	return cp >= 0 && cp <= latin1Max
}

// String returns the lowercase hexadecimal form used by the data file,
// zero-padded to four digits.
func (cp CodePoint) String() string {
	s := strconv.FormatInt(int64(cp), 16)
	if len(s) < 4 {
		s = strings.Repeat("0", 4-len(s)) + s
	}
	return s
}

// String returns both code points separated by a space.
func (p Pair) String() string {
	return p.First.String() + " " + p.Second.String()
}

// ParseCodePoint parses a hexadecimal code point such as "1f600", "U+1F600"
// or "0x1f600".
func ParseCodePoint(s string) (CodePoint, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "U+"), "u+")
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")
	if trimmed == "" {
		return 0, errors.Errorf("empty code point %q", s)
	}

	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid code point %q", s)
	}
	if v > 0x10FFFF {
		return 0, errors.Errorf("code point %q is beyond U+10FFFF", s)
	}

	return CodePoint(v), nil
}

// ParseSequence parses a space delimited list of hexadecimal code points.
func ParseSequence(s string) ([]CodePoint, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.Errorf("empty code point sequence %q", s)
	}

	cps := make([]CodePoint, len(fields))
	for i, f := range fields {
		cp, err := ParseCodePoint(f)
		if err != nil {
			return nil, err
		}
		cps[i] = cp
	}

	return cps, nil
}

// AssetName builds the asset identifier conventionally used for a sequence:
// "emoji_" followed by the lowercase hex code points joined by underscores.
func AssetName(cps ...CodePoint) AssetID {
	parts := make([]string, len(cps))
	for i, cp := range cps {
		parts[i] = cp.String()
	}
	return AssetID("emoji_" + strings.Join(parts, "_"))
}
