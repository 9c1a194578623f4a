////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"github.com/forPelevin/gomoji"
	"github.com/pkg/errors"
)

var (
	// InvalidReaction is returned if the passed reaction string is an invalid
	// emoji.
	InvalidReaction = errors.New(
		"The reaction is not valid, it must be a single emoji")

	// ErrUnknownEmoji is returned by Describe when the Unicode emoji list has
	// no entry for the text, which is the case for legacy vendor codes.
	ErrUnknownEmoji = errors.New("emoji is not in the Unicode emoji list")
)

// Description is the Unicode metadata of an emoji.
type Description struct {
	Name      string
	Group     string
	Subgroup  string
	CodePoint string
}

// SupportedEmojis returns every emoji in the Unicode emoji list.
func SupportedEmojis() []gomoji.Emoji {
	return gomoji.AllEmojis()
}

// ValidateReaction checks that the reaction only contains a single emoji.
// Returns InvalidReaction if the emoji is invalid.
func ValidateReaction(reaction string) error {
	emojisList := gomoji.CollectAll(reaction)
	if len(emojisList) != 1 {
		return InvalidReaction
	} else if emojisList[0].Character != reaction {
		// Non-emoji characters found alongside an emoji
		return InvalidReaction
	}

	return nil
}

// Describe returns the Unicode name and grouping of e. The emoji presentation
// form (with U+FE0F) is tried when the bare text is not listed.
func Describe(e Emojicon) (Description, error) {
	for _, text := range []string{e.Emoji, withPresentation(e.Emoji)} {
		for _, found := range gomoji.CollectAll(text) {
			if found.Character == text {
				return Description{
					Name:      found.UnicodeName,
					Group:     found.Group,
					Subgroup:  found.SubGroup,
					CodePoint: found.CodePoint,
				}, nil
			}
		}
	}

	return Description{}, errors.Wrapf(ErrUnknownEmoji, "%q", e.Emoji)
}

// withPresentation inserts U+FE0F after the first rune, which is where the
// fully-qualified form of single code points and keycaps carries it.
func withPresentation(s string) string {
	runes := []rune(s)
	if len(runes) == 0 || (len(runes) > 1 &&
		CodePoint(runes[1]) == VariationSelector16) {
		return s
	}

	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[0], rune(VariationSelector16))
	return string(append(out, runes[1:]...))
}
