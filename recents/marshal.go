////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package recents

import (
	"strings"

	"gitlab.com/elixxir/emojicon/emoji"
)

// Delimiter separates emoji in the persisted list.
const Delimiter = ","

// Marshal joins the literal text of each emoji with Delimiter.
func Marshal(items []emoji.Emojicon) string {
	parts := make([]string, len(items))
	for i, e := range items {
		parts[i] = e.Emoji
	}
	return strings.Join(parts, Delimiter)
}

// Unmarshal splits a persisted list back into emoji, in order. Empty tokens
// are skipped.
func Unmarshal(s string) []emoji.Emojicon {
	items := make([]emoji.Emojicon, 0, strings.Count(s, Delimiter)+1)
	for _, token := range strings.Split(s, Delimiter) {
		if token == "" {
			continue
		}
		items = append(items, emoji.FromChars(token))
	}
	return items
}
