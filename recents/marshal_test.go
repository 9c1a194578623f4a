////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package recents

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/elixxir/emojicon/emoji"
)

// Tests that every emoji shape survives Marshal and Unmarshal in order.
func TestMarshal_Unmarshal(t *testing.T) {
	items := []emoji.Emojicon{keycap1, japan, grinning, legacy, heart}

	s := Marshal(items)
	require.Equal(t,
		"1\u20e3,\U0001F1EF\U0001F1F5,\U0001F600,\ue056,\u2764", s)

	loaded := Unmarshal(s)
	require.Len(t, loaded, len(items))
	for i := range items {
		if !items[i].Equal(loaded[i]) {
			t.Errorf("Item %d did not round trip.\nexpected: %q\nreceived: %q",
				i, items[i].Emoji, loaded[i].Emoji)
		}
	}
}

func TestMarshal_Empty(t *testing.T) {
	require.Equal(t, "", Marshal(nil))
	require.Empty(t, Unmarshal(""))
	require.Empty(t, Unmarshal(",,,"))
}
