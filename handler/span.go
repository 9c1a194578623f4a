////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package handler

import (
	"fmt"

	"gitlab.com/elixxir/emojicon/emoji"
)

// Span marks the half-open range [Start, End) of UTF-16 units that renders as
// Asset. Size is the requested render size, or 0 if none was given.
type Span struct {
	Start int
	End   int
	Asset emoji.AssetID
	Size  int
}

// Width returns the number of units the span covers.
func (s Span) Width() int {
	return s.End - s.Start
}

// String stringer interface implementation
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d) %s", s.Start, s.End, s.Asset)
}

func (s Span) intersects(start, end int) bool {
	return s.Start < end && start < s.End
}
