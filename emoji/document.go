////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package emoji

// DocumentVersion is the only registry document version this package reads.
const DocumentVersion = 1

// Document is the JSON layout of a registry data file. Tables are arrays
// rather than objects so that repeated keys stay visible and the last entry
// deterministically wins.
//
// Example:
//
//	{
//	  "version": 1,
//	  "standard": [{"cp": "1f600", "asset": "emoji_1f600"}],
//	  "legacy":   [{"cp": "e056", "asset": "emoji_1f60a"}],
//	  "keycaps":  [{"cp": "0031", "next": "20e3", "asset": "emoji_0031"}],
//	  "flags":    [{"cp": "1f1ef", "next": "1f1f5", "asset": "emoji_1f1ef_1f1f5"}],
//	  "categories": [{"id": "people", "emojis": ["1f600", "0031 20e3"]}]
//	}
type Document struct {
	Version    int        `json:"version"`
	Standard   []Entry    `json:"standard"`
	Legacy     []Entry    `json:"legacy"`
	Keycaps    []Entry    `json:"keycaps"`
	Flags      []Entry    `json:"flags"`
	Categories []Category `json:"categories,omitempty"`
}

// Entry maps a hexadecimal code point, or a pair when Next is set, to an
// asset.
type Entry struct {
	CodePoint string  `json:"cp"`
	Next      string  `json:"next,omitempty"`
	Asset     AssetID `json:"asset"`
}

// Category is an ordered group of emoji sequences as stored in the document.
// Each sequence is a space delimited list of hexadecimal code points.
type Category struct {
	ID     string   `json:"id"`
	Emojis []string `json:"emojis"`
}
