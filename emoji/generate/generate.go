////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/golang-collections/collections/set"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/utils"

	"gitlab.com/elixxir/emojicon/cmdUtils"
	"gitlab.com/elixxir/emojicon/emoji"
)

// emojiURL is the URL to the list of the latest emojis published by Unicode for
// testing in keyboards and when displayed/processed. It is parsed to create the
// registry document.
const emojiURL = "https://unicode.org/Public/emoji/latest/emoji-test.txt"

// categoryOrder is the order of the catalog pages in the document.
var categoryOrder = []string{"people", "nature", "objects", "places", "symbols"}

// groupCategories maps the Unicode emoji-test groups to catalog pages. Groups
// not listed, such as "Component", are skipped.
var groupCategories = map[string]string{
	"Smileys & Emotion": "people",
	"People & Body":     "people",
	"Animals & Nature":  "nature",
	"Food & Drink":      "objects",
	"Activities":        "objects",
	"Objects":           "objects",
	"Travel & Places":   "places",
	"Flags":             "places",
	"Symbols":           "symbols",
}

// Params contains all the optional parameters for reading and parsing the
// emoji list and saving the registry document.
type Params struct {
	// DownloadURL is the URL where the emoji list is downloaded from.
	DownloadURL string

	// Input is a local copy of the emoji list. When set, nothing is
	// downloaded.
	Input string

	// Base is the existing registry document. Its legacy table is copied
	// into the output and only its flag pairs are kept from the emoji list.
	// It is required and may be the same file as Output.
	Base string

	// Output is the filepath to save the registry document to.
	Output string
}

// DefaultParams returns the default configuration for Params.
func DefaultParams() Params {
	return Params{
		DownloadURL: emojiURL,
		Input:       "",
		Base:        "./emoji/registry.json",
		Output:      "./emoji/registry.json",
	}
}

// generate builds the registry document and writes it to the output file.
func generate(p Params) error {
	if p.Base == "" {
		return errors.New("no base registry document set")
	}
	base, err := loadBase(p.Base)
	if err != nil {
		return err
	}

	var body string
	if p.Input != "" {
		body, err = cmdUtils.ReadTextFile(p.Input)
		if err != nil {
			return err
		}
	} else {
		body, err = download(p.DownloadURL)
		if err != nil {
			return errors.Wrapf(err, "failed to download %s", p.DownloadURL)
		}
	}

	doc, err := parse(body, flagKeys(base))
	if err != nil {
		return err
	}
	doc.Legacy = base.Legacy

	data, err := marshalDocument(doc)
	if err != nil {
		return err
	}

	if p.Output == "" {
		return errors.New("no output file set")
	}
	if err = cmdUtils.WriteOutputFile(p.Output, data); err != nil {
		return err
	}

	jww.INFO.Printf("Saved %d standard, %d legacy, %d keycap and %d flag "+
		"entries to %s", len(doc.Standard), len(doc.Legacy), len(doc.Keycaps),
		len(doc.Flags), p.Output)
	return nil
}

// download downloads and returns the content of the file URL.
func download(fileURL string) (string, error) {
	resp, err := http.Get(fileURL)
	if err != nil {
		return "", err
	}

	if resp.StatusCode > 299 {
		return "", errors.Errorf("response failed with status code %d: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	defer func(Body io.ReadCloser) {
		err2 := Body.Close()
		if err2 != nil {
			jww.WARN.Printf("Failed to close body: %+v", err2)
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// parse parses the emoji-test.txt file into a registry document without a
// legacy table. U+FE0F is dropped from every sequence and sequences that are
// the same once it is dropped are kept once. Only the flag pairs in flags are
// kept; a nil set keeps none.
func parse(s string, flags *set.Set) (*emoji.Document, error) {
	doc := &emoji.Document{Version: emoji.DocumentVersion}
	pages := make(map[string][]string, len(categoryOrder))
	seen := set.New()

	var category string
	var skipped int
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		} else if line == "#EOF" {
			break
		}

		if strings.HasPrefix(line, "#") {
			if strings.HasPrefix(line, "# group:") {
				group := strings.TrimSpace(
					strings.SplitN(line, "# group:", 2)[1])
				category = groupCategories[group]
			}
			continue
		}

		if category == "" {
			continue
		}

		fields := strings.SplitN(line, ";", 2)
		if len(fields) != 2 {
			return nil, errors.Errorf("malformed line %q", line)
		}

		cps, err := emoji.ParseSequence(fields[0])
		if err != nil {
			return nil, errors.WithMessagef(err, "malformed line %q", line)
		}
		cps = dropPresentation(cps)
		if len(cps) == 0 {
			continue
		}

		key := sequenceKey(cps)
		if seen.Has(key) {
			continue
		}
		seen.Insert(key)

		entry := emoji.Entry{
			CodePoint: cps[0].String(),
			Asset:     emoji.AssetName(cps...),
		}

		switch {
		case len(cps) == 1:
			doc.Standard = append(doc.Standard, entry)
		case len(cps) == 2 && cps[1] == emoji.CombiningEnclosingKeycap &&
			emoji.IsKeycapBase(cps[0]):
			entry.Next = cps[1].String()
			entry.Asset = emoji.AssetName(cps[0])
			doc.Keycaps = append(doc.Keycaps, entry)
		case len(cps) == 2 && emoji.IsRegionalIndicator(cps[0]) &&
			emoji.IsRegionalIndicator(cps[1]):
			if flags == nil || !flags.Has(key) {
				jww.TRACE.Printf("Skipping flag %s", key)
				skipped++
				continue
			}
			entry.Next = cps[1].String()
			doc.Flags = append(doc.Flags, entry)
		default:
			jww.TRACE.Printf("Skipping sequence %s", key)
			skipped++
			continue
		}

		pages[category] = append(pages[category], key)
	}

	if len(doc.Standard)+len(doc.Keycaps)+len(doc.Flags) == 0 {
		return nil, errors.New("no emoji found in the emoji list")
	}

	for _, id := range categoryOrder {
		if len(pages[id]) > 0 {
			doc.Categories = append(doc.Categories,
				emoji.Category{ID: id, Emojis: pages[id]})
		}
	}

	jww.DEBUG.Printf("Parsed %d standard, %d keycap and %d flag entries; "+
		"skipped %d sequences", len(doc.Standard), len(doc.Keycaps),
		len(doc.Flags), skipped)
	return doc, nil
}

// loadBase reads the registry document at path.
func loadBase(path string) (*emoji.Document, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read base document %s",
			path)
	}

	doc, err := emoji.ReadDocument(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithMessagef(err, "invalid base document %s",
			path)
	}

	return doc, nil
}

// flagKeys returns the sequence keys of the flag pairs in doc, in the form
// parse builds them.
func flagKeys(doc *emoji.Document) *set.Set {
	keys := set.New()
	for _, e := range doc.Flags {
		first, err := emoji.ParseCodePoint(e.CodePoint)
		if err != nil {
			continue
		}
		second, err := emoji.ParseCodePoint(e.Next)
		if err != nil {
			continue
		}
		keys.Insert(sequenceKey([]emoji.CodePoint{first, second}))
	}
	return keys
}

// marshalDocument encodes the document and checks that it loads as a
// registry.
func marshalDocument(doc *emoji.Document) ([]byte, error) {
	if _, err := doc.Table(); err != nil {
		return nil, errors.WithMessage(err, "generated document is invalid")
	}

	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal document")
	}
	return append(data, '\n'), nil
}

func dropPresentation(cps []emoji.CodePoint) []emoji.CodePoint {
	out := cps[:0]
	for _, cp := range cps {
		if cp != emoji.VariationSelector16 {
			out = append(out, cp)
		}
	}
	return out
}

func sequenceKey(cps []emoji.CodePoint) string {
	parts := make([]string, len(cps))
	for i, cp := range cps {
		parts[i] = cp.String()
	}
	return strings.Join(parts, " ")
}
