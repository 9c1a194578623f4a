////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-collections/collections/set"
	"github.com/stretchr/testify/require"

	"gitlab.com/elixxir/emojicon/emoji"
)

const sampleEmojiTest = `# emoji-test.txt
# Version: 15.0

# group: Smileys & Emotion

# subgroup: face-smiling
1F600                                                  ; fully-qualified     # E1.0 grinning face
263A FE0F                                              ; fully-qualified     # E0.6 smiling face
263A                                                   ; unqualified         # E0.6 smiling face

# group: People & Body

# subgroup: family
1F468 200D 1F469 200D 1F466                            ; fully-qualified     # E2.0 family: man, woman, boy
1F44B 1F3FB                                            ; fully-qualified     # E1.0 waving hand: light skin tone

# group: Component

# subgroup: skin-tone
1F3FB                                                  ; component           # E1.0 light skin tone

# group: Symbols

# subgroup: keycap
0023 FE0F 20E3                                         ; fully-qualified     # E0.6 keycap: #
0023 20E3                                              ; unqualified         # E0.6 keycap: #
002A FE0F 20E3                                         ; fully-qualified     # E2.0 keycap: *
0031 FE0F 20E3                                         ; fully-qualified     # E0.6 keycap: 1

# group: Flags

# subgroup: country-flag
1F1E6 1F1E8                                            ; fully-qualified     # E2.0 flag: Ascension Island
1F1EF 1F1F5                                            ; fully-qualified     # E0.6 flag: Japan
1F3F4 E0067 E0062 E0065 E006E E0067 E007F              ; fully-qualified     # E5.0 flag: England

#EOF
`

// Tests that the sample list yields standard, keycap and flag entries while
// dropping ZWJ sequences, components, FE0F duplicates and unknown flags.
func TestParse(t *testing.T) {
	flags := set.New()
	flags.Insert("1f1ef 1f1f5")

	doc, err := parse(sampleEmojiTest, flags)
	require.NoError(t, err)

	require.Equal(t, emoji.DocumentVersion, doc.Version)
	require.Equal(t, []emoji.Entry{
		{CodePoint: "1f600", Asset: "emoji_1f600"},
		{CodePoint: "263a", Asset: "emoji_263a"},
	}, doc.Standard)
	require.Equal(t, []emoji.Entry{
		{CodePoint: "0023", Next: "20e3", Asset: "emoji_0023"},
		{CodePoint: "0031", Next: "20e3", Asset: "emoji_0031"},
	}, doc.Keycaps)
	require.Equal(t, []emoji.Entry{
		{CodePoint: "1f1ef", Next: "1f1f5", Asset: "emoji_1f1ef_1f1f5"},
	}, doc.Flags)
	require.Empty(t, doc.Legacy)

	require.Equal(t, []emoji.Category{
		{ID: "people", Emojis: []string{"1f600", "263a"}},
		{ID: "places", Emojis: []string{"1f1ef 1f1f5"}},
		{ID: "symbols", Emojis: []string{"0023 20e3", "0031 20e3"}},
	}, doc.Categories)
}

// Tests that no flag is kept when no flag pairs are allowed.
func TestParse_NoFlags(t *testing.T) {
	doc, err := parse(sampleEmojiTest, nil)
	require.NoError(t, err)

	require.Empty(t, doc.Flags)
	for _, c := range doc.Categories {
		require.NotEqual(t, "places", c.ID)
	}
}

// Error path: tests that lists without usable emoji or with malformed lines
// are rejected.
func TestParse_Error(t *testing.T) {
	_, err := parse("# group: Smileys & Emotion\n#EOF\n", nil)
	require.Error(t, err)

	_, err = parse("# group: Smileys & Emotion\n1F600 fully-qualified\n", nil)
	require.Error(t, err)

	_, err = parse("# group: Smileys & Emotion\nZZZZ ; fully-qualified\n", nil)
	require.Error(t, err)
}

// Tests that by default the registry is regenerated in place, keeping its own
// legacy table and flags.
func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	require.NotEmpty(t, p.Base)
	require.Equal(t, p.Output, p.Base)
}

// Tests that generate reads a local list, keeps the legacy table and flag
// pairs of the base document and writes a loadable registry.
func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "emoji-test.txt")
	base := filepath.Join(dir, "base.json")
	output := filepath.Join(dir, "out", "registry.json")

	require.NoError(t, os.WriteFile(input, []byte(sampleEmojiTest), 0644))
	require.NoError(t, os.WriteFile(base, emoji.EmbeddedDocument(), 0644))

	p := DefaultParams()
	p.Input = input
	p.Base = base
	p.Output = output
	require.NoError(t, generate(p))

	reg, err := emoji.LoadFile(output)
	require.NoError(t, err)

	standard, legacyCount, pairs := reg.Len()
	require.Equal(t, 2, standard)
	require.Equal(t, 470, legacyCount)
	require.Equal(t, 3, pairs)

	asset, ok := reg.LookupLegacy(0xE056)
	require.True(t, ok)
	require.Equal(t, emoji.AssetID("emoji_1f60a"), asset)

	_, ok = reg.LookupPair(0x1F1EF, 0x1F1F5)
	require.True(t, ok)
	_, ok = reg.LookupPair(0x1F1E6, 0x1F1E8)
	require.False(t, ok)
}

// Tests that regenerating a registry in place keeps its legacy table.
func TestGenerate_InPlace(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "emoji-test.txt")
	registry := filepath.Join(dir, "registry.json")

	require.NoError(t, os.WriteFile(input, []byte(sampleEmojiTest), 0644))
	require.NoError(t, os.WriteFile(registry, emoji.EmbeddedDocument(), 0644))

	p := DefaultParams()
	p.Input = input
	p.Base = registry
	p.Output = registry
	require.NoError(t, generate(p))

	reg, err := emoji.LoadFile(registry)
	require.NoError(t, err)
	_, legacy, _ := reg.Len()
	require.Equal(t, 470, legacy)
}

// Error path: tests that generate fails without a base document, on a
// missing input or base file, and without an output file.
func TestGenerate_Error(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "emoji-test.txt")
	base := filepath.Join(dir, "base.json")
	require.NoError(t, os.WriteFile(input, []byte(sampleEmojiTest), 0644))
	require.NoError(t, os.WriteFile(base, emoji.EmbeddedDocument(), 0644))

	p := DefaultParams()
	p.Input = input
	p.Base = ""
	p.Output = filepath.Join(dir, "registry.json")
	require.Error(t, generate(p))
	require.NoFileExists(t, p.Output)

	p.Base = filepath.Join(dir, "missing.json")
	require.Error(t, generate(p))

	p.Base = base
	p.Input = filepath.Join(dir, "missing.txt")
	require.Error(t, generate(p))

	p.Input = input
	p.Output = ""
	require.Error(t, generate(p))
}
