////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/emojicon/cmdUtils"
	"gitlab.com/elixxir/emojicon/emoji"
	"gitlab.com/elixxir/emojicon/handler"
)

// scanResult is one span as printed by the scan command.
type scanResult struct {
	Start int           `json:"start"`
	End   int           `json:"end"`
	Text  string        `json:"text"`
	Asset emoji.AssetID `json:"asset"`
	Size  int           `json:"size,omitempty"`
	Name  string        `json:"name,omitempty"`
}

var scanCmd = &cobra.Command{
	Use:   "scan [text...]",
	Short: "Prints the emoji spans found in text",
	Long: "Prints the emoji spans found in the arguments, or in a file with " +
		"--file. Offsets are in UTF-16 code units.",
	Run: func(cmd *cobra.Command, args []string) {
		if path := viper.GetString(cmdUtils.ProfileFlag); path != "" {
			defer profile.Start(profile.CPUProfile,
				profile.ProfilePath(path), profile.Quiet).Stop()
		}

		text := strings.Join(args, " ")
		if path := viper.GetString(cmdUtils.FileFlag); path != "" {
			var err error
			text, err = cmdUtils.ReadTextFile(path)
			if err != nil {
				jww.FATAL.Panicf("%+v", err)
			}
		}

		reg, err := cmdUtils.InitRegistry()
		if err != nil {
			jww.FATAL.Panicf("%+v", err)
		}

		h, err := handler.NewHandler(reg, cmdUtils.InitHandlerParams())
		if err != nil {
			jww.FATAL.Panicf("%+v", err)
		}

		t := handler.New(text)
		size := viper.GetInt(cmdUtils.SizeFlag)
		var spans []handler.Span
		if cmd.Flags().Changed(cmdUtils.StartFlag) ||
			cmd.Flags().Changed(cmdUtils.LengthFlag) {
			spans = h.AddEmojisRange(t, size,
				viper.GetInt(cmdUtils.StartFlag),
				viper.GetInt(cmdUtils.LengthFlag))
		} else {
			spans = h.AddEmojis(t, size)
		}

		results := makeScanResults(t.Units(), spans,
			viper.GetBool(cmdUtils.DescribeFlag))
		jww.INFO.Printf("Found %d emoji in %d code units", len(results),
			t.Len())

		if viper.GetBool(cmdUtils.JsonFlag) {
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				jww.FATAL.Panicf("Failed to marshal spans: %+v", err)
			}
			fmt.Println(string(out))
			return
		}

		for _, r := range results {
			line := fmt.Sprintf("[%d, %d) %s %s", r.Start, r.End, r.Text,
				r.Asset)
			if r.Name != "" {
				line += " " + r.Name
			}
			fmt.Println(line)
		}
	},
}

// makeScanResults pairs every span with the text it covers and, if describe
// is set, the emoji's Unicode name.
func makeScanResults(units []uint16, spans []handler.Span,
	describe bool) []scanResult {
	results := make([]scanResult, 0, len(spans))
	for _, s := range spans {
		r := scanResult{
			Start: s.Start,
			End:   s.End,
			Text:  string(utf16.Decode(units[s.Start:s.End])),
			Asset: s.Asset,
			Size:  s.Size,
		}

		if describe {
			d, err := emoji.Describe(emoji.FromChars(r.Text))
			if err != nil {
				jww.DEBUG.Printf("No description for %s: %+v", s, err)
			} else {
				r.Name = d.Name
			}
		}

		results = append(results, r)
	}
	return results
}

func init() {
	scanCmd.Flags().StringP(cmdUtils.FileFlag, "f", "",
		"Read the text from this file instead of the arguments. "+
			"Use \"-\" for stdin.")
	cmdUtils.BindFlagHelper(cmdUtils.FileFlag, scanCmd)

	scanCmd.Flags().Int(cmdUtils.StartFlag, 0,
		"Scan only from this code unit offset.")
	cmdUtils.BindFlagHelper(cmdUtils.StartFlag, scanCmd)

	scanCmd.Flags().Int(cmdUtils.LengthFlag, -1,
		"Scan only this many code units. Negative means to the end.")
	cmdUtils.BindFlagHelper(cmdUtils.LengthFlag, scanCmd)

	scanCmd.Flags().IntP(cmdUtils.SizeFlag, "s", 0,
		"Render size attached to every span.")
	cmdUtils.BindFlagHelper(cmdUtils.SizeFlag, scanCmd)

	scanCmd.Flags().Bool(cmdUtils.SystemDefaultFlag, false,
		"Leave emoji to the system font and report no spans.")
	cmdUtils.BindFlagHelper(cmdUtils.SystemDefaultFlag, scanCmd)

	scanCmd.Flags().Int(cmdUtils.CacheSizeFlag,
		handler.GetDefaultParams().CacheSize,
		"Number of scan results kept in memory. 0 disables the cache.")
	cmdUtils.BindFlagHelper(cmdUtils.CacheSizeFlag, scanCmd)

	scanCmd.Flags().Bool(cmdUtils.JsonFlag, false, "Print spans as JSON.")
	cmdUtils.BindFlagHelper(cmdUtils.JsonFlag, scanCmd)

	scanCmd.Flags().BoolP(cmdUtils.DescribeFlag, "d", false,
		"Print the Unicode name of every emoji found.")
	cmdUtils.BindFlagHelper(cmdUtils.DescribeFlag, scanCmd)

	scanCmd.Flags().String(cmdUtils.ProfileFlag, "",
		"Write a CPU profile of the scan to this directory.")
	cmdUtils.BindFlagHelper(cmdUtils.ProfileFlag, scanCmd)

	rootCmd.AddCommand(scanCmd)
}
