////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// package main downloads the latest list of emojis from Unicode and parses them
// into the registry document embedded by the emoji package.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/emojicon/cmdUtils"
)

// Flag variables.
var (
	logLevel int
	logFile  string
	p        = DefaultParams()
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var cmd = &cobra.Command{
	Use: "generateRegistry",
	Short: "Downloads the emoji file (from Unicode) and parses it into the " +
		"registry document of standard, keycap and flag emoji.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {

		// Initialize the logging
		cmdUtils.InitLog(jww.Threshold(logLevel), logFile)

		err := generate(p)
		if err != nil {
			jww.FATAL.Panicf("%+v", err)
		}
	},
}

// init is the initialization function for Cobra which defines flags.
func init() {
	cmd.Flags().StringVarP(&p.DownloadURL, "url", "u", p.DownloadURL,
		"URL to download emojis from.")
	cmd.Flags().StringVarP(&p.Input, "input", "i", p.Input,
		"Local emoji-test.txt to parse instead of downloading one.")
	cmd.Flags().StringVarP(&p.Base, "base", "b", p.Base,
		"Existing registry document whose legacy table and flag pairs are "+
			"kept.")
	cmd.Flags().StringVarP(&p.Output, "output", "o", p.Output,
		"Output file path for the registry document.")
	cmd.Flags().StringVarP(&logFile, "log", "l", "-",
		"Log output path. By default, logs are printed to stdout. "+
			"To disable logging, set this to empty (\"\").")
	cmd.Flags().IntVarP(&logLevel, "logLevel", "v", 4,
		"Verbosity level of logging. 0 = TRACE, 1 = DEBUG, 2 = INFO, "+
			"3 = WARN, 4 = ERROR, 5 = CRITICAL, 6 = FATAL")
}
