////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Handles command-line version functionality

package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"gitlab.com/elixxir/emojicon/emoji"
)

// Change this value to set the version for this build
const SEMVER = "1.0.0"

// Version returns the version, the size of the embedded registry and the
// module dependencies of the binary.
func Version() string {
	standard, legacy, pairs := emoji.Default().Len()
	out := fmt.Sprintf("Emojicon v%s -- registry v%d (%d standard, %d "+
		"legacy, %d pairs)\n\n", SEMVER, emoji.DocumentVersion, standard,
		legacy, pairs)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out += "Dependencies:\n\n"
	for _, dep := range info.Deps {
		out += fmt.Sprintf("%s %s\n", dep.Path, dep.Version)
	}
	return out
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and dependency information for the Emojicon binary",
	Long:  `Print the version and dependency information for the Emojicon binary`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(Version())
	},
}
