////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
	"gitlab.com/xx_network/primitives/utils"

	"gitlab.com/elixxir/emojicon/cmdUtils"
	"gitlab.com/elixxir/emojicon/emoji"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [page]",
	Short: "Lists the catalog pages or the emoji of one page",
	Long: "Without arguments, lists every catalog page. With a page ID or " +
		"index, prints the emoji of that page in order.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog := initCatalog()

		if len(args) == 0 {
			for i, page := range catalog.Pages() {
				fmt.Printf("%d\t%s\t%d\n", i, page.ID, len(page.Emojicons))
			}
			return
		}

		page, ok := catalog.PageByID(args[0])
		if !ok {
			if i, err := strconv.Atoi(args[0]); err == nil {
				page, ok = catalog.Page(i)
			}
		}
		if !ok {
			jww.FATAL.Panicf("No catalog page %q", args[0])
		}

		describe, err := cmd.Flags().GetBool(cmdUtils.DescribeFlag)
		if err != nil {
			jww.FATAL.Panicf("%+v", err)
		}

		for _, e := range page.Emojicons {
			line := fmt.Sprintf("%s\t%s", e.Emoji, e.Icon)
			if describe {
				if d, err := emoji.Describe(e); err == nil {
					line += "\t" + d.Name
				}
			}
			fmt.Println(line)
		}
	},
}

// initCatalog returns the catalog of the configured registry document.
func initCatalog() *emoji.Catalog {
	path := viper.GetString(cmdUtils.RegistryFlag)
	if path == "" {
		return emoji.DefaultCatalog()
	}

	reg, err := cmdUtils.InitRegistry()
	if err != nil {
		jww.FATAL.Panicf("%+v", err)
	}

	data, err := utils.ReadFile(path)
	if err != nil {
		jww.FATAL.Panicf("Failed to read registry %s: %+v", path, err)
	}

	catalog, err := emoji.LoadCatalog(data, reg)
	if err != nil {
		jww.FATAL.Panicf("%+v", err)
	}
	return catalog
}

func init() {
	catalogCmd.Flags().BoolP(cmdUtils.DescribeFlag, "d", false,
		"Print the Unicode name of every emoji.")

	rootCmd.AddCommand(catalogCmd)
}
