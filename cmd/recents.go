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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/emojicon/cmdUtils"
	"gitlab.com/elixxir/emojicon/emoji"
	"gitlab.com/elixxir/emojicon/recents"
)

var recentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "Lists and edits the recently used emoji",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			jww.FATAL.Panicf("%+v", err)
		}
	},
}

var recentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the recent emoji, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := cmdUtils.InitRegistry()
		if err != nil {
			jww.FATAL.Panicf("%+v", err)
		}

		withRecents(func(m *recents.Manager) {
			for i, e := range m.Get() {
				fmt.Printf("%d\t%s\t%s\n", i, e.Emoji, e.WithIcon(reg).Icon)
			}
		})
	},
}

var recentsPushCmd = &cobra.Command{
	Use:   "push <emoji>",
	Short: "Moves an emoji to the front of the recents",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := cmdUtils.InitRegistry()
		if err != nil {
			jww.FATAL.Panicf("%+v", err)
		}

		e, err := parseEmoji(reg, args[0])
		if err != nil {
			jww.FATAL.Panicf("%+v", err)
		}

		withRecents(func(m *recents.Manager) {
			if err = m.Push(e); err != nil {
				jww.FATAL.Panicf("%+v", err)
			}
			fmt.Printf("Pushed %s, %d recents\n", e.Emoji, m.Len())
		})
	},
}

var recentsRemoveCmd = &cobra.Command{
	Use:   "remove <emoji>",
	Short: "Removes an emoji from the recents",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withRecents(func(m *recents.Manager) {
			removed, err := m.Remove(emoji.FromChars(args[0]))
			if err != nil {
				jww.FATAL.Panicf("%+v", err)
			}
			if !removed {
				fmt.Printf("%s is not a recent emoji\n", args[0])
				return
			}
			fmt.Printf("Removed %s, %d recents\n", args[0], m.Len())
		})
	},
}

var recentsPageCmd = &cobra.Command{
	Use:   "page [n]",
	Short: "Prints or sets the last viewed catalog page",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withRecents(func(m *recents.Manager) {
			if len(args) == 1 {
				page, err := strconv.Atoi(args[0])
				if err != nil {
					jww.FATAL.Panicf("Invalid page %q: %+v", args[0], err)
				}
				if err = m.SetRecentPage(page); err != nil {
					jww.FATAL.Panicf("%+v", err)
				}
			}

			page, err := m.RecentPage()
			if err != nil {
				jww.FATAL.Panicf("%+v", err)
			}
			fmt.Println(page)
		})
	},
}

// withRecents loads the configured recents, runs fn and closes the store.
func withRecents(fn func(m *recents.Manager)) {
	m, closeStore, err := cmdUtils.InitRecents()
	if err != nil {
		jww.FATAL.Panicf("%+v", err)
	}
	defer closeStore()

	fn(m)
}

// parseEmoji accepts text the registry can render or that Unicode lists as a
// single emoji.
func parseEmoji(reg emoji.Registry, text string) (emoji.Emojicon, error) {
	e := emoji.FromChars(text).WithIcon(reg)
	if e.Icon != "" {
		return e, nil
	}

	if err := emoji.ValidateReaction(text); err != nil {
		return emoji.Emojicon{}, errors.WithMessagef(err,
			"%q is not an emoji", text)
	}
	return e, nil
}

func init() {
	recentsCmd.PersistentFlags().Int(cmdUtils.MaxRecentsFlag,
		recents.DefaultMaximumSize, "Maximum number of recent emoji kept.")
	cmdUtils.BindFlagKeyHelper(
		cmdUtils.MaxRecentsKey, cmdUtils.MaxRecentsFlag, recentsCmd)

	recentsCmd.AddCommand(recentsListCmd, recentsPushCmd, recentsRemoveCmd,
		recentsPageCmd)
	rootCmd.AddCommand(recentsCmd)
}
