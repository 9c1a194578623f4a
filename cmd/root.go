////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package cmd initializes the CLI and config parsers as well as the logger.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/emojicon/cmdUtils"
	"gitlab.com/elixxir/emojicon/storage"
)

var cfgFile string

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "emojicon",
	Short: "Finds emoji in text and keeps the recently used ones",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmdUtils.InitLog(jww.Threshold(viper.GetInt(cmdUtils.LogLevelFlag)),
			viper.GetString(cmdUtils.LogFlag))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			jww.FATAL.Panicf("%+v", err)
		}
	},
}

// init is the initialization function for Cobra which defines commands
// and flags.
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, cmdUtils.ConfigFlag, "c",
		"", "Config file with any of the flags below as keys.")

	rootCmd.PersistentFlags().IntP(cmdUtils.LogLevelFlag, "v", 3,
		"Verbosity level of logging. 0 = TRACE, 1 = DEBUG, 2 = INFO, "+
			"3 = WARN, 4 = ERROR, 5 = CRITICAL, 6 = FATAL")
	cmdUtils.BindFlagHelper(cmdUtils.LogLevelFlag, rootCmd)

	rootCmd.PersistentFlags().StringP(cmdUtils.LogFlag, "l", "-",
		"Log output path. By default, logs are printed to stdout. "+
			"To disable logging, set this to empty (\"\").")
	cmdUtils.BindFlagHelper(cmdUtils.LogFlag, rootCmd)

	rootCmd.PersistentFlags().StringP(cmdUtils.RegistryFlag, "r", "",
		"Registry document to use instead of the embedded one.")
	cmdUtils.BindFlagHelper(cmdUtils.RegistryFlag, rootCmd)

	rootCmd.PersistentFlags().String(cmdUtils.StoreTypeFlag,
		storage.EkvStore, "Preference store type: \"ekv\" or \"bolt\".")
	cmdUtils.BindFlagKeyHelper(
		cmdUtils.StoreTypeKey, cmdUtils.StoreTypeFlag, rootCmd)

	rootCmd.PersistentFlags().String(cmdUtils.StorePathFlag, "",
		"Directory of the ekv store or file of the bolt store. An empty "+
			"path keeps an ekv store in memory.")
	cmdUtils.BindFlagKeyHelper(
		cmdUtils.StorePathKey, cmdUtils.StorePathFlag, rootCmd)

	rootCmd.PersistentFlags().String(cmdUtils.StorePasswordFlag, "",
		"Password encrypting the ekv store.")
	cmdUtils.BindFlagKeyHelper(
		cmdUtils.StorePasswordKey, cmdUtils.StorePasswordFlag, rootCmd)
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if err := cmdUtils.InitConfig(cfgFile); err != nil {
		jww.FATAL.Panicf("%+v", err)
	}
}
