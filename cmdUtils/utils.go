////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package cmdUtils holds the flag names, logging setup, config loading and
// file helpers shared by the emojicon commands.
package cmdUtils

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
)

// BindFlagHelper binds the key to a pflag.Flag used by Cobra and prints an
// error if one occurs.
func BindFlagHelper(key string, command *cobra.Command) {
	BindFlagKeyHelper(key, key, command)
}

// BindFlagKeyHelper binds the config key to the flag of another name and
// prints an error if one occurs. Persistent flags are found too.
func BindFlagKeyHelper(key, flag string, command *cobra.Command) {
	f := command.Flags().Lookup(flag)
	if f == nil {
		f = command.PersistentFlags().Lookup(flag)
	}

	err := viper.BindPFlag(key, f)
	if err != nil {
		jww.ERROR.Printf("viper.BindPFlag failed for %q: %+v", key, err)
	}
}

// InitConfig reads the optional config file and enables environment
// variables prefixed with EnvPrefix. Dots and dashes in keys become
// underscores in variable names.
func InitConfig(cfgFile string) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", cfgFile)
	}

	jww.DEBUG.Printf("Using config file %s", viper.ConfigFileUsed())
	return nil
}
