////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmdUtils

// This is a list of CLI flag name constants shared between root and
// subcommands. Flags designed for a specific subcommand should go in its
// respective file. Pulling flags using Viper should use the constants defined
// here.
const (
	// Config flags

	ConfigFlag   = "config"
	RegistryFlag = "registry"

	// Log flags

	LogLevelFlag = "logLevel"
	LogFlag      = "log"

	// Store flags

	StoreTypeFlag     = "store"
	StorePathFlag     = "store-path"
	StorePasswordFlag = "store-password"

	// Rendering flags

	SizeFlag          = "size"
	SystemDefaultFlag = "system-default"
	CacheSizeFlag     = "cache-size"

	// Scan flags

	FileFlag     = "file"
	StartFlag    = "start"
	LengthFlag   = "length"
	JsonFlag     = "json"
	DescribeFlag = "describe"
	ProfileFlag  = "profile"

	// Recents flags

	MaxRecentsFlag = "max"
)

// Config keys whose names differ from their flags. Nested keys map to
// sections of the config file and to EMOJICON_STORE_TYPE style environment
// variables.
const (
	StoreTypeKey     = "store.type"
	StorePathKey     = "store.path"
	StorePasswordKey = "store.password"
	MaxRecentsKey    = "recents.max"
)

// EnvPrefix is the prefix of the environment variables read into the config.
const EnvPrefix = "emojicon"
