////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmdUtils

import (
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/emojicon/emoji"
	"gitlab.com/elixxir/emojicon/handler"
	"gitlab.com/elixxir/emojicon/recents"
	"gitlab.com/elixxir/emojicon/storage"
)

// InitRegistry loads the registry named by the registry flag, or the embedded
// registry if none is set.
func InitRegistry() (*emoji.Table, error) {
	path := viper.GetString(RegistryFlag)
	if path == "" {
		return emoji.Default(), nil
	}

	reg, err := emoji.LoadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to load registry %s",
			path)
	}

	standard, legacy, pairs := reg.Len()
	jww.INFO.Printf("Loaded registry %s: %d standard, %d legacy, %d pairs",
		path, standard, legacy, pairs)
	return reg, nil
}

// InitHandlerParams builds handler.Params from the config.
func InitHandlerParams() handler.Params {
	p := handler.GetDefaultParams()
	p.UseSystemDefault = viper.GetBool(SystemDefaultFlag)
	p.Size = viper.GetInt(SizeFlag)
	if viper.IsSet(CacheSizeFlag) {
		p.CacheSize = viper.GetInt(CacheSizeFlag)
	}
	return p
}

// InitStoreParams builds storage.StoreParams from the config.
func InitStoreParams() storage.StoreParams {
	p := storage.GetDefaultStoreParams()
	if t := viper.GetString(StoreTypeKey); t != "" {
		p.Type = t
	}
	p.Path = viper.GetString(StorePathKey)
	p.Password = viper.GetString(StorePasswordKey)
	return p
}

// InitRecents opens the configured store and loads the recents kept in it.
// The returned closer must be called when done.
func InitRecents() (*recents.Manager, func(), error) {
	prefs, closer, err := storage.Open(InitStoreParams())
	if err != nil {
		return nil, nil, err
	}

	maximum := recents.DefaultMaximumSize
	if viper.IsSet(MaxRecentsKey) {
		maximum = viper.GetInt(MaxRecentsKey)
	}

	m, err := recents.NewOrLoad(prefs, maximum)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	return m, func() {
		if err := closer.Close(); err != nil {
			jww.ERROR.Printf("Failed to close store: %+v", err)
		}
	}, nil
}
