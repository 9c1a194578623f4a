////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmdUtils

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/utils"
)

// ReadTextFile reads the text at path. A path of "-" reads stdin. A single
// trailing newline is dropped.
func ReadTextFile(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = utils.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read text file %s", path)
	}

	jww.INFO.Printf("Read in text file of size %d bytes", len(data))
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// WriteOutputFile writes data to path, creating parent directories as
// needed. An empty path writes nothing.
func WriteOutputFile(path string, data []byte) error {
	if path == "" {
		return nil
	}
	if err := utils.WriteFileDef(path, data); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	jww.INFO.Printf("Wrote %d bytes to %s", len(data), path)
	return nil
}
