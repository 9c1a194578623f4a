////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmdUtils

import (
	"io"
	"log"
	"os"
	"strconv"

	jww "github.com/spf13/jwalterweatherman"
)

// InitLog enables jww logging at the given threshold. A log path of "-" logs
// to stdout, an empty path disables logging, and any other path is opened for
// appending and replaces stdout. Panics if the log file cannot be opened or if
// the threshold is invalid.
func InitLog(threshold jww.Threshold, logPath string) {
	if logPath == "" {
		jww.SetStdoutThreshold(jww.LevelFatal)
		jww.SetLogThreshold(jww.LevelFatal)
		return
	} else if logPath != "-" {
		// Disable stdout output
		jww.SetStdoutOutput(io.Discard)

		// Use log file
		logOutput, err :=
			os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err.Error())
		}
		jww.SetLogOutput(logOutput)
	}

	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		panic("Invalid log threshold: " + strconv.Itoa(int(threshold)))
	}

	// Display microseconds if the threshold is set to TRACE or DEBUG
	if threshold == jww.LevelTrace || threshold == jww.LevelDebug {
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	jww.SetStdoutThreshold(threshold)
	jww.SetLogThreshold(threshold)
	jww.INFO.Printf("Log level set to: %s", threshold)
}
