// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
)

// Save - write the configuration, keeping the previous one as backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	os.Remove(tempFile)

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}
	b = append(b, '\n')

	err = ioutil.WriteFile(tempFile, b, 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(tempFile, filename)
	if nil != err {
		return err
	}

	return nil
}
