// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokend/command/tokend-cli/rpccalls"
)

func runRecords(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// optional resume point
	txId := c.String("start")
	if "" != txId {
		var err error
		txId, err = checkTxId(txId)
		if err != nil {
			return err
		}
	}

	count, err := checkRecordCount(c.String("count"))
	if err != nil {
		return err
	}

	connect, err := connection(c, m.config)
	if err != nil {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.ListRecords(txId, count)
	if err != nil {
		return err
	}

	return printJson(m.w, response)
}
