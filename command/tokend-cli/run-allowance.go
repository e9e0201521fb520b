// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokend/command/tokend-cli/rpccalls"
)

func runAllowance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, ownerAccount, err := checkAccountWithDefault(c, "owner", m.config)
	if err != nil {
		return err
	}

	spender, spenderAccount, err := checkAccount(c, "spender", m.config)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "spender: %s\n", spender)
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

	response, err := client.GetAllowance(ownerAccount, spenderAccount)
	if err != nil {
		return err
	}

	return printJson(m.w, response)
}
