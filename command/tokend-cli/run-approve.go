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

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, spender, err := checkAccount(c, "spender", m.config)
	if err != nil {
		return err
	}

	amount, err := checkAmount(c.String("amount"))
	if err != nil {
		return err
	}

	from, owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "spender: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
		fmt.Fprintf(m.e, "owner: %s\n", from)
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

	approveConfig := &rpccalls.ApproveData{
		Owner:   owner.PrivateKey,
		Spender: spender,
		Amount:  amount,
	}

	response, err := client.Approve(approveConfig)
	if err != nil {
		return err
	}

	return printJson(m.w, response)
}
