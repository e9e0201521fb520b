// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokend/account"
)

func runGenerate(c *cli.Context) error {

	testnet := true
	switch c.GlobalString("network") {
	case "bitmark", "live":
		testnet = false
	}

	privateKey, err := account.MakePrivateKey(testnet)
	if nil != err {
		return err
	}

	type keyPairDisplay struct {
		Account    *account.Account    `json:"account"`
		PrivateKey *account.PrivateKey `json:"privateKey"`
	}
	output := keyPairDisplay{
		Account:    privateKey.Account(),
		PrivateKey: privateKey,
	}

	fmt.Fprintf(c.App.ErrWriter, "the private key is not stored, save this output\n")
	return printJson(c.App.Writer, output)
}
