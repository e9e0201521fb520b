// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
	}

	// prompt new password with confirmation
	newPassword, err := promptNewPassword()
	if err != nil {
		return err
	}

	// re-encrypt under the new password, keeping the description
	description := owner.Description
	delete(m.config.Identities, name)
	err = m.config.AddIdentity(name, description, owner.PrivateKey.String(), newPassword)
	if err != nil {
		return err
	}

	// require configuration update
	m.save = true
	return nil
}
