// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokend/command/tokend-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "tokend-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to tokend `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.IntFlag{
			Name:  "connection, c",
			Value: 0,
			Usage: " connection offset `N`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise tokend-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*tokend host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " using existing base58 `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: " generate a new private key",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: "+using existing base58 `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new private key",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+add a receive-only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "display tokend-cli configuration",
			Action: runList,
		},
		{
			Name:   "info",
			Usage:  "display tokend status",
			Action: runInfo,
		},
		{
			Name:   "supply",
			Usage:  "display the total token supply",
			Action: runSupply,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `ACCOUNT` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "allowance",
			Usage:     "display the remaining allowance for an owner and spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `ACCOUNT` default is global identity",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*identity name or account `ACCOUNT`",
				},
			},
			Action: runAllowance,
		},
		{
			Name:      "set-balance",
			Usage:     "override the balance of an account, administrator only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*identity name or account `ACCOUNT` to modify",
				},
				cli.StringFlag{
					Name:  "amount, q",
					Value: "",
					Usage: "*new balance `NUMBER`",
				},
			},
			Action: runSetBalance,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an amount to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account `ACCOUNT` to receive the funds",
				},
				cli.StringFlag{
					Name:  "amount, q",
					Value: "",
					Usage: "*amount to transfer `NUMBER`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "approve",
			Usage:     "transfer an amount and grant the receiver an equal allowance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*identity name or account `ACCOUNT` to receive the allowance",
				},
				cli.StringFlag{
					Name:  "amount, q",
					Value: "",
					Usage: "*amount to approve `NUMBER`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "transfer-from",
			Usage:     "draw an amount from a granted allowance, spender signs",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*identity name or account `ACCOUNT` owning the funds",
				},
				cli.StringFlag{
					Name:  "amount, q",
					Value: "",
					Usage: "*amount to transfer `NUMBER`",
				},
			},
			Action: runTransferFrom,
		},
		{
			Name:      "record",
			Usage:     "display a stored record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id to fetch `TXID`",
				},
			},
			Action: runRecord,
		},
		{
			Name:      "records",
			Usage:     "list stored records",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " resume after this transaction id `TXID`",
				},
				cli.StringFlag{
					Name:  "count, c",
					Value: "",
					Usage: " batch size `N`",
				},
			},
			Action: runRecords,
		},
		{
			Name:   "password",
			Usage:  "change an identity's password",
			Action: runChangePassword,
		},
		{
			Name:  "version",
			Usage: "display tokend-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "generate" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "":
			network = configuration.DefaultNetwork
		case "bitmark", "live":
			network = "bitmark"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be bitmark/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != "bitmark",
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			conf, err := configuration.GetConfiguration(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  conf,
				testnet: conf.TestNet,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
