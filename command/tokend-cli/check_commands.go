// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/command/tokend-cli/configuration"
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", fmt.Errorf("identity name is required")
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", fmt.Errorf("connect is required")
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fmt.Errorf("description is required")
	}

	return description, nil
}

// private key is either an existing base58 key or a freshly
// generated one when the new flag is set
func checkPrivateKey(key string, new bool, testnet bool) (string, error) {
	if "" == key && !new {
		return "", fmt.Errorf("private key or new is required")
	}
	if "" != key && new {
		return "", fmt.Errorf("only one of private key or new is allowed")
	}

	if new {
		privateKey, err := account.MakePrivateKey(testnet)
		if nil != err {
			return "", err
		}
		return privateKey.String(), nil
	}

	// verify the key decodes and is for the right network
	privateKey, err := account.PrivateKeyFromBase58(key)
	if nil != err {
		return "", err
	}
	if privateKey.IsTesting() != testnet {
		return "", fmt.Errorf("private key is for the wrong network")
	}

	return key, nil
}

// amount is a required decimal string
func checkAmount(amount string) (uint64, error) {
	if "" == amount {
		return 0, fmt.Errorf("amount is required")
	}

	return strconv.ParseUint(amount, 10, 64)
}

// transaction id is a required field
func checkTxId(txId string) (string, error) {
	if "" == txId {
		return "", fmt.Errorf("transaction id is required")
	}

	return txId, nil
}

// listing batch size, an empty value picks a small default
func checkRecordCount(count string) (int, error) {
	if "" == count {
		return 10, nil
	}

	n, err := strconv.ParseUint(count, 10, 16)
	if nil != err {
		return 0, err
	}
	if 0 == n {
		return 0, fmt.Errorf("count cannot be zero")
	}
	return int(n), nil
}

// an account flag value is either an identity name from the
// configuration or a base58 account literal
func checkAccount(c *cli.Context, flagName string, config *configuration.Configuration) (string, *account.Account, error) {
	name := c.String(flagName)
	if "" == name {
		return "", nil, fmt.Errorf("%s is required", flagName)
	}

	acc, err := resolveAccount(name, config)
	return name, acc, err
}

// like checkAccount, but an empty value falls back to the default identity
func checkAccountWithDefault(c *cli.Context, flagName string, config *configuration.Configuration) (string, *account.Account, error) {
	name := c.String(flagName)
	if "" == name {
		name = c.GlobalString("identity")
	}
	if "" == name {
		name = config.DefaultIdentity
	}

	acc, err := resolveAccount(name, config)
	return name, acc, err
}

func resolveAccount(name string, config *configuration.Configuration) (*account.Account, error) {
	if acc, err := config.Account(name); nil == err {
		return acc, nil
	}

	return account.AccountFromBase58(name)
}

// find the signing identity and decrypt its private key, prompting
// for the password when it was not supplied as a flag
func checkOwnerWithPasswordPrompt(name string, config *configuration.Configuration, c *cli.Context) (string, *configuration.Private, error) {
	if "" == name {
		name = config.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword(name)
		if nil != err {
			return "", nil, err
		}
	}

	owner, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}

	return name, owner, nil
}

// select the connection for this command
func connection(c *cli.Context, config *configuration.Configuration) (string, error) {
	if 0 == len(config.Connections) {
		return "", fmt.Errorf("no connections are configured")
	}

	offset := c.GlobalInt("connection")
	if offset < 0 || offset >= len(config.Connections) {
		return "", fmt.Errorf("connection: %d is out of range", offset)
	}

	return config.Connections[offset], nil
}

// checkFileExists - whether a file exists, the bool is true for a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
