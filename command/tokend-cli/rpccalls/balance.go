// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/rpc/token"
)

// GetBalance - retrieve the balance of a single account
func (client *Client) GetBalance(owner *account.Account) (*token.BalanceOfReply, error) {

	balanceArgs := token.BalanceOfArguments{
		Owner: owner,
	}

	client.printJson("BalanceOf Request", balanceArgs)

	reply := &token.BalanceOfReply{}
	err := client.client.Call("Token.BalanceOf", &balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("BalanceOf Reply", reply)

	return reply, nil
}

// GetAllowance - retrieve the remaining allowance for an (owner, spender) pair
func (client *Client) GetAllowance(owner *account.Account, spender *account.Account) (*token.AllowanceReply, error) {

	allowanceArgs := token.AllowanceArguments{
		Owner:   owner,
		Spender: spender,
	}

	client.printJson("Allowance Request", allowanceArgs)

	reply := &token.AllowanceReply{}
	err := client.client.Call("Token.Allowance", &allowanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Allowance Reply", reply)

	return reply, nil
}
