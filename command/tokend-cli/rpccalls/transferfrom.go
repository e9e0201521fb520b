// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// TransferFromData - data for a delegated transfer request
// the spender signs and the amount is drawn from a previously
// granted allowance
type TransferFromData struct {
	Spender *account.PrivateKey
	Owner   *account.Account
	Amount  uint64
}

// TransferFrom - delegated transfer consuming a recorded allowance
func (client *Client) TransferFrom(transferConfig *TransferFromData) (*token.TransferFromReply, error) {

	delegated, err := makeDelegatedTransfer(transferConfig.Spender, transferConfig.Owner, transferConfig.Amount)
	if nil != err {
		return nil, err
	}

	client.printJson("TransferFrom Request", delegated)

	reply := &token.TransferFromReply{}
	err = client.client.Call("Token.TransferFrom", delegated, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("TransferFrom Reply", reply)

	return reply, nil
}

func makeDelegatedTransfer(spender *account.PrivateKey, owner *account.Account, amount uint64) (*tokenrecord.DelegatedTransfer, error) {

	spenderAccount := spender.Account()

	r := tokenrecord.DelegatedTransfer{
		From:      owner,
		To:        spenderAccount,
		Amount:    amount,
		Signature: nil,
	}

	// pack without signature - the spender signs
	packed, err := r.Pack(spenderAccount)
	if nil == err {
		return nil, fault.MakeRecordFailed
	} else if fault.InvalidSignature != err {
		return nil, err
	}

	// attach signature
	signature := ed25519.Sign(spender.PrivateKeyBytes(), packed)
	r.Signature = signature[:]

	// check that signature is correct by packing again
	_, err = r.Pack(spenderAccount)
	if nil != err {
		return nil, err
	}
	return &r, nil
}
