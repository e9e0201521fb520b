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

// TransferData - data for a transfer request
type TransferData struct {
	Owner    *account.PrivateKey
	Receiver *account.Account
	Amount   uint64
}

// Transfer - move an amount between two accounts
func (client *Client) Transfer(transferConfig *TransferData) (*token.TransferReply, error) {

	transfer, err := makeTransfer(transferConfig.Owner, transferConfig.Receiver, transferConfig.Amount)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Request", transfer)

	reply := &token.TransferReply{}
	err = client.client.Call("Token.Transfer", transfer, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return reply, nil
}

func makeTransfer(owner *account.PrivateKey, receiver *account.Account, amount uint64) (*tokenrecord.Transfer, error) {

	ownerAccount := owner.Account()

	r := tokenrecord.Transfer{
		From:      ownerAccount,
		To:        receiver,
		Amount:    amount,
		Signature: nil,
	}

	// pack without signature
	packed, err := r.Pack(ownerAccount)
	if nil == err {
		return nil, fault.MakeRecordFailed
	} else if fault.InvalidSignature != err {
		return nil, err
	}

	// attach signature
	signature := ed25519.Sign(owner.PrivateKeyBytes(), packed)
	r.Signature = signature[:]

	// check that signature is correct by packing again
	_, err = r.Pack(ownerAccount)
	if nil != err {
		return nil, err
	}
	return &r, nil
}
