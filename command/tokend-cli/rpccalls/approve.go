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

// ApproveData - data for an approve request
type ApproveData struct {
	Owner   *account.PrivateKey
	Spender *account.Account
	Amount  uint64
}

// Approve - move an amount and grant an allowance to the spender
func (client *Client) Approve(approveConfig *ApproveData) (*token.ApproveReply, error) {

	approval, err := makeApproval(approveConfig.Owner, approveConfig.Spender, approveConfig.Amount)
	if nil != err {
		return nil, err
	}

	client.printJson("Approve Request", approval)

	reply := &token.ApproveReply{}
	err = client.client.Call("Token.Approve", approval, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Approve Reply", reply)

	return reply, nil
}

func makeApproval(owner *account.PrivateKey, spender *account.Account, amount uint64) (*tokenrecord.Approval, error) {

	ownerAccount := owner.Account()

	r := tokenrecord.Approval{
		From:      ownerAccount,
		To:        spender,
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
