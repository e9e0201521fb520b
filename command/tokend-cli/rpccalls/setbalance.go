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

// SetBalanceData - data for an administrative balance override
// the administrator signs, not the target account
type SetBalanceData struct {
	Administrator *account.PrivateKey
	Account       *account.Account
	Amount        uint64
}

// SetBalance - administrative balance override
func (client *Client) SetBalance(setConfig *SetBalanceData) (*token.SetBalanceReply, error) {

	balanceSet, err := makeBalanceSet(setConfig.Administrator, setConfig.Account, setConfig.Amount)
	if nil != err {
		return nil, err
	}

	client.printJson("SetBalance Request", balanceSet)

	reply := &token.SetBalanceReply{}
	err = client.client.Call("Token.SetBalance", balanceSet, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("SetBalance Reply", reply)

	return reply, nil
}

func makeBalanceSet(administrator *account.PrivateKey, acc *account.Account, amount uint64) (*tokenrecord.BalanceSet, error) {

	administratorAccount := administrator.Account()

	r := tokenrecord.BalanceSet{
		Account:   acc,
		Amount:    amount,
		Signature: nil,
	}

	// pack without signature - the administrator signs
	packed, err := r.Pack(administratorAccount)
	if nil == err {
		return nil, fault.MakeRecordFailed
	} else if fault.InvalidSignature != err {
		return nil, err
	}

	// attach signature
	signature := ed25519.Sign(administrator.PrivateKeyBytes(), packed)
	r.Signature = signature[:]

	// check that signature is correct by packing again
	_, err = r.Pack(administratorAccount)
	if nil != err {
		return nil, err
	}
	return &r, nil
}
