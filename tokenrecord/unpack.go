// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/util"
)

// Unpack - turn a byte slice into a record
//
// Note: the unpacker will access the underlying array of the packed
//       record so p[x:y].Unpack() can read past p[y] and could continue
//       up to cap(p)
//
// must cast result to correct type
//
// e.g.
//   transfer, ok := result.(*tokenrecord.Transfer)
// or:
//   switch rec := result.(type) {
//   case *tokenrecord.Transfer:
func (record Packed) Unpack(testnet bool) (t Record, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotRecordPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotRecordPack
	}

unpack_switch:
	switch TagType(recordType) {

	case BalanceSetTag:

		// account public key
		acc, accountLength, err := unpackAccount(record, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		if 0 == accountLength {
			break unpack_switch
		}
		n += accountLength

		// amount
		amount, amountLength := util.FromVarint64(record[n:])
		if 0 == amountLength {
			break unpack_switch
		}
		n += amountLength

		// signature is remainder of record
		signature, signatureLength := unpackSignature(record, n)
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &BalanceSet{
			Account:   acc,
			Amount:    amount,
			Signature: signature,
		}
		return r, n, nil

	case TransferTag:

		// from public key
		from, fromLength, err := unpackAccount(record, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		if 0 == fromLength {
			break unpack_switch
		}
		n += fromLength

		// to public key
		to, toLength, err := unpackAccount(record, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		if 0 == toLength {
			break unpack_switch
		}
		n += toLength

		// amount
		amount, amountLength := util.FromVarint64(record[n:])
		if 0 == amountLength {
			break unpack_switch
		}
		n += amountLength

		// signature is remainder of record
		signature, signatureLength := unpackSignature(record, n)
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &Transfer{
			From:      from,
			To:        to,
			Amount:    amount,
			Signature: signature,
		}
		return r, n, nil

	case ApprovalTag:

		// from public key
		from, fromLength, err := unpackAccount(record, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		if 0 == fromLength {
			break unpack_switch
		}
		n += fromLength

		// to public key
		to, toLength, err := unpackAccount(record, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		if 0 == toLength {
			break unpack_switch
		}
		n += toLength

		// amount
		amount, amountLength := util.FromVarint64(record[n:])
		if 0 == amountLength {
			break unpack_switch
		}
		n += amountLength

		// signature is remainder of record
		signature, signatureLength := unpackSignature(record, n)
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &Approval{
			From:      from,
			To:        to,
			Amount:    amount,
			Signature: signature,
		}
		return r, n, nil

	case DelegatedTransferTag:

		// from public key
		from, fromLength, err := unpackAccount(record, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		if 0 == fromLength {
			break unpack_switch
		}
		n += fromLength

		// to public key
		to, toLength, err := unpackAccount(record, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		if 0 == toLength {
			break unpack_switch
		}
		n += toLength

		// amount
		amount, amountLength := util.FromVarint64(record[n:])
		if 0 == amountLength {
			break unpack_switch
		}
		n += amountLength

		// signature is remainder of record
		signature, signatureLength := unpackSignature(record, n)
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &DelegatedTransfer{
			From:      from,
			To:        to,
			Amount:    amount,
			Signature: signature,
		}
		return r, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.NotRecordPack
}

// unpack a length prefixed account and check its network
//
// returns zero length to signal a short buffer
func unpackAccount(record Packed, n int, testnet bool) (*account.Account, int, error) {

	accountLength, accountOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == accountOffset {
		return nil, 0, nil
	}
	n += accountOffset
	acc, err := account.AccountFromBytes(record[n : n+accountLength])
	if nil != err {
		return nil, 0, err
	}
	if acc.IsTesting() != testnet {
		return nil, 0, fault.WrongNetworkForPublicKey
	}
	return acc, accountOffset + accountLength, nil
}

// unpack a length prefixed signature
//
// returns zero length to signal a short buffer
func unpackSignature(record Packed, n int) (account.Signature, int) {

	signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, maxSignatureLength)
	if 0 == signatureOffset {
		return nil, 0
	}
	signature := make(account.Signature, signatureLength)
	n += signatureOffset
	copy(signature, record[n:n+signatureLength])
	return signature, signatureOffset + signatureLength
}
