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

// Pack BalanceSet
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (balanceSet *BalanceSet) Pack(address *account.Account) (Packed, error) {
	if len(balanceSet.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}

	if nil == balanceSet.Account || nil == address {
		return nil, fault.InvalidAccount
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(BalanceSetTag))
	message = appendAccount(message, balanceSet.Account)
	message = appendUint64(message, balanceSet.Amount)

	// signature
	err := address.CheckSignature(message, balanceSet.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, balanceSet.Signature), nil
}

// Pack Transfer
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (transfer *Transfer) Pack(address *account.Account) (Packed, error) {
	if len(transfer.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}

	if nil == transfer.From || nil == transfer.To || nil == address {
		return nil, fault.InvalidAccount
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(TransferTag))
	message = appendAccount(message, transfer.From)
	message = appendAccount(message, transfer.To)
	message = appendUint64(message, transfer.Amount)

	// signature
	err := address.CheckSignature(message, transfer.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, transfer.Signature), nil
}

// Pack Approval
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (approval *Approval) Pack(address *account.Account) (Packed, error) {
	if len(approval.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}

	if nil == approval.From || nil == approval.To || nil == address {
		return nil, fault.InvalidAccount
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(ApprovalTag))
	message = appendAccount(message, approval.From)
	message = appendAccount(message, approval.To)
	message = appendUint64(message, approval.Amount)

	// signature
	err := address.CheckSignature(message, approval.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, approval.Signature), nil
}

// Pack DelegatedTransfer
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (delegated *DelegatedTransfer) Pack(address *account.Account) (Packed, error) {
	if len(delegated.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}

	if nil == delegated.From || nil == delegated.To || nil == address {
		return nil, fault.InvalidAccount
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(DelegatedTransferTag))
	message = appendAccount(message, delegated.From)
	message = appendAccount(message, delegated.To)
	message = appendUint64(message, delegated.Amount)

	// signature
	err := address.CheckSignature(message, delegated.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, delegated.Signature), nil
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	data := address.Bytes()
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
