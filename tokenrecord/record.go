// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	BalanceSetTag        = TagType(iota) // administrative balance override
	TransferTag          = TagType(iota) // move a quantity between accounts
	ApprovalTag          = TagType(iota) // move a quantity and grant an allowance
	DelegatedTransferTag = TagType(iota) // move a quantity against an allowance

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack(account *account.Account) (Packed, error)
}

// byte sizes for various fields
const (
	maxSignatureLength = 1024
)

// BalanceSet - the unpacked administrative balance override structure
// the signature corresponds to the administrator account, not a field
// of the record itself
type BalanceSet struct {
	Account   *account.Account  `json:"account"`   // base58
	Amount    uint64            `json:"amount"`    // unsigned 0..N
	Signature account.Signature `json:"signature"` // hex: corresponds to the administrator
}

// Transfer - the unpacked Transfer structure
type Transfer struct {
	From      *account.Account  `json:"from"`      // base58: source of the funds
	To        *account.Account  `json:"to"`        // base58: the "destination" account
	Amount    uint64            `json:"amount"`    // unsigned 0..N
	Signature account.Signature `json:"signature"` // hex: corresponds to from
}

// Approval - the unpacked Approval structure
// moves the funds immediately and records an allowance
// for the (from, to) pair
type Approval struct {
	From      *account.Account  `json:"from"`      // base58: owner granting the allowance
	To        *account.Account  `json:"to"`        // base58: spender receiving the allowance
	Amount    uint64            `json:"amount"`    // unsigned 0..N
	Signature account.Signature `json:"signature"` // hex: corresponds to from
}

// DelegatedTransfer - the unpacked delegated transfer structure
// consumes a previously recorded allowance for the (from, to) pair
type DelegatedTransfer struct {
	From      *account.Account  `json:"from"`      // base58: source of the funds
	To        *account.Account  `json:"to"`        // base58: spender and destination
	Amount    uint64            `json:"amount"`    // unsigned 0..N
	Signature account.Signature `json:"signature"` // hex: corresponds to to
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *BalanceSet, BalanceSet:
		return "BalanceSet", true

	case *Transfer, Transfer:
		return "Transfer", true

	case *Approval, Approval:
		return "Approval", true

	case *DelegatedTransfer, DelegatedTransfer:
		return "DelegatedTransfer", true

	default:
		return "*unknown*", false
	}
}

// MakeLink - create the record id for a packed record
func (record Packed) MakeLink() Link {
	return NewLink(record)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
