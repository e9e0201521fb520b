// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokend/fault"
)

// LinkLength - number of bytes in a link
const LinkLength = 32

// Link - the id of a record
// stored as a SHA3-256 digest of the packed record
// represented as hex text for JSON encoding
type Link [LinkLength]byte

// NewLink - create a link from a byte slice
func NewLink(record []byte) Link {
	return sha3.Sum256(record)
}

// Bytes - convert a binary link to byte slice
func (link Link) Bytes() []byte {
	return link[:]
}

// String - convert a binary link to hex string for use by the fmt package (for %s)
func (link Link) String() string {
	return hex.EncodeToString(link[:])
}

// GoString - convert a binary link to hex string for use by the fmt package (for %#v)
func (link Link) GoString() string {
	return "<link:" + hex.EncodeToString(link[:]) + ">"
}

// MarshalText - convert link to hex text
func (link Link) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(LinkLength))
	hex.Encode(buffer, link[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a link
func (link *Link) UnmarshalText(s []byte) error {
	if LinkLength != hex.DecodedLen(len(s)) {
		return fault.NotLink
	}
	byteCount, err := hex.Decode(link[:], s)
	if nil != err {
		return err
	}
	if LinkLength != byteCount {
		return fault.NotLink
	}
	return nil
}

// LinkFromBytes - convert and validate a binary byte slice to a link
func LinkFromBytes(link *Link, buffer []byte) error {
	if LinkLength != len(buffer) {
		return fault.NotLink
	}
	copy(link[:], buffer)
	return nil
}

// LinkFromHexString - convert and validate a hex string to a link
func LinkFromHexString(link *Link, s string) error {
	return link.UnmarshalText([]byte(s))
}
