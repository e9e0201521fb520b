// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. amount    = big endian uint64 (8 bytes)
// 4. record id = record digest as 32 byte SHA3-256(data)
// 5. owner     = token account (prefixed 32 byte public key)
//
// Balances:
//
//   B ++ owner                 - balance of an account
//                                data: amount
//
// Allowances:
//
//   A ++ owner ++ spender      - allowance granted by owner to spender
//                                data: amount
//
// Records:
//
//   T ++ record id             - executed signed call records
//                                data: packed record data
//
// Supply:
//
//   S ++ "TOTAL"               - total issuance of the token
//                                data: amount
//   S ++ "CHAIN"               - chain the database was created for
//                                data: chain name
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
