// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/tokend/account"
)

// EventSink - receiver for ledger events
//
// one call per successful mutating operation; the query events are
// emitted by the RPC dispatch layer using the same sink
type EventSink interface {
	TotalSupply(value uint64)
	BalanceOf(who *account.Account, balance uint64)
	BalanceSet(who *account.Account, balance uint64)
	Transfer(from *account.Account, to *account.Account, value uint64)
	Approval(from *account.Account, to *account.Account, value uint64)
	TransferFrom(from *account.Account, to *account.Account, value uint64)
}

// NoSink - sink that discards all events
//
// used when event publishing is not configured
var NoSink EventSink = noSink{}

type noSink struct{}

func (noSink) TotalSupply(uint64)                                      {}
func (noSink) BalanceOf(*account.Account, uint64)                      {}
func (noSink) BalanceSet(*account.Account, uint64)                     {}
func (noSink) Transfer(*account.Account, *account.Account, uint64)     {}
func (noSink) Approval(*account.Account, *account.Account, uint64)     {}
func (noSink) TransferFrom(*account.Account, *account.Account, uint64) {}
