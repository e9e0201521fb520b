// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// Ledger - the operations exposed to the dispatch layer
type Ledger interface {
	TotalSupply() uint64
	Balance(owner *account.Account) uint64
	Allowance(owner *account.Account, spender *account.Account) uint64
	Administrator() *account.Account
	SetBalance(balanceSet *tokenrecord.BalanceSet, packed tokenrecord.Packed) (tokenrecord.Link, error)
	Transfer(transfer *tokenrecord.Transfer, packed tokenrecord.Packed) (tokenrecord.Link, error)
	Approve(approval *tokenrecord.Approval, packed tokenrecord.Packed) (tokenrecord.Link, error)
	TransferFrom(delegated *tokenrecord.DelegatedTransfer, packed tokenrecord.Packed) (tokenrecord.Link, error)
}

// key for the total supply entry in the supply pool
var supplyKey = []byte("TOTAL")

// key for the chain guard entry in the supply pool
var chainKey = []byte("CHAIN")

// globals for this module
type ledgerData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	balances  *storage.PoolHandle
	approvals *storage.PoolHandle
	records   *storage.PoolHandle
	supply    *storage.PoolHandle

	sink          EventSink
	administrator *account.Account

	// set once during initialise
	initialised bool
}

// global data
var globalData ledgerData

// Initialise - setup the ledger singleton
//
// storage must already be initialised; a nil sink discards all events
func Initialise(administrator *account.Account, sink EventSink) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	if nil == sink {
		sink = NoSink
	}

	globalData.balances = storage.Pool.Balances
	globalData.approvals = storage.Pool.Approvals
	globalData.records = storage.Pool.Records
	globalData.supply = storage.Pool.Supply
	globalData.sink = sink
	globalData.administrator = administrator

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background processes
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.balances = nil
	globalData.approvals = nil
	globalData.records = nil
	globalData.supply = nil
	globalData.sink = nil
	globalData.administrator = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Get - return the global ledger handle
func Get() Ledger {
	if !globalData.initialised {
		return nil
	}
	return &globalData
}

// Administrator - the account permitted to set balances
func (l *ledgerData) Administrator() *account.Account {
	l.RLock()
	defer l.RUnlock()
	return l.administrator
}
