// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/chain"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

// GenesisAllocation - one initial balance from the configuration
type GenesisAllocation struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  uint64 `gluamapper:"amount" json:"amount"`
}

// Genesis - apply the configured genesis allocation
//
// a fresh database is stamped with the chain name, the total supply is
// written once and the initial balances are seeded; a database that was
// created for a different chain is refused
func Genesis(chainName string, allocations []GenesisAllocation) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if !chain.Valid(chainName) {
		return fault.InvalidChain
	}
	testnet := chain.Bitmark != chainName

	log := globalData.log

	storedChain := globalData.supply.Get(chainKey)
	if nil != storedChain {
		if !bytes.Equal(storedChain, []byte(chainName)) {
			log.Criticalf("database is for chain: %q  configured: %q", storedChain, chainName)
			return fault.InvalidChain
		}
		// already allocated
		return nil
	}

	// validate the whole allocation before writing anything
	totalSupply := uint64(0)
	accounts := make([]*account.Account, len(allocations))
	seen := make(map[string]struct{}, len(allocations))
	for i, allocation := range allocations {
		acc, err := account.AccountFromBase58(allocation.Account)
		if nil != err {
			return err
		}
		if acc.IsTesting() != testnet {
			return fault.WrongNetworkForPublicKey
		}
		if 0 == allocation.Amount {
			return fault.InvalidGenesisAllocation
		}
		if _, ok := seen[allocation.Account]; ok {
			return fault.InvalidGenesisAllocation
		}
		seen[allocation.Account] = struct{}{}
		if totalSupply+allocation.Amount < totalSupply {
			return fault.InvalidGenesisAllocation
		}
		totalSupply += allocation.Amount
		accounts[i] = acc
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Put(globalData.supply, chainKey, []byte(chainName))
	trx.PutN(globalData.supply, supplyKey, totalSupply)
	for i, allocation := range allocations {
		trx.PutN(globalData.balances, accounts[i].Bytes(), allocation.Amount)
	}

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	log.Infof("genesis: chain: %s  accounts: %d  total supply: %d", chainName, len(allocations), totalSupply)
	for i, allocation := range allocations {
		globalData.sink.BalanceSet(accounts[i], allocation.Amount)
	}

	return nil
}
