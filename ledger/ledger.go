// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// allowance entries are keyed by owner ++ spender, positional
func approvalKey(owner *account.Account, spender *account.Account) []byte {
	ownerBytes := owner.Bytes()
	key := make([]byte, 0, len(ownerBytes)+len(spender.Bytes()))
	key = append(key, ownerBytes...)
	return append(key, spender.Bytes()...)
}

// TotalSupply - the stored total issuance, zero if unset
func (l *ledgerData) TotalSupply() uint64 {
	l.RLock()
	defer l.RUnlock()
	n, _ := l.supply.GetN(supplyKey)
	return n
}

// Balance - the stored balance of an account, zero if unset
func (l *ledgerData) Balance(owner *account.Account) uint64 {
	l.RLock()
	defer l.RUnlock()
	n, _ := l.balances.GetN(owner.Bytes())
	return n
}

// Allowance - the stored allowance for an (owner, spender) pair, zero if unset
func (l *ledgerData) Allowance(owner *account.Account, spender *account.Account) uint64 {
	l.RLock()
	defer l.RUnlock()
	n, _ := l.approvals.GetN(approvalKey(owner, spender))
	return n
}

// SetBalance - administrative balance override
//
// unconditional overwrite, creates the entry if absent, never touches
// the total supply
func (l *ledgerData) SetBalance(balanceSet *tokenrecord.BalanceSet, packed tokenrecord.Packed) (tokenrecord.Link, error) {
	link := packed.MakeLink()

	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return link, err
	}

	trx.PutN(l.balances, balanceSet.Account.Bytes(), balanceSet.Amount)
	trx.Put(l.records, link.Bytes(), packed)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return link, err
	}

	l.log.Infof("set balance: %s  amount: %d  record: %s", balanceSet.Account, balanceSet.Amount, link)
	l.sink.BalanceSet(balanceSet.Account, balanceSet.Amount)
	return link, nil
}

// Transfer - move an amount between two accounts
//
// the destination entry is created as a zero-touch side effect and
// persists even when a later precondition fails
func (l *ledgerData) Transfer(transfer *tokenrecord.Transfer, packed tokenrecord.Packed) (tokenrecord.Link, error) {
	link := packed.MakeLink()

	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return link, err
	}

	fromKey := transfer.From.Bytes()
	toKey := transfer.To.Bytes()

	// an account that has never been written cannot be a source
	fromBalance, ok := trx.GetN(l.balances, fromKey)
	if !ok {
		trx.Abort()
		return link, fault.InsufficientFunds
	}

	toBalance, ok := trx.GetN(l.balances, toKey)
	if !ok {
		// zero-touch the destination
		trx.PutN(l.balances, toKey, 0)
	}

	if fromBalance < transfer.Amount {
		return link, commitTouch(trx, fault.InsufficientFunds)
	}

	// the credit must not wrap
	if toBalance+transfer.Amount < toBalance {
		return link, commitTouch(trx, fault.BalanceOverflow)
	}

	trx.PutN(l.balances, fromKey, fromBalance-transfer.Amount)
	trx.PutN(l.balances, toKey, toBalance+transfer.Amount)
	trx.Put(l.records, link.Bytes(), packed)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return link, err
	}

	l.log.Infof("transfer: from: %s  to: %s  amount: %d  record: %s", transfer.From, transfer.To, transfer.Amount, link)
	l.sink.Transfer(transfer.From, transfer.To, transfer.Amount)
	return link, nil
}

// Approve - move an amount and record an allowance
//
// the funds move immediately exactly like a transfer and the allowance
// for the (from, to) pair is overwritten, not accumulated
func (l *ledgerData) Approve(approval *tokenrecord.Approval, packed tokenrecord.Packed) (tokenrecord.Link, error) {
	link := packed.MakeLink()

	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return link, err
	}

	fromKey := approval.From.Bytes()
	toKey := approval.To.Bytes()

	fromBalance, ok := trx.GetN(l.balances, fromKey)
	if !ok {
		trx.Abort()
		return link, fault.InsufficientFunds
	}

	toBalance, ok := trx.GetN(l.balances, toKey)
	if !ok {
		// zero-touch the spender
		trx.PutN(l.balances, toKey, 0)
	}

	// sufficiency is checked at grant time, not at spend time
	if fromBalance < approval.Amount {
		return link, commitTouch(trx, fault.InsufficientFunds)
	}

	if toBalance+approval.Amount < toBalance {
		return link, commitTouch(trx, fault.BalanceOverflow)
	}

	trx.PutN(l.balances, fromKey, fromBalance-approval.Amount)
	trx.PutN(l.balances, toKey, toBalance+approval.Amount)
	trx.PutN(l.approvals, approvalKey(approval.From, approval.To), approval.Amount)
	trx.Put(l.records, link.Bytes(), packed)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return link, err
	}

	l.log.Infof("approve: from: %s  to: %s  amount: %d  record: %s", approval.From, approval.To, approval.Amount, link)
	l.sink.Approval(approval.From, approval.To, approval.Amount)
	return link, nil
}

// TransferFrom - delegated transfer consuming an allowance
//
// the allowance entry is reduced by the amount and kept even at zero
func (l *ledgerData) TransferFrom(delegated *tokenrecord.DelegatedTransfer, packed tokenrecord.Packed) (tokenrecord.Link, error) {
	link := packed.MakeLink()

	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return link, err
	}

	fromKey := delegated.From.Bytes()
	toKey := delegated.To.Bytes()

	fromBalance, ok := trx.GetN(l.balances, fromKey)
	if !ok {
		trx.Abort()
		return link, fault.InsufficientFunds
	}

	toBalance, ok := trx.GetN(l.balances, toKey)
	if !ok {
		// zero-touch the destination; the source already has an
		// entry so its touch is a no-op
		trx.PutN(l.balances, toKey, 0)
	}

	if fromBalance < delegated.Amount {
		return link, commitTouch(trx, fault.InsufficientFunds)
	}

	allowance, ok := trx.GetN(l.approvals, approvalKey(delegated.From, delegated.To))
	if !ok {
		return link, commitTouch(trx, fault.ApprovalNotGranted)
	}
	if allowance < delegated.Amount {
		return link, commitTouch(trx, fault.ApprovalNotGranted)
	}

	if toBalance+delegated.Amount < toBalance {
		return link, commitTouch(trx, fault.BalanceOverflow)
	}

	trx.PutN(l.balances, fromKey, fromBalance-delegated.Amount)
	trx.PutN(l.balances, toKey, toBalance+delegated.Amount)
	trx.PutN(l.approvals, approvalKey(delegated.From, delegated.To), allowance-delegated.Amount)
	trx.Put(l.records, link.Bytes(), packed)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return link, err
	}

	l.log.Infof("transfer from: from: %s  to: %s  amount: %d  record: %s", delegated.From, delegated.To, delegated.Amount, link)
	l.sink.TransferFrom(delegated.From, delegated.To, delegated.Amount)
	return link, nil
}

// commit any zero-touch writes then report the precondition failure
//
// a failed commit aborts to drop the never-persisted values from the
// write-through cache
func commitTouch(trx storage.Transaction, failure error) error {
	err := trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}
	return failure
}
