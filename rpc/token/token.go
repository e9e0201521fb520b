// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for the RPC
type Token struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Ldgr           ledger.Ledger
	Sink           ledger.EventSink
	ReadOnly       bool
}

// New - create the token service
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	ldgr ledger.Ledger,
	sink ledger.EventSink,
	readOnly bool,
) *Token {
	if nil == sink {
		sink = ledger.NoSink
	}
	return &Token{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitToken, rateBurstToken),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Ldgr:           ldgr,
		Sink:           sink,
		ReadOnly:       readOnly,
	}
}

// Queries
// -------

// TotalSupplyArguments - empty arguments for the supply query
type TotalSupplyArguments struct{}

// TotalSupplyReply - result of the supply query
type TotalSupplyReply struct {
	Supply uint64 `json:"supply,string"`
}

// TotalSupply - the recorded total issuance
func (token *Token) TotalSupply(_ *TotalSupplyArguments, reply *TotalSupplyReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	supply := token.Ldgr.TotalSupply()
	reply.Supply = supply

	token.Sink.TotalSupply(supply)
	return nil
}

// BalanceOfArguments - the account to query
type BalanceOfArguments struct {
	Owner *account.Account `json:"owner"` // base58
}

// BalanceOfReply - result of the balance query
type BalanceOfReply struct {
	Balance uint64 `json:"balance,string"`
}

// BalanceOf - the balance of a single account, zero if never written
func (token *Token) BalanceOf(arguments *BalanceOfArguments, reply *BalanceOfReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.InvalidItem
	}
	if arguments.Owner.IsTesting() != token.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	balance := token.Ldgr.Balance(arguments.Owner)
	reply.Balance = balance

	token.Sink.BalanceOf(arguments.Owner, balance)
	return nil
}

// AllowanceArguments - the (owner, spender) pair to query
type AllowanceArguments struct {
	Owner   *account.Account `json:"owner"`   // base58
	Spender *account.Account `json:"spender"` // base58
}

// AllowanceReply - result of the allowance query
type AllowanceReply struct {
	Allowance uint64 `json:"allowance,string"`
}

// Allowance - the remaining allowance for a pair, zero if never granted
func (token *Token) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner || nil == arguments.Spender {
		return fault.InvalidItem
	}
	if arguments.Owner.IsTesting() != token.IsTestingChain() ||
		arguments.Spender.IsTesting() != token.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	reply.Allowance = token.Ldgr.Allowance(arguments.Owner, arguments.Spender)
	return nil
}

// Mutations
// ---------

// SetBalanceReply - result from the balance override RPC
type SetBalanceReply struct {
	TxId tokenrecord.Link `json:"txId"`
}

// SetBalance - administrative balance override
//
// the signature must correspond to the configured administrator account
func (token *Token) SetBalance(arguments *tokenrecord.BalanceSet, reply *SetBalanceReply) error {
	if nil == arguments || nil == arguments.Account {
		return fault.InvalidItem
	}

	if err := token.mutationChecks(arguments.Account); nil != err {
		return err
	}

	administrator := token.Ldgr.Administrator()
	if nil == administrator {
		return fault.NotInitialised
	}
	if administrator.IsTesting() != token.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	token.Log.Infof("Token.SetBalance: %+v", arguments)

	packed, err := arguments.Pack(administrator)
	if nil != err {
		return err
	}

	link, err := token.Ldgr.SetBalance(arguments, packed)
	if nil != err {
		return err
	}

	reply.TxId = link
	return nil
}

// TransferReply - result from the transfer RPC
type TransferReply struct {
	TxId tokenrecord.Link `json:"txId"`
}

// Transfer - move an amount between two accounts
//
// the signature must correspond to the "from" account
func (token *Token) Transfer(arguments *tokenrecord.Transfer, reply *TransferReply) error {
	if nil == arguments || nil == arguments.From || nil == arguments.To {
		return fault.InvalidItem
	}

	if err := token.mutationChecks(arguments.From, arguments.To); nil != err {
		return err
	}

	token.Log.Infof("Token.Transfer: %+v", arguments)

	packed, err := arguments.Pack(arguments.From)
	if nil != err {
		return err
	}

	link, err := token.Ldgr.Transfer(arguments, packed)
	if nil != err {
		return err
	}

	reply.TxId = link
	return nil
}

// ApproveReply - result from the approve RPC
type ApproveReply struct {
	TxId tokenrecord.Link `json:"txId"`
}

// Approve - move an amount and grant an allowance to the receiver
//
// the signature must correspond to the "from" account
func (token *Token) Approve(arguments *tokenrecord.Approval, reply *ApproveReply) error {
	if nil == arguments || nil == arguments.From || nil == arguments.To {
		return fault.InvalidItem
	}

	if err := token.mutationChecks(arguments.From, arguments.To); nil != err {
		return err
	}

	token.Log.Infof("Token.Approve: %+v", arguments)

	packed, err := arguments.Pack(arguments.From)
	if nil != err {
		return err
	}

	link, err := token.Ldgr.Approve(arguments, packed)
	if nil != err {
		return err
	}

	reply.TxId = link
	return nil
}

// TransferFromReply - result from the delegated transfer RPC
type TransferFromReply struct {
	TxId tokenrecord.Link `json:"txId"`
}

// TransferFrom - delegated transfer consuming a recorded allowance
//
// the signature must correspond to the "to" account, the spender
func (token *Token) TransferFrom(arguments *tokenrecord.DelegatedTransfer, reply *TransferFromReply) error {
	if nil == arguments || nil == arguments.From || nil == arguments.To {
		return fault.InvalidItem
	}

	if err := token.mutationChecks(arguments.From, arguments.To); nil != err {
		return err
	}

	token.Log.Infof("Token.TransferFrom: %+v", arguments)

	packed, err := arguments.Pack(arguments.To)
	if nil != err {
		return err
	}

	link, err := token.Ldgr.TransferFrom(arguments, packed)
	if nil != err {
		return err
	}

	reply.TxId = link
	return nil
}

// common preconditions for all mutating calls
func (token *Token) mutationChecks(accounts ...*account.Account) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}
	if token.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if !token.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}
	for _, acc := range accounts {
		if acc.IsTesting() != token.IsTestingChain() {
			return fault.WrongNetworkForPublicKey
		}
	}
	return nil
}
