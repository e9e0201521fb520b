// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/rpc/fixtures"
	"github.com/bitmark-inc/tokend/rpc/mocks"
	"github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// sink that counts events for verification
type countingSink struct {
	commands []string
}

func (s *countingSink) TotalSupply(uint64)                  { s.commands = append(s.commands, "totalSupply") }
func (s *countingSink) BalanceOf(*account.Account, uint64)  { s.commands = append(s.commands, "balanceOf") }
func (s *countingSink) BalanceSet(*account.Account, uint64) { s.commands = append(s.commands, "balanceSet") }
func (s *countingSink) Transfer(_, _ *account.Account, _ uint64) {
	s.commands = append(s.commands, "transfer")
}
func (s *countingSink) Approval(_, _ *account.Account, _ uint64) {
	s.commands = append(s.commands, "approval")
}
func (s *countingSink) TransferFrom(_, _ *account.Account, _ uint64) {
	s.commands = append(s.commands, "transferFrom")
}

// pack the unsigned message, sign it, then pack again with the signature
func signedPack(t *testing.T, record tokenrecord.Record, signer *account.Account, key ed25519.PrivateKey) tokenrecord.Packed {
	t.Helper()

	unsigned, _ := record.Pack(signer)
	signature := ed25519.Sign(key, unsigned)

	switch r := record.(type) {
	case *tokenrecord.BalanceSet:
		r.Signature = signature
	case *tokenrecord.Transfer:
		r.Signature = signature
	case *tokenrecord.Approval:
		r.Signature = signature
	case *tokenrecord.DelegatedTransfer:
		r.Signature = signature
	default:
		t.Fatalf("unsupported record type: %T", record)
	}

	packed, err := record.Pack(signer)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

func newService(l ledger.Ledger, sink ledger.EventSink, readOnly bool) *token.Token {
	return token.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		func() bool { return true },
		l,
		sink,
		readOnly,
	)
}

func TestTotalSupply(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().TotalSupply().Return(uint64(1000)).Times(1)

	sink := &countingSink{}
	tok := newService(l, sink, false)

	var reply token.TotalSupplyReply
	err := tok.TotalSupply(&token.TotalSupplyArguments{}, &reply)
	assert.Nil(t, err, "wrong TotalSupply")
	assert.Equal(t, uint64(1000), reply.Supply, "wrong supply")
	assert.Equal(t, []string{"totalSupply"}, sink.commands, "wrong events")
}

func TestBalanceOf(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	owner := fixtures.TestAccount(fixtures.SenderPublicKey)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Balance(owner).Return(uint64(700)).Times(1)

	sink := &countingSink{}
	tok := newService(l, sink, false)

	var reply token.BalanceOfReply
	err := tok.BalanceOf(&token.BalanceOfArguments{Owner: owner}, &reply)
	assert.Nil(t, err, "wrong BalanceOf")
	assert.Equal(t, uint64(700), reply.Balance, "wrong balance")
	assert.Equal(t, []string{"balanceOf"}, sink.commands, "wrong events")
}

func TestBalanceOfWhenMissingOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tok := newService(mocks.NewMockLedger(ctl), nil, false)

	var reply token.BalanceOfReply
	err := tok.BalanceOf(&token.BalanceOfArguments{}, &reply)
	assert.Equal(t, fault.InvalidItem, err, "wrong error")
}

func TestBalanceOfWhenWrongNetwork(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	liveOwner := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      false,
			PublicKey: fixtures.SenderPublicKey,
		},
	}

	tok := newService(mocks.NewMockLedger(ctl), nil, false)

	var reply token.BalanceOfReply
	err := tok.BalanceOf(&token.BalanceOfArguments{Owner: liveOwner}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong error")
}

func TestAllowance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	owner := fixtures.TestAccount(fixtures.SenderPublicKey)
	spender := fixtures.TestAccount(fixtures.ReceiverPublicKey)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Allowance(owner, spender).Return(uint64(50)).Times(1)

	tok := newService(l, nil, false)

	var reply token.AllowanceReply
	err := tok.Allowance(&token.AllowanceArguments{Owner: owner, Spender: spender}, &reply)
	assert.Nil(t, err, "wrong Allowance")
	assert.Equal(t, uint64(50), reply.Allowance, "wrong allowance")
}

func TestSetBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	administrator := fixtures.TestAccount(fixtures.AdministratorPublicKey)
	owner := fixtures.TestAccount(fixtures.SenderPublicKey)

	arguments := &tokenrecord.BalanceSet{
		Account: owner,
		Amount:  1000,
	}
	packed := signedPack(t, arguments, administrator, fixtures.AdministratorPrivate)
	link := packed.MakeLink()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Administrator().Return(administrator).Times(1)
	l.EXPECT().SetBalance(arguments, packed).Return(link, nil).Times(1)

	tok := newService(l, nil, false)

	var reply token.SetBalanceReply
	err := tok.SetBalance(arguments, &reply)
	assert.Nil(t, err, "wrong SetBalance")
	assert.Equal(t, link, reply.TxId, "wrong txId")
}

func TestSetBalanceWhenNotAdministrator(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	administrator := fixtures.TestAccount(fixtures.AdministratorPublicKey)
	owner := fixtures.TestAccount(fixtures.SenderPublicKey)

	// signed by the owner, not by the administrator
	arguments := &tokenrecord.BalanceSet{
		Account: owner,
		Amount:  1000,
	}
	_ = signedPack(t, arguments, owner, fixtures.SenderPrivate)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Administrator().Return(administrator).Times(1)

	tok := newService(l, nil, false)

	var reply token.SetBalanceReply
	err := tok.SetBalance(arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")
}

func TestTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	from := fixtures.TestAccount(fixtures.SenderPublicKey)
	to := fixtures.TestAccount(fixtures.ReceiverPublicKey)

	arguments := &tokenrecord.Transfer{
		From:   from,
		To:     to,
		Amount: 100,
	}
	packed := signedPack(t, arguments, from, fixtures.SenderPrivate)
	link := packed.MakeLink()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Transfer(arguments, packed).Return(link, nil).Times(1)

	tok := newService(l, nil, false)

	var reply token.TransferReply
	err := tok.Transfer(arguments, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, link, reply.TxId, "wrong txId")
}

func TestTransferWhenBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	from := fixtures.TestAccount(fixtures.SenderPublicKey)
	to := fixtures.TestAccount(fixtures.ReceiverPublicKey)

	// signed by the receiver instead of the sender
	arguments := &tokenrecord.Transfer{
		From:   from,
		To:     to,
		Amount: 100,
	}
	_ = signedPack(t, arguments, to, fixtures.ReceiverPrivate)

	tok := newService(mocks.NewMockLedger(ctl), nil, false)

	var reply token.TransferReply
	err := tok.Transfer(arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")
}

func TestTransferWhenReadOnly(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	from := fixtures.TestAccount(fixtures.SenderPublicKey)
	to := fixtures.TestAccount(fixtures.ReceiverPublicKey)

	arguments := &tokenrecord.Transfer{
		From:   from,
		To:     to,
		Amount: 100,
	}
	_ = signedPack(t, arguments, from, fixtures.SenderPrivate)

	tok := newService(mocks.NewMockLedger(ctl), nil, true)

	var reply token.TransferReply
	err := tok.Transfer(arguments, &reply)
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "wrong error")
}

func TestApprove(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	from := fixtures.TestAccount(fixtures.SenderPublicKey)
	to := fixtures.TestAccount(fixtures.ReceiverPublicKey)

	arguments := &tokenrecord.Approval{
		From:   from,
		To:     to,
		Amount: 60,
	}
	packed := signedPack(t, arguments, from, fixtures.SenderPrivate)
	link := packed.MakeLink()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Approve(arguments, packed).Return(link, nil).Times(1)

	tok := newService(l, nil, false)

	var reply token.ApproveReply
	err := tok.Approve(arguments, &reply)
	assert.Nil(t, err, "wrong Approve")
	assert.Equal(t, link, reply.TxId, "wrong txId")
}

func TestTransferFrom(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	from := fixtures.TestAccount(fixtures.SenderPublicKey)
	to := fixtures.TestAccount(fixtures.ReceiverPublicKey)

	// the spender signs a delegated transfer
	arguments := &tokenrecord.DelegatedTransfer{
		From:   from,
		To:     to,
		Amount: 40,
	}
	packed := signedPack(t, arguments, to, fixtures.ReceiverPrivate)
	link := packed.MakeLink()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().TransferFrom(arguments, packed).Return(link, nil).Times(1)

	tok := newService(l, nil, false)

	var reply token.TransferFromReply
	err := tok.TransferFrom(arguments, &reply)
	assert.Nil(t, err, "wrong TransferFrom")
	assert.Equal(t, link, reply.TxId, "wrong txId")
}

func TestTransferFromWhenLedgerRefuses(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	from := fixtures.TestAccount(fixtures.SenderPublicKey)
	to := fixtures.TestAccount(fixtures.ReceiverPublicKey)

	arguments := &tokenrecord.DelegatedTransfer{
		From:   from,
		To:     to,
		Amount: 40,
	}
	packed := signedPack(t, arguments, to, fixtures.ReceiverPrivate)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().TransferFrom(arguments, packed).Return(packed.MakeLink(), fault.ApprovalNotGranted).Times(1)

	tok := newService(l, nil, false)

	var reply token.TransferFromReply
	err := tok.TransferFrom(arguments, &reply)
	assert.Equal(t, fault.ApprovalNotGranted, err, "wrong error")
}
