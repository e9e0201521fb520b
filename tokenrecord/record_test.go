// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord_test

import (
	"bytes"
	"reflect"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/tokenrecord"
	"github.com/bitmark-inc/tokend/util"
)

// deterministic key pairs for repeatable packed bytes
var (
	aliceSeed = []byte{
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	}
	bobSeed = []byte{
		0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02,
		0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02,
		0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02,
		0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02,
	}
)

type tester struct {
	account    *account.Account
	privateKey ed25519.PrivateKey
}

func makeTester(t *testing.T, seed []byte) *tester {
	t.Helper()
	priv := ed25519.NewKeyFromSeed(seed)
	return &tester{
		account: &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      true,
				PublicKey: priv.Public().(ed25519.PublicKey),
			},
		},
		privateKey: priv,
	}
}

// build the expected unsigned message the same way the packer does:
// Varint64(tag) then length prefixed fields in struct order
func expectedMessage(tag tokenrecord.TagType, accounts []*account.Account, amount uint64) []byte {
	message := util.ToVarint64(uint64(tag))
	for _, acc := range accounts {
		data := acc.Bytes()
		message = append(message, util.ToVarint64(uint64(len(data)))...)
		message = append(message, data...)
	}
	return append(message, util.ToVarint64(amount)...)
}

func TestPackBalanceSet(t *testing.T) {
	admin := makeTester(t, aliceSeed)
	holder := makeTester(t, bobSeed)

	r := tokenrecord.BalanceSet{
		Account: holder.account,
		Amount:  1000,
	}

	expected := expectedMessage(tokenrecord.BalanceSetTag, []*account.Account{holder.account}, r.Amount)

	// sign with the administrator key
	signature := ed25519.Sign(admin.privateKey, expected)
	r.Signature = signature
	expected = append(expected, util.ToVarint64(uint64(len(signature)))...)
	expected = append(expected, signature...)

	packed, err := r.Pack(admin.account)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(expected, packed) {
		t.Errorf("packed: %x", packed)
		t.Errorf("%s", util.FormatBytes("expected", expected))
	}
	if tokenrecord.BalanceSetTag != packed.Type() {
		t.Errorf("record type: %d  expected: %d", packed.Type(), tokenrecord.BalanceSetTag)
	}

	// unpack and check fields
	unpacked, n, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("unpacked: %d bytes  expected: %d", n, len(packed))
	}
	balanceSet, ok := unpacked.(*tokenrecord.BalanceSet)
	if !ok {
		t.Fatalf("unpacked type: %T  expected: *tokenrecord.BalanceSet", unpacked)
	}
	if !reflect.DeepEqual(&r, balanceSet) {
		t.Errorf("unpacked: %v  expected: %v", balanceSet, &r)
	}
}

func TestPackTransfer(t *testing.T) {
	alice := makeTester(t, aliceSeed)
	bob := makeTester(t, bobSeed)

	r := tokenrecord.Transfer{
		From:   alice.account,
		To:     bob.account,
		Amount: 250,
	}

	expected := expectedMessage(tokenrecord.TransferTag, []*account.Account{alice.account, bob.account}, r.Amount)

	signature := ed25519.Sign(alice.privateKey, expected)
	r.Signature = signature
	expected = append(expected, util.ToVarint64(uint64(len(signature)))...)
	expected = append(expected, signature...)

	packed, err := r.Pack(alice.account)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(expected, packed) {
		t.Errorf("packed: %x", packed)
		t.Errorf("%s", util.FormatBytes("expected", expected))
	}

	unpacked, n, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("unpacked: %d bytes  expected: %d", n, len(packed))
	}
	transfer, ok := unpacked.(*tokenrecord.Transfer)
	if !ok {
		t.Fatalf("unpacked type: %T  expected: *tokenrecord.Transfer", unpacked)
	}
	if !reflect.DeepEqual(&r, transfer) {
		t.Errorf("unpacked: %v  expected: %v", transfer, &r)
	}

	// the link is the digest of the whole packed record
	link := packed.MakeLink()
	if link != tokenrecord.NewLink(expected) {
		t.Error("link does not match digest of packed bytes")
	}
}

func TestPackApproval(t *testing.T) {
	alice := makeTester(t, aliceSeed)
	bob := makeTester(t, bobSeed)

	r := tokenrecord.Approval{
		From:   alice.account,
		To:     bob.account,
		Amount: 90,
	}

	message := expectedMessage(tokenrecord.ApprovalTag, []*account.Account{alice.account, bob.account}, r.Amount)
	r.Signature = ed25519.Sign(alice.privateKey, message)

	packed, err := r.Pack(alice.account)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, _, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	approval, ok := unpacked.(*tokenrecord.Approval)
	if !ok {
		t.Fatalf("unpacked type: %T  expected: *tokenrecord.Approval", unpacked)
	}
	if !reflect.DeepEqual(&r, approval) {
		t.Errorf("unpacked: %v  expected: %v", approval, &r)
	}
}

func TestPackDelegatedTransfer(t *testing.T) {
	alice := makeTester(t, aliceSeed)
	bob := makeTester(t, bobSeed)

	r := tokenrecord.DelegatedTransfer{
		From:   alice.account,
		To:     bob.account,
		Amount: 42,
	}

	// a delegated transfer is signed by the spender
	message := expectedMessage(tokenrecord.DelegatedTransferTag, []*account.Account{alice.account, bob.account}, r.Amount)
	r.Signature = ed25519.Sign(bob.privateKey, message)

	packed, err := r.Pack(bob.account)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, _, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	delegated, ok := unpacked.(*tokenrecord.DelegatedTransfer)
	if !ok {
		t.Fatalf("unpacked type: %T  expected: *tokenrecord.DelegatedTransfer", unpacked)
	}
	if !reflect.DeepEqual(&r, delegated) {
		t.Errorf("unpacked: %v  expected: %v", delegated, &r)
	}
}

func TestPackWrongSigner(t *testing.T) {
	alice := makeTester(t, aliceSeed)
	bob := makeTester(t, bobSeed)

	r := tokenrecord.Transfer{
		From:   alice.account,
		To:     bob.account,
		Amount: 7,
	}

	message := expectedMessage(tokenrecord.TransferTag, []*account.Account{alice.account, bob.account}, r.Amount)

	// signed by bob, but a transfer must be signed by from
	r.Signature = ed25519.Sign(bob.privateKey, message)

	unsigned, err := r.Pack(alice.account)
	if fault.InvalidSignature != err {
		t.Fatalf("error: %v  expected: %v", err, fault.InvalidSignature)
	}
	// pack returns the unsigned message for diagnostics
	if !bytes.Equal(message, unsigned) {
		t.Errorf("unsigned: %x  expected: %x", unsigned, message)
	}
}

func TestPackMissingAccount(t *testing.T) {
	alice := makeTester(t, aliceSeed)

	r := tokenrecord.Transfer{
		From:   alice.account,
		To:     nil,
		Amount: 7,
	}

	_, err := r.Pack(alice.account)
	if fault.InvalidAccount != err {
		t.Fatalf("error: %v  expected: %v", err, fault.InvalidAccount)
	}
}

func TestUnpackWrongNetwork(t *testing.T) {
	alice := makeTester(t, aliceSeed)
	bob := makeTester(t, bobSeed)

	r := tokenrecord.Transfer{
		From:   alice.account,
		To:     bob.account,
		Amount: 11,
	}

	message := expectedMessage(tokenrecord.TransferTag, []*account.Account{alice.account, bob.account}, r.Amount)
	r.Signature = ed25519.Sign(alice.privateKey, message)

	packed, err := r.Pack(alice.account)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// test accounts must not unpack on the live network
	_, _, err = packed.Unpack(false)
	if fault.WrongNetworkForPublicKey != err {
		t.Fatalf("error: %v  expected: %v", err, fault.WrongNetworkForPublicKey)
	}
}

func TestUnpackTruncated(t *testing.T) {
	alice := makeTester(t, aliceSeed)
	bob := makeTester(t, bobSeed)

	r := tokenrecord.Transfer{
		From:   alice.account,
		To:     bob.account,
		Amount: 11,
	}

	message := expectedMessage(tokenrecord.TransferTag, []*account.Account{alice.account, bob.account}, r.Amount)
	r.Signature = ed25519.Sign(alice.privateKey, message)

	packed, err := r.Pack(alice.account)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	for i := 1; i < len(packed); i += 7 {
		// fresh buffer so the unpacker cannot read past the
		// truncation point via the original backing array
		truncated := make(tokenrecord.Packed, i)
		copy(truncated, packed)
		_, _, err := truncated.Unpack(true)
		if nil == err {
			t.Errorf("truncated record of %d bytes unexpectedly unpacked", i)
		}
	}

	// empty and garbage records
	_, _, err = tokenrecord.Packed{}.Unpack(true)
	if fault.NotRecordPack != err {
		t.Fatalf("error: %v  expected: %v", err, fault.NotRecordPack)
	}
	_, _, err = tokenrecord.Packed{0xff, 0xff, 0xff}.Unpack(true)
	if fault.NotRecordPack != err {
		t.Fatalf("error: %v  expected: %v", err, fault.NotRecordPack)
	}
}

func TestRecordName(t *testing.T) {
	items := []struct {
		record   interface{}
		name     string
		expected bool
	}{
		{&tokenrecord.BalanceSet{}, "BalanceSet", true},
		{tokenrecord.Transfer{}, "Transfer", true},
		{&tokenrecord.Approval{}, "Approval", true},
		{&tokenrecord.DelegatedTransfer{}, "DelegatedTransfer", true},
		{nil, "*unknown*", false},
		{42, "*unknown*", false},
	}
	for i, item := range items {
		name, ok := tokenrecord.RecordName(item.record)
		if item.name != name || item.expected != ok {
			t.Errorf("%d: name: %q %v  expected: %q %v", i, name, ok, item.name, item.expected)
		}
	}
}
