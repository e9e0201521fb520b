// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
)

// deterministic test identities
var (
	adminSeed = []byte{
		0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a,
		0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a,
		0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a,
		0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a,
	}
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
	carolSeed = []byte{
		0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03,
		0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03,
		0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03,
		0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03,
	}
)

type tester struct {
	account    *account.Account
	privateKey ed25519.PrivateKey
}

func makeTester(seed []byte) *tester {
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

// sink that remembers every event for verification
type recordingSink struct {
	events []string
	who    []*account.Account
	values []uint64
}

func (s *recordingSink) add(name string, who *account.Account, value uint64) {
	s.events = append(s.events, name)
	s.who = append(s.who, who)
	s.values = append(s.values, value)
}

func (s *recordingSink) TotalSupply(value uint64)                       { s.add("TotalSupply", nil, value) }
func (s *recordingSink) BalanceOf(who *account.Account, balance uint64) { s.add("BalanceOf", who, balance) }
func (s *recordingSink) BalanceSet(who *account.Account, balance uint64) {
	s.add("BalanceSet", who, balance)
}
func (s *recordingSink) Transfer(from *account.Account, to *account.Account, value uint64) {
	s.add("Transfer", to, value)
}
func (s *recordingSink) Approval(from *account.Account, to *account.Account, value uint64) {
	s.add("Approval", to, value)
}
func (s *recordingSink) TransferFrom(from *account.Account, to *account.Account, value uint64) {
	s.add("TransferFrom", to, value)
}

func (s *recordingSink) last(t *testing.T) string {
	t.Helper()
	if 0 == len(s.events) {
		t.Fatal("no events recorded")
	}
	return s.events[len(s.events)-1]
}

var sink *recordingSink

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T, admin *tester) {
	removeFiles()
	os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	sink = &recordingSink{}
	err = ledger.Initialise(admin.account, sink)
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = ledger.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// sign and pack a record the way the client does: pack the unsigned
// message, sign it, then pack again with the signature appended
func pack(t *testing.T, record tokenrecord.Record, signer *tester) tokenrecord.Packed {
	t.Helper()

	unsigned, _ := record.Pack(signer.account)
	signature := ed25519.Sign(signer.privateKey, unsigned)

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

	packed, err := record.Pack(signer.account)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

func setBalance(t *testing.T, admin *tester, who *tester, amount uint64) tokenrecord.Link {
	t.Helper()
	r := &tokenrecord.BalanceSet{
		Account: who.account,
		Amount:  amount,
	}
	packed := pack(t, r, admin)
	link, err := ledger.Get().SetBalance(r, packed)
	if nil != err {
		t.Fatalf("set balance error: %s", err)
	}
	return link
}
