// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/bitmark-inc/tokend/storage"
)

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	trx.Put(p, []byte("abc"), []byte("123"))
	trx.PutN(p, []byte("n"), 42)

	// uncommitted data is visible through the transaction
	if value := trx.Get(p, []byte("abc")); "123" != string(value) {
		t.Fatalf("value: %q  expected: %q", value, "123")
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	// committed data is visible through the pool
	if value := p.Get([]byte("abc")); "123" != string(value) {
		t.Fatalf("value: %q  expected: %q", value, "123")
	}
	n, ok := p.GetN([]byte("n"))
	if !ok || 42 != n {
		t.Fatalf("value: %d %v  expected: 42 true", n, ok)
	}
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	p.Put([]byte("persistent"), []byte("value"))

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	trx.Put(p, []byte("discard"), []byte("me"))
	trx.Abort()

	if p.Has([]byte("discard")) {
		t.Fatal("aborted write was persisted")
	}
	if !p.Has([]byte("persistent")) {
		t.Fatal("pre-transaction write was lost")
	}
}

func TestTransactionAbortClearsCachedReads(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	trx.PutN(p, []byte("balance"), 99)

	// buffered writes are visible through the pool via the
	// write-through cache before they are persisted
	if n, ok := p.GetN([]byte("balance")); !ok || 99 != n {
		t.Fatalf("value: %d %v  expected: 99 true", n, ok)
	}

	// abort must drop them, a reader must not see phantom state
	// after a transaction fails to commit
	trx.Abort()

	if _, ok := p.GetN([]byte("balance")); ok {
		t.Fatal("aborted write still visible through the pool")
	}
	if p.Has([]byte("balance")) {
		t.Fatal("aborted write still reported present")
	}
}

func TestTransactionExclusion(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	if !storage.IsTransactionInUse() {
		t.Fatal("transaction is not marked in use")
	}

	// second transaction must be refused while the first is open
	_, err = storage.NewDBTransaction()
	if nil == err {
		t.Fatal("unexpected success beginning nested transaction")
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
	if storage.IsTransactionInUse() {
		t.Fatal("transaction still marked in use after commit")
	}
}
