// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
)

func TestPrivateKeyBase58RoundTrip(t *testing.T) {
	_, privateKey := makeTestKeys(t)

	priv := &account.PrivateKey{
		PrivateKeyInterface: &account.ED25519PrivateKey{
			Test:       true,
			PrivateKey: privateKey,
		},
	}

	encoded := priv.String()

	decoded, err := account.PrivateKeyFromBase58(encoded)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if !bytes.Equal(decoded.PrivateKeyBytes(), privateKey) {
		t.Errorf("private key: %x  expected: %x", decoded.PrivateKeyBytes(), privateKey)
	}
	if !decoded.IsTesting() {
		t.Error("decoded key is not a test key")
	}
}

func TestPrivateKeyAccount(t *testing.T) {
	publicKey, privateKey := makeTestKeys(t)

	priv := &account.PrivateKey{
		PrivateKeyInterface: &account.ED25519PrivateKey{
			Test:       true,
			PrivateKey: privateKey,
		},
	}

	acc := priv.Account()
	if nil == acc {
		t.Fatal("nil account")
	}
	if !bytes.Equal(acc.PublicKeyBytes(), publicKey) {
		t.Errorf("public key: %x  expected: %x", acc.PublicKeyBytes(), publicKey)
	}
	if !acc.IsTesting() {
		t.Error("derived account is not a test account")
	}
}

func TestPrivateKeyRejectsPublicKey(t *testing.T) {
	publicKey, _ := makeTestKeys(t)

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}

	// an account string is not a private key
	_, err := account.PrivateKeyFromBase58(acc.String())
	if fault.NotPrivateKey != err {
		t.Fatalf("error: %v  expected: %v", err, fault.NotPrivateKey)
	}
}

func TestMakePrivateKey(t *testing.T) {
	priv, err := account.MakePrivateKey(true)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	if ed25519.PrivateKeySize != len(priv.PrivateKeyBytes()) {
		t.Fatalf("key length: %d  expected: %d", len(priv.PrivateKeyBytes()), ed25519.PrivateKeySize)
	}

	// round trip through Base58
	decoded, err := account.PrivateKeyFromBase58(priv.String())
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if !bytes.Equal(decoded.PrivateKeyBytes(), priv.PrivateKeyBytes()) {
		t.Error("round trip mismatch")
	}
}
