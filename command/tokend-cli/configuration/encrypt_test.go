// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/bitmark-inc/tokend/account"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}

		if decrypted != plainText {
			t.Errorf("decrypt: expected: %s", plainText)
			t.Errorf("decrypt: actual:   %s", decrypted)
		}
	}
}

// make sure encryption never produces identical results, if it does
// nonce generation is broken
func TestEncryptionNoDuplication(t *testing.T) {

	plainText := "This is some text for testing 1234567890"

	_, key, err := hashPassword("abcdefghijklmnopqrstuvwxyz")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	one, err := encryptData(plainText, key)
	if nil != err {
		t.Fatalf("encrypt error: %s", err)
	}

	two, err := encryptData(plainText, key)
	if nil != err {
		t.Fatalf("encrypt error: %s", err)
	}

	if one == two {
		t.Errorf("encryption produced duplicate result - must never happen")
		t.Errorf("one: %s", one)
		t.Errorf("two: %s", two)
	}
}

func TestDecryptWithWrongPassword(t *testing.T) {

	plainText := "This is some text for testing 1234567890"

	salt, key, err := hashPassword("correct password")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	encrypted, err := encryptData(plainText, key)
	if nil != err {
		t.Fatalf("encrypt error: %s", err)
	}

	badKey, err := generateKey("A Bad Password", salt)
	if nil != err {
		t.Fatalf("generateKey error: %s", err)
	}

	_, err = decryptData(encrypted, badKey)
	if nil == err {
		t.Errorf("unexpected decryption success")
	}
}

// round trip an identity through AddIdentity and Private
func TestIdentityRoundTrip(t *testing.T) {

	privateKey, err := account.MakePrivateKey(true)
	if nil != err {
		t.Fatalf("make private key error: %s", err)
	}

	config := &Configuration{
		DefaultIdentity: "me",
		TestNet:         true,
		Connections:     []string{"127.0.0.1:2130"},
		Identities:      make(map[string]Identity),
	}

	err = config.AddIdentity("me", "unit testing", privateKey.String(), "secret passphrase")
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	acc, err := config.Account("me")
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	if acc.String() != privateKey.Account().String() {
		t.Errorf("account: expected: %s", privateKey.Account())
		t.Errorf("account: actual:   %s", acc)
	}

	private, err := config.Private("secret passphrase", "me")
	if nil != err {
		t.Fatalf("private error: %s", err)
	}
	if private.PrivateKey.String() != privateKey.String() {
		t.Errorf("private key: expected: %s", privateKey)
		t.Errorf("private key: actual:   %s", private.PrivateKey)
	}

	_, err = config.Private("wrong passphrase", "me")
	if nil == err {
		t.Errorf("unexpected decryption success")
	}

	err = config.AddIdentity("me", "duplicate", privateKey.String(), "secret passphrase")
	if nil == err {
		t.Errorf("unexpected duplicate identity success")
	}
}
