// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic test identities
var (
	AdministratorPublicKey ed25519.PublicKey
	AdministratorPrivate   ed25519.PrivateKey
	SenderPublicKey        ed25519.PublicKey
	SenderPrivate          ed25519.PrivateKey
	ReceiverPublicKey      ed25519.PublicKey
	ReceiverPrivate        ed25519.PrivateKey
)

// self-signed certificate pair shared by the TLS tests
var (
	certificatePEM []byte
	keyPEM         []byte
)

func init() {
	AdministratorPrivate = seededKey(0x0a)
	AdministratorPublicKey = AdministratorPrivate.Public().(ed25519.PublicKey)
	SenderPrivate = seededKey(0x01)
	SenderPublicKey = SenderPrivate.Public().(ed25519.PublicKey)
	ReceiverPrivate = seededKey(0x02)
	ReceiverPublicKey = ReceiverPrivate.Public().(ed25519.PublicKey)

	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("tokend testing", validUntil, false, nil)
	if nil != err {
		panic(fmt.Sprintf("cannot create test certificate: %s", err))
	}
	certificatePEM = cert
	keyPEM = key
}

func seededKey(fill byte) ed25519.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = fill
	}
	return ed25519.NewKeyFromSeed(seed)
}

// TestAccount - wrap a public key as a testnet account
func TestAccount(publicKey ed25519.PublicKey) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

// Certificate - PEM encoded self-signed certificate
func Certificate() string {
	return string(certificatePEM)
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	return string(keyPEM)
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
