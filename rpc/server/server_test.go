// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/chain"
	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/rpc/fixtures"
	"github.com/bitmark-inc/tokend/rpc/server"
	"github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/storage"
)

const databaseFileName = "testing/test"

func setup(t *testing.T) {
	fixtures.SetupTestLogger()

	_ = mode.Initialise(chain.Testing)
	mode.Set(mode.Normal)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	administrator := fixtures.TestAccount(fixtures.AdministratorPublicKey)
	err = ledger.Initialise(administrator, nil)
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}
}

func teardown() {
	_ = ledger.Finalise()
	storage.Finalise()
	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
	_ = os.RemoveAll("testing")
}

// full JSON RPC round trip over an in-memory connection
func TestCreateAndServe(t *testing.T) {
	setup(t)
	defer teardown()

	var count counter.Counter
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", &count, false)
	assert.NotNil(t, s, "wrong Create")

	clientSide, serverSide := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	client := jsonrpc.NewClient(clientSide)
	defer client.Close()

	var reply token.TotalSupplyReply
	err := client.Call("Token.TotalSupply", &token.TotalSupplyArguments{}, &reply)
	assert.Nil(t, err, "wrong TotalSupply call")
	assert.Equal(t, uint64(0), reply.Supply, "wrong supply")

	owner := fixtures.TestAccount(fixtures.SenderPublicKey)

	var balance token.BalanceOfReply
	err = client.Call("Token.BalanceOf", &token.BalanceOfArguments{Owner: owner}, &balance)
	assert.Nil(t, err, "wrong BalanceOf call")
	assert.Equal(t, uint64(0), balance.Balance, "wrong balance")
}
