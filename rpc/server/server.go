// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/publish"
	"github.com/bitmark-inc/tokend/rpc/node"
	"github.com/bitmark-inc/tokend/rpc/record"
	"github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/storage"
)

// Create - build the RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, readOnly bool) *rpc.Server {

	start := time.Now().UTC()
	ldgr := ledger.Get()

	server := rpc.NewServer()

	_ = server.Register(token.New(log, mode.Is, mode.IsTesting, ldgr, publish.Events(), readOnly))
	_ = server.Register(node.New(log, start, version, rpcCount, ldgr, publish.PublicKey()))
	_ = server.Register(record.New(log, storage.Pool.Records))

	return server
}
