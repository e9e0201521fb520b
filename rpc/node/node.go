// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Ldgr      ledger.Ledger
	PublicKey []byte
	counter   *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, cntr *counter.Counter, ldgr ledger.Ledger, publicKey []byte) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Ldgr:      ldgr,
		PublicKey: publicKey,
		counter:   cntr,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain       string `json:"chain"`
	Mode        string `json:"mode"`
	TotalSupply uint64 `json:"totalSupply,string"`
	RPCs        uint64 `json:"rpcs"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	PublicKey   string `json:"publicKey"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.TotalSupply = node.Ldgr.TotalSupply()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.PublicKey = hex.EncodeToString(node.PublicKey)
	return nil
}
