// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/chain"
	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/rpc/fixtures"
	"github.com/bitmark-inc/tokend/rpc/mocks"
	"github.com/bitmark-inc/tokend/rpc/node"
)

func TestInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(chain.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().TotalSupply().Return(uint64(1000)).Times(1)

	var count counter.Counter
	publicKey := []byte{0x12, 0x34}

	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now(),
		"1.0",
		&count,
		l,
		publicKey,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(1000), reply.TotalSupply, "wrong supply")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, hex.EncodeToString(publicKey), reply.PublicKey, "wrong public key")
}
