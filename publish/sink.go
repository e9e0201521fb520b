// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/messagebus"
)

// broadcast topics
//
// subscribers filter on the command frame so each event type gets its
// own topic string
const (
	topicTotalSupply  = "totalSupply"
	topicBalanceOf    = "balanceOf"
	topicBalanceSet   = "balanceSet"
	topicTransfer     = "transfer"
	topicApproval     = "approval"
	topicTransferFrom = "transferFrom"
)

// eventSink - relays ledger events onto the broadcast queue
//
// each event becomes one multi-part ZeroMQ message: the topic as the
// command frame, packed account bytes for each party and a big endian
// amount as the final frame
type eventSink struct{}

// Events - the sink to hand to the ledger during start up
func Events() ledger.EventSink {
	return eventSink{}
}

func (eventSink) TotalSupply(value uint64) {
	messagebus.Bus.Broadcast.Send(topicTotalSupply, amountBytes(value))
}

func (eventSink) BalanceOf(who *account.Account, balance uint64) {
	messagebus.Bus.Broadcast.Send(topicBalanceOf, who.Bytes(), amountBytes(balance))
}

func (eventSink) BalanceSet(who *account.Account, balance uint64) {
	messagebus.Bus.Broadcast.Send(topicBalanceSet, who.Bytes(), amountBytes(balance))
}

func (eventSink) Transfer(from *account.Account, to *account.Account, value uint64) {
	messagebus.Bus.Broadcast.Send(topicTransfer, from.Bytes(), to.Bytes(), amountBytes(value))
}

func (eventSink) Approval(from *account.Account, to *account.Account, value uint64) {
	messagebus.Bus.Broadcast.Send(topicApproval, from.Bytes(), to.Bytes(), amountBytes(value))
}

func (eventSink) TransferFrom(from *account.Account, to *account.Account, value uint64) {
	messagebus.Bus.Broadcast.Send(topicTransferFrom, from.Bytes(), to.Bytes(), amountBytes(value))
}

func amountBytes(value uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}
