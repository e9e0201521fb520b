// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/messagebus"
	"github.com/bitmark-inc/tokend/util"
	"github.com/bitmark-inc/tokend/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	heartbeatInterval    = 60 * time.Second
	heartbeatCommand     = "heart"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	// validate connection count
	connections := make([]*util.Connection, len(broadcast))
	for i, address := range broadcast {
		c, err := util.NewConnection(address)
		if nil != err {
			log.Errorf("broadcast[%d]=%q  error: %s", i, address, err)
			return err
		}
		connections[i] = c
	}

	err := zmqutil.StartAuthentication()
	if nil != err {
		log.Errorf("zmq.AuthStart: error: %s", err)
		return err
	}

	// allocate IPv4 and IPv6 sockets
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, connections)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - the background broadcasting process
//
// drains the broadcast queue sending each event as a multi-part
// message and emits a heartbeat during idle periods so subscribers
// can detect a stalled publisher
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan(-1)

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  data: %x", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		case <-time.After(heartbeatInterval):
			beat := messagebus.Message{
				Command: heartbeatCommand,
			}
			brdc.process(brdc.socket4, &beat)
			brdc.process(brdc.socket6, &beat)
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one message as: command frame followed by parameter frames
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flag := zmq.Flag(0)
	if 0 != len(item.Parameters) {
		flag = zmq.SNDMORE
	}
	_, err := socket.Send(item.Command, flag|zmq.DONTWAIT)
	if nil != err {
		brdc.log.Errorf("send command: %q  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flag := zmq.Flag(0)
		if i != last {
			flag = zmq.SNDMORE
		}
		_, err := socket.SendBytes(p, flag|zmq.DONTWAIT)
		if nil != err {
			brdc.log.Errorf("send parameter[%d]: error: %s", i, err)
			return
		}
	}
}
