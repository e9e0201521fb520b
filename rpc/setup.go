// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/rpc/certificate"
	"github.com/bitmark-inc/tokend/rpc/handler"
	"github.com/bitmark-inc/tokend/rpc/listeners"
	"github.com/bitmark-inc/tokend/rpc/server"
)

const (
	rpcTLSName   = "client_rpc"
	httpsTLSName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// count of active RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
//
// storage and the ledger must already be initialised
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, readOnly bool) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, rpcTLSName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, version, &connectionCountRPC, readOnly)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, s, version)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// start the HTTPS gateway if it is configured
func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, s *rpc.Server, version string) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsTLSName)
		return nil
	}

	tlsConfig, fingerprint, err := certificate.Get(log, httpsTLSName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsTLSName, fingerprint)

	hdlr := handler.New(log, s, time.Now(), version, configuration.MaximumConnections)

	httpsListener, err := listeners.NewHTTPS(configuration, log, tlsConfig, hdlr)
	if nil != err {
		return err
	}
	if nil == httpsListener {
		return nil
	}

	return httpsListener.Serve()
}
