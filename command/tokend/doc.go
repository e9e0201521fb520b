// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Fungible token ledger daemon
//
// configuration is read from a Lua file, see tokend.conf.sample;
// the setup commands create the RPC certificate and the publishing
// key pair:
//
//   tokend --config-file=tokend.conf gen-rpc-cert
//   tokend --config-file=tokend.conf gen-publish-identity
//   tokend --config-file=tokend.conf start
package main
