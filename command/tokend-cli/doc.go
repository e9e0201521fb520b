// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line interface to the token daemon
//
// identities are stored in a per-network JSON configuration file,
// private keys encrypted under a password; state changing commands
// sign a record locally and submit it over the TLS RPC connection
package main
