// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tokend/rpc/token"
)

// GetTotalSupply - retrieve the recorded total issuance
func (client *Client) GetTotalSupply() (*token.TotalSupplyReply, error) {

	reply := &token.TotalSupplyReply{}
	err := client.client.Call("Token.TotalSupply", &token.TotalSupplyArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("TotalSupply Reply", reply)

	return reply, nil
}
