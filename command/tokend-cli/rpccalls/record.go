// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tokend/rpc/record"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// GetRecord - retrieve a stored record by its transaction id
//
// the reply is decoded generically since the record data is a
// different structure for each record type
func (client *Client) GetRecord(txId string) (map[string]interface{}, error) {

	var link tokenrecord.Link
	err := link.UnmarshalText([]byte(txId))
	if nil != err {
		return nil, err
	}

	getArgs := record.GetArguments{
		TxId: link,
	}

	client.printJson("Record Request", getArgs)

	var reply map[string]interface{}
	err = client.client.Call("Record.Get", &getArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Record Reply", reply)

	return reply, nil
}

// ListRecords - retrieve a batch of stored record ids
//
// an empty txId starts from the first record; otherwise the listing
// resumes after the given id
func (client *Client) ListRecords(txId string, count int) (map[string]interface{}, error) {

	listArgs := record.ListArguments{
		Count: count,
	}
	if "" != txId {
		err := listArgs.Start.UnmarshalText([]byte(txId))
		if nil != err {
			return nil, err
		}
	}

	client.printJson("List Request", listArgs)

	var reply map[string]interface{}
	err := client.client.Call("Record.List", &listArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}
