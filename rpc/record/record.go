// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

const (
	rateLimitRecord = 200
	rateBurstRecord = 100
)

// Record - type for the RPC
type Record struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	PoolRecords storage.Handle
}

// New - create the record retrieval service
func New(log *logger.L, pool storage.Handle) *Record {
	return &Record{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitRecord, rateBurstRecord),
		PoolRecords: pool,
	}
}

// GetArguments - the record id to fetch
type GetArguments struct {
	TxId tokenrecord.Link `json:"txId"`
}

// GetReply - the stored record
type GetReply struct {
	TxId   tokenrecord.Link   `json:"txId"`
	Record string             `json:"record"`
	Data   tokenrecord.Record `json:"data"`
	Packed tokenrecord.Packed `json:"packed"`
}

// Get - fetch a stored record by its id
func (record *Record) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(record.Limiter); nil != err {
		return err
	}

	if nil == record.PoolRecords {
		return fault.DatabaseIsNotSet
	}

	record.Log.Infof("Record.Get: %s", arguments.TxId)

	packed := record.PoolRecords.Get(arguments.TxId.Bytes())
	if nil == packed {
		return fault.RecordNotFound
	}

	unpacked, _, err := tokenrecord.Packed(packed).Unpack(mode.IsTesting())
	if nil != err {
		return err
	}

	name, _ := tokenrecord.RecordName(unpacked)

	reply.TxId = arguments.TxId
	reply.Record = name
	reply.Data = unpacked
	reply.Packed = packed

	return nil
}

// maximum number of records in one listing batch
const maximumListRecords = 100

// ListArguments - the starting point and batch size
type ListArguments struct {
	Start tokenrecord.Link `json:"start"` // all zero to begin with the first record
	Count int              `json:"count"`
}

// ListItem - one stored record
type ListItem struct {
	TxId   tokenrecord.Link `json:"txId"`
	Record string           `json:"record"`
}

// ListReply - a batch of stored records
type ListReply struct {
	Records []ListItem `json:"records"`
}

// List - enumerate stored records in id order
//
// ids are digests so the order is arbitrary but stable; pass the last
// id of one batch as the start of the next, the start id itself is
// excluded from the results
func (record *Record) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(record.Limiter); nil != err {
		return err
	}

	if nil == record.PoolRecords {
		return fault.DatabaseIsNotSet
	}

	count := arguments.Count
	if count <= 0 {
		return fault.InvalidCount
	}
	if count > maximumListRecords {
		count = maximumListRecords
	}

	record.Log.Infof("Record.List: %+v", arguments)

	cursor := record.PoolRecords.NewFetchCursor()

	// a non-zero start resumes after a previous batch
	resume := tokenrecord.Link{} != arguments.Start
	fetchCount := count
	if resume {
		cursor.Seek(arguments.Start.Bytes())
		fetchCount += 1 // the seek includes the start key itself
	}

	elements, err := cursor.Fetch(fetchCount)
	if nil != err {
		return err
	}

	items := make([]ListItem, 0, len(elements))
	for _, element := range elements {
		if resume && bytes.Equal(element.Key, arguments.Start.Bytes()) {
			continue
		}
		if len(items) >= count {
			break
		}

		link := tokenrecord.Link{}
		err := tokenrecord.LinkFromBytes(&link, element.Key)
		if nil != err {
			return err
		}

		unpacked, _, err := tokenrecord.Packed(element.Value).Unpack(mode.IsTesting())
		if nil != err {
			return err
		}
		name, _ := tokenrecord.RecordName(unpacked)

		items = append(items, ListItem{
			TxId:   link,
			Record: name,
		})
	}

	reply.Records = items
	return nil
}
