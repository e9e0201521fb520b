// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - atomic batch update over the storage pools
//
// writes are buffered in the underlying batch and become visible to
// other readers only after Commit; Abort discards all buffered writes
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

type TransactionImpl struct {
	dataAccess Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		dataAccess: access,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionImpl) Abort() {
	t.dataAccess.Abort()
}

func (t *TransactionImpl) Commit() error {
	return t.dataAccess.Commit()
}

func (t *TransactionImpl) InUse() bool {
	return t.dataAccess.InUse()
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.Put(key, value)
}

func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.PutN(key, value)
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.Delete(key)
}

func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}
