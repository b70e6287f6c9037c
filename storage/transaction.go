// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the single write transaction over all pools
//
// reads through a transaction see its own pending writes
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool

	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)

	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	GetNB(*PoolHandle, []byte) (uint64, []byte)
	Has(*PoolHandle, []byte) bool
}

// begin/commit/abort come from the shared batch, pool operations
// route through the handle so the prefix is applied
type transaction struct {
	Access
}

func (trx transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.put(key, value)
}

func (trx transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	pool.putN(key, value)
}

func (trx transaction) Delete(pool *PoolHandle, key []byte) {
	pool.remove(key)
}

func (trx transaction) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

func (trx transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.GetN(key)
}

func (trx transaction) GetNB(pool *PoolHandle, key []byte) (uint64, []byte) {
	return pool.GetNB(key)
}

func (trx transaction) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}
