// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/wramd/fault"
)

// Access - the database as seen by the pools
//
// writes collect in a batch until Commit, reads see the batch first
type Access interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
	Put([]byte, []byte)
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
}

// one pending write, a nil value with deleted set is a tombstone
type pendingWrite struct {
	deleted bool
	value   []byte
}

// pending entries live until Commit or Abort flushes them
const pendingSweep = 5 * time.Minute

type batchAccess struct {
	sync.Mutex
	db      *leveldb.DB
	batch   *leveldb.Batch
	pending *cache.Cache
	open    bool
}

func newBatchAccess(db *leveldb.DB) *batchAccess {
	return &batchAccess{
		db:      db,
		batch:   new(leveldb.Batch),
		pending: cache.New(cache.NoExpiration, pendingSweep),
	}
}

func (b *batchAccess) Begin() error {
	b.Lock()
	defer b.Unlock()
	if b.open {
		return fault.TransactionAlreadyInUse
	}
	b.open = true
	return nil
}

func (b *batchAccess) Commit() error {
	b.Lock()
	defer b.Unlock()
	if !b.open {
		return fault.TransactionNotInUse
	}
	err := b.db.Write(b.batch, nil)
	b.reset()
	return err
}

func (b *batchAccess) Abort() {
	b.Lock()
	b.reset()
	b.Unlock()
}

// caller holds the lock
func (b *batchAccess) reset() {
	b.batch.Reset()
	b.pending.Flush()
	b.open = false
}

func (b *batchAccess) InUse() bool {
	b.Lock()
	defer b.Unlock()
	return b.open
}

func (b *batchAccess) Put(key []byte, value []byte) {
	v := append([]byte(nil), value...)

	b.Lock()
	b.pending.Set(string(key), pendingWrite{value: v}, cache.NoExpiration)
	b.batch.Put(key, v)
	b.Unlock()
}

func (b *batchAccess) Delete(key []byte) {
	b.Lock()
	b.pending.Set(string(key), pendingWrite{deleted: true}, cache.NoExpiration)
	b.batch.Delete(key)
	b.Unlock()
}

func (b *batchAccess) lookup(key []byte) (pendingWrite, bool) {
	obj, found := b.pending.Get(string(key))
	if !found {
		return pendingWrite{}, false
	}
	return obj.(pendingWrite), true
}

func (b *batchAccess) Get(key []byte) ([]byte, error) {
	if w, found := b.lookup(key); found {
		if w.deleted {
			return nil, leveldb.ErrNotFound
		}
		return w.value, nil
	}
	return b.db.Get(key, nil)
}

func (b *batchAccess) Has(key []byte) (bool, error) {
	if w, found := b.lookup(key); found {
		return !w.deleted, nil
	}
	return b.db.Has(key, nil)
}

// Iterator - committed data only
func (b *batchAccess) Iterator(span *ldb_util.Range) iterator.Iterator {
	return b.db.NewIterator(span, nil)
}
