// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/wramd/fault"
)

// PoolHandle - one table, all keys share a single prefix byte
//
// writes only happen through a Transaction
type PoolHandle struct {
	prefix byte
	limit  []byte
	access Access
}

// Element - a key and value copied out of a pool
type Element struct {
	Key   []byte
	Value []byte
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	return append([]byte{p.prefix}, key...)
}

func (p *PoolHandle) put(key []byte, value []byte) {
	if nil == p.access {
		fault.Panicf("pool: %c put without database", p.prefix)
	}
	p.access.Put(p.prefixKey(key), value)
}

func (p *PoolHandle) putN(key []byte, value uint64) {
	var buffer [8]byte
	binary.BigEndian.PutUint64(buffer[:], value)
	p.put(key, buffer[:])
}

func (p *PoolHandle) remove(key []byte) {
	if nil == p.access {
		fault.Panicf("pool: %c remove without database", p.prefix)
	}
	p.access.Delete(p.prefixKey(key))
}

// Get - the value of key or nil, includes writes of an open transaction
//
// the result is shared, copy it before modifying
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p.access {
		return nil
	}
	value, err := p.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	fault.PanicIfError("pool get", err)
	return value
}

// leading big endian uint64 and the remainder
func (p *PoolHandle) splitN(key []byte) (uint64, []byte, bool) {
	record := p.Get(key)
	if nil == record {
		return 0, nil, false
	}
	if len(record) < 8 {
		fault.Panicf("pool: %c record: %x too short: %d bytes", p.prefix, key, len(record))
	}
	return binary.BigEndian.Uint64(record[:8]), record[8:], true
}

// GetN - a record holding a uint64 count, false if absent
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	n, _, found := p.splitN(key)
	return n, found
}

// GetNB - a uint64 count followed by bytes, nil bytes if absent
func (p *PoolHandle) GetNB(key []byte) (uint64, []byte) {
	n, rest, found := p.splitN(key)
	if !found {
		return 0, nil
	}
	return n, rest
}

// Has - key is present
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p.access {
		return false
	}
	found, err := p.access.Has(p.prefixKey(key))
	fault.PanicIfError("pool has", err)
	return found
}
