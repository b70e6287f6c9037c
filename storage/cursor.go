// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/wramd/fault"
)

// FetchCursor - walks a key range of one pool in key order
//
// cursors only see committed data, never an open transaction
type FetchCursor struct {
	pool *PoolHandle
	span util.Range
}

// NewFetchCursor - every key in the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		span: util.Range{Start: []byte{p.prefix}, Limit: p.limit},
	}
}

// NewPrefixCursor - keys of the pool that begin with subPrefix
func (p *PoolHandle) NewPrefixCursor(subPrefix []byte) *FetchCursor {
	return &FetchCursor{
		pool: p,
		span: *util.BytesPrefix(p.prefixKey(subPrefix)),
	}
}

// call f with copies of each key (pool prefix removed) and value
// until f returns false or an error
func (cursor *FetchCursor) walk(f func(key []byte, value []byte) (bool, error)) error {
	if nil == cursor.pool.access {
		return nil
	}

	iter := cursor.pool.access.Iterator(&cursor.span)
	defer iter.Release()

	for iter.Next() {
		// iterator buffers are reused by Next
		key := append([]byte(nil), iter.Key()[1:]...)
		value := append([]byte(nil), iter.Value()...)

		more, err := f(key, value)
		if nil != err {
			return err
		}
		if !more {
			break
		}
	}
	return iter.Error()
}

// Fetch - up to count elements, the next call continues after the last one
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.walk(func(key []byte, value []byte) (bool, error) {
		results = append(results, Element{Key: key, Value: value})
		return len(results) < count, nil
	})

	if n := len(results); n > 0 {
		cursor.span.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - apply f to every element, stopping at the first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}
	return cursor.walk(func(key []byte, value []byte) (bool, error) {
		return true, f(key, value)
	})
}
