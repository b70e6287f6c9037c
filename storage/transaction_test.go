// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/storage"
)

func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestCommitVisible(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	key := []byte("key-one")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	assert.True(t, trx.InUse(), "in use")

	trx.Put(pool, key, []byte("data-one"))
	trx.PutN(pool, []byte("count"), 42)

	// pending writes are visible inside the transaction
	assert.Equal(t, []byte("data-one"), trx.Get(pool, key), "pending get")
	n, found := trx.GetN(pool, []byte("count"))
	assert.True(t, found, "pending count")
	assert.Equal(t, uint64(42), n, "pending count value")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "nested begin")

	assert.Nil(t, trx.Commit(), "commit")
	assert.False(t, trx.InUse(), "released")

	assert.Equal(t, []byte("data-one"), pool.Get(key), "committed get")
	assert.True(t, pool.Has(key), "committed has")

	assert.Equal(t, fault.TransactionNotInUse, trx.Commit(), "commit twice")
}

func TestAbortDiscards(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	populate(t, pool, map[string]string{"keep": "old"})

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(pool, []byte("keep"), []byte("new"))
	trx.Put(pool, []byte("extra"), []byte("value"))
	assert.Equal(t, []byte("new"), trx.Get(pool, []byte("keep")), "pending overwrite")
	trx.Abort()

	assert.Equal(t, []byte("old"), pool.Get([]byte("keep")), "restored")
	assert.Nil(t, pool.Get([]byte("extra")), "discarded")
	assert.False(t, pool.Has([]byte("extra")), "discarded has")

	// the transaction can be reused after abort
	_, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
}

func TestDeleteInsideTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	populate(t, pool, map[string]string{"gone": "soon"})

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Delete(pool, []byte("gone"))

	// a deleted key must not fall back to the stored value
	assert.Nil(t, trx.Get(pool, []byte("gone")), "deleted get")
	assert.False(t, trx.Has(pool, []byte("gone")), "deleted has")

	assert.Nil(t, trx.Commit(), "commit")
	assert.Nil(t, pool.Get([]byte("gone")), "deleted after commit")
}

func TestGetNB(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(pool, []byte("nb"), []byte{0, 0, 0, 0, 0, 0, 0x01, 0x00, 'a', 'b'})
	trx.Put(pool, []byte("n-only"), []byte{0, 0, 0, 0, 0, 0, 0, 7})
	assert.Nil(t, trx.Commit(), "commit")

	n, b := pool.GetNB([]byte("nb"))
	assert.Equal(t, uint64(256), n, "n")
	assert.Equal(t, []byte("ab"), b, "b")

	n, b = pool.GetNB([]byte("n-only"))
	assert.Equal(t, uint64(7), n, "n only")
	assert.NotNil(t, b, "found with empty tail")
	assert.Equal(t, 0, len(b), "empty tail")

	_, b = pool.GetNB([]byte("missing"))
	assert.Nil(t, b, "missing")
}
