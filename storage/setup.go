// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/fault"
)

// the tables, each field needs a single byte prefix tag
//
// fields must be exported so reflection can set them
type pools struct {
	Accounts  *PoolHandle `prefix:"A"`
	Config    *PoolHandle `prefix:"C"`
	Egress    *PoolHandle `prefix:"E"`
	Genesis   *PoolHandle `prefix:"G"`
	Nonces    *PoolHandle `prefix:"N"`
	Resources *PoolHandle `prefix:"R"`
	Stats     *PoolHandle `prefix:"S"`
	TestData  *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// schema version, outside every pool prefix
var schemaKey = []byte("\x00schema")

const schemaVersion uint32 = 0x101

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

var globalData struct {
	sync.RWMutex
	log *logger.L
	db  *leveldb.DB
	trx Transaction
}

// Initialise - open the database and bind the pools
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.db {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("storage")

	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return err
	}

	if err := checkSchema(db, database, readOnly); nil != err {
		globalData.log.Criticalf("database: %q  error: %s", database, err)
		db.Close()
		return err
	}

	access := newBatchAccess(db)
	if err := bindPools(access); nil != err {
		db.Close()
		return err
	}

	globalData.db = db
	globalData.trx = transaction{access}

	globalData.log.Infof("opened: %q  schema: 0x%x  read only: %t", database, schemaVersion, readOnly)
	return nil
}

// a new database is stamped, an existing one must match exactly
func checkSchema(db *leveldb.DB, database string, readOnly bool) error {
	stored, err := db.Get(schemaKey, nil)
	if leveldb.ErrNotFound == err {
		if readOnly {
			return fmt.Errorf("database: %q is not initialised", database)
		}
		var buffer [4]byte
		binary.BigEndian.PutUint32(buffer[:], schemaVersion)
		return db.Put(schemaKey, buffer[:], nil)
	}
	if nil != err {
		return err
	}

	if 4 != len(stored) {
		return fmt.Errorf("schema record has %d bytes, expected 4", len(stored))
	}
	if version := binary.BigEndian.Uint32(stored); schemaVersion != version {
		return fmt.Errorf("database schema: 0x%x  program schema: 0x%x", version, schemaVersion)
	}
	return nil
}

// point every field of Pool at a handle for its prefix
func bindPools(access Access) error {
	t := reflect.TypeOf(Pool)
	v := reflect.ValueOf(&Pool).Elem()

	owner := make(map[byte]string)
	for i := 0; i < t.NumField(); i += 1 {
		field := t.Field(i)

		tag := field.Tag.Get("prefix")
		if 1 != len(tag) {
			return fmt.Errorf("pool: %s prefix: %q is not one byte", field.Name, tag)
		}
		prefix := tag[0]
		if other, ok := owner[prefix]; ok {
			return fmt.Errorf("pool: %s reuses prefix: %q of pool: %s", field.Name, tag, other)
		}
		owner[prefix] = field.Name

		var limit []byte
		if prefix < 0xff {
			limit = []byte{prefix + 1}
		}
		v.Field(i).Set(reflect.ValueOf(&PoolHandle{
			prefix: prefix,
			limit:  limit,
			access: access,
		}))
	}
	return nil
}

// Finalise - close the database
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.db {
		globalData.db.Close()
		globalData.db = nil
	}
	globalData.trx = nil

	if nil != globalData.log {
		globalData.log.Info("closed")
		globalData.log.Flush()
	}
}

// NewDBTransaction - start the single write transaction
//
// fails if a previous transaction has not been committed or aborted
func NewDBTransaction() (Transaction, error) {
	globalData.RLock()
	trx := globalData.trx
	globalData.RUnlock()

	if nil == trx {
		return nil, fault.DatabaseIsNotSet
	}
	if err := trx.Begin(); nil != err {
		return nil, err
	}
	return trx, nil
}
