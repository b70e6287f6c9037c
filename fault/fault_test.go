// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/wramd/fault"
)

var (
	ErrDisabledOne   = fault.DisabledError("disabled one")
	ErrExistsOne     = fault.ExistsError("exists one")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrLimitOne      = fault.LimitError("limit one")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrPermissionOne = fault.PermissionError("permission one")
	ErrProcessOne    = fault.ProcessError("process one")
)

// test that the error classes are distinct
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		disabled   bool
		exists     bool
		invalid    bool
		limit      bool
		notFound   bool
		permission bool
		process    bool
	}{
		{ErrDisabledOne, true, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false},
		{ErrLimitOne, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrPermissionOne, false, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, false, true},
		{fault.WrapDisabled, true, false, false, false, false, false, false},
		{fault.AlreadyMigrated, false, true, false, false, false, false, false},
		{fault.OverdrawnBalance, false, false, false, true, false, false, false},
		{fault.MissingAuthority, false, false, false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrDisabled(err) != e.disabled {
			t.Errorf("%d: expected 'disabled' == %v for err = %v", i, e.disabled, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLimit(err) != e.limit {
			t.Errorf("%d: expected 'limit' == %v for err = %v", i, e.limit, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicIfError(t *testing.T) {
	fault.PanicIfError("no error", nil)

	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("expected panic")
		}
		if s, ok := r.(string); !ok || "write pool: invalid one" != s {
			t.Errorf("panic value: %v", r)
		}
	}()
	fault.PanicIfError("write pool", ErrInvalidOne)
}

func TestPanicf(t *testing.T) {
	defer func() {
		if r := recover(); "pool: 7 rows" != r {
			t.Errorf("panic value: %v", r)
		}
	}()
	fault.Panicf("pool: %d rows", 7)
}
