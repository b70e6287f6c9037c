// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free connection counting for the listeners
package counter

import (
	"sync/atomic"
)

// Counter - number of connections in use
type Counter uint64

// Increment - add one, returns the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract one, returns the new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// Acquire - take a slot if fewer than maximum are in use
//
// a successful Acquire must be paired with Release
func (c *Counter) Acquire(maximum uint64) bool {
	if c.Increment() <= maximum {
		return true
	}
	c.Decrement()
	return false
}

// Release - give back a slot
func (c *Counter) Release() {
	c.Decrement()
}
