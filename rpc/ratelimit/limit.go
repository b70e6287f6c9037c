// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - request throttling shared by the RPC handlers
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/wramd/fault"
)

// New - limiter allowing limit requests per second with a burst
func New(limit float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(limit), burst)
}

// Limit - delay the caller until one request slot is free
func Limit(limiter *rate.Limiter) error {
	return wait(limiter.Reserve())
}

// LimitN - delay until count slots are free
//
// an out of range count costs one slot and then fails
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count > 0 && count <= maximumCount {
		return wait(limiter.ReserveN(time.Now(), count))
	}
	if err := wait(limiter.Reserve()); nil != err {
		return err
	}
	return fault.InvalidCount
}

// a reservation larger than the burst can never be met
func wait(r *rate.Reservation) error {
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
