// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time for the log writer to reach the disk before a panic unwinds
const flushDelay = 100 * time.Millisecond

var panicLog *logger.L

// Initialise - open the channel used by Panicf and PanicIfError
func Initialise() error {
	if nil != panicLog {
		return AlreadyInitialised
	}
	panicLog = logger.New("PANIC")
	if nil == panicLog {
		return InvalidLoggerChannel
	}
	return nil
}

// Finalise - flush the channel
func Finalise() {
	if nil != panicLog {
		panicLog.Flush()
	}
}

// Panicf - record the caller position and message, then panic
//
// for states that mean the database no longer matches its invariants
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	critical(callerOf(message))
	panic(message)
}

// PanicIfError - Panicf when err is set
func PanicIfError(operation string, err error) {
	if nil != err {
		message := fmt.Sprintf("%s: %s", operation, err)
		critical(callerOf(message))
		panic(message)
	}
}

func callerOf(message string) string {
	if _, file, line, ok := runtime.Caller(2); ok {
		return fmt.Sprintf("%s:%d: %s", file, line, message)
	}
	return message
}

// before Initialise messages go to stdout
func critical(message string) {
	if nil == panicLog {
		fmt.Printf("*** %s\n", message)
		return
	}
	panicLog.Critical(message)
	panicLog.Flush()
	time.Sleep(flushDelay)
}
