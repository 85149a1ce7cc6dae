// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel used for the last words of a failing program
var panicLog struct {
	sync.Mutex
	log *logger.L
}

// Initialise - attach the PANIC logger channel
//
// must be called after logger.Initialise; before that messages are
// written to standard output
func Initialise() error {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		return ErrAlreadyInitialised
	}
	panicLog.log = logger.New("PANIC")
	if nil == panicLog.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach the PANIC channel
func Finalise() {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		panicLog.log.Flush()
		panicLog.log = nil
	}
}

// Criticalf - log a formatted message prefixed by the caller's position
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log a formatted message and abort
func Panicf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
	Panic("abort, see last messages in log file")
}

// Panic - log the message and abort
func Panic(message string) {
	criticalf(0, "%s", message)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// PanicIfError - abort only if err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalf(0, "%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// depth 0 means do not add a caller position
func criticalf(depth int, format string, arguments ...interface{}) {
	if depth > 0 {
		if _, file, line, ok := runtime.Caller(depth); ok {
			format = "(%q:%d) " + format
			arguments = append([]interface{}{file, line}, arguments...)
		}
	}

	panicLog.Lock()
	defer panicLog.Unlock()

	if nil == panicLog.log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	panicLog.log.Criticalf(format, arguments...)
	panicLog.log.Flush()
}
