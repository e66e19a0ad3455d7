// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it if it is non-nil, adding the
// file and line of the caller. It returns the error unchanged so that
// it can be used in line with a return statement.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and logs the error if it is
// non-nil, returning just the value. It is useful for passing through
// the result of a function that returns a value and an error.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil. It should only be used
// when the error indicates an unrecoverable programming bug, such as
// a contract violation during construction.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the given value, panicking if the given error is
// non-nil. See [Must].
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// Ignore1 returns the given value, ignoring any error.
// It makes it explicit that the error is being ignored.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns the file and line of the caller two
// levels up the call stack, for use in error log messages.
func CallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown caller"
	}
	return file + ":" + strconv.Itoa(line)
}
