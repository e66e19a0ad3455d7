// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple, readable log/slog handler with
// leveled, colored output for command-line tools and examples.
// Library packages log only through their returned errors; logx is
// where a binary decides how those end up on the screen.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected for
// this process. Anything at this level or above is logged. It defaults
// per build tag (debug builds default to [slog.LevelDebug]).
var UserLevel = defaultUserLevel

// Init sets the default [slog] logger to a new [Handler] writing
// to standard error at [UserLevel].
func Init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
