// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] whose output is optimized for
// reading in a terminal: a colored level label, the message, and
// key=value attributes, one record per line.
type Handler struct {
	mu      sync.Mutex
	w       io.Writer
	profile termenv.Profile
	attrs   []slog.Attr
	groups  []string
}

// NewHandler returns a new [Handler] writing to the given writer,
// with colors enabled when the writer supports them.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		w:       w,
		profile: termenv.NewOutput(w).Profile,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelLabel returns the colored label for the given level.
func (h *Handler) levelLabel(level slog.Level) string {
	var label, color string
	switch {
	case level >= slog.LevelError:
		label, color = "ERROR", "1" // red
	case level >= slog.LevelWarn:
		label, color = "WARN", "3" // yellow
	case level >= slog.LevelInfo:
		label, color = "INFO", "4" // blue
	default:
		label, color = "DEBUG", "5" // magenta
	}
	return h.profile.String(label).Foreground(h.profile.Color(color)).Bold().String()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(h.levelLabel(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	writeAttr := func(a slog.Attr, prefix string) {
		if a.Equal(slog.Attr{}) {
			return
		}
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		key = h.profile.String(key).Faint().String()
		fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve())
	}
	for _, a := range h.attrs {
		// pre-set attrs were already prefixed by the groups open at [Handler.WithAttrs] time
		writeAttr(a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a, prefix)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")
	pre := h.attrs[:len(h.attrs):len(h.attrs)]
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		pre = append(pre, a)
	}
	return &Handler{
		w:       h.w,
		profile: h.profile,
		attrs:   pre,
		groups:  h.groups,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := &Handler{
		w:       h.w,
		profile: h.profile,
		attrs:   h.attrs,
		groups:  append(h.groups[:len(h.groups):len(h.groups)], name),
	}
	return nh
}
