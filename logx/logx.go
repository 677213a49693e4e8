// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog handler for the command line
// tools, with levels colored on terminals that support it.
package logx

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default [slog.Logger] to write to os.Stderr
// at [UserLevel], coloring levels if the terminal supports it.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(termenv.NewOutput(os.Stderr), UserLevel)))
}

// NewHandler returns a text handler writing to out at the given level,
// with the level of each record colored according to the color profile of out.
func NewHandler(out *termenv.Output, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if l, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(LevelColor(out, l))
				}
			}
			return a
		},
	})
}

// LevelColor returns the name of the level colored for out:
// debug is faint, warn is yellow and error is red.
func LevelColor(out *termenv.Output, level slog.Level) string {
	s := out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case level < slog.LevelInfo:
		s = s.Faint()
	}
	return s.String()
}
