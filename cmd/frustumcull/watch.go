// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// settingsWatcher reports writes to one settings file. It watches the
// containing directory, so that files replaced on save are still seen.
type settingsWatcher struct {
	watcher *fsnotify.Watcher
	name    string
}

func newSettingsWatcher(filename string) (*settingsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	name := filepath.Clean(filename)
	if err := w.Add(filepath.Dir(name)); err != nil {
		w.Close()
		return nil, err
	}
	return &settingsWatcher{watcher: w, name: name}, nil
}

// run calls changed on every write or creation of the file, until ctx is done.
func (sw *settingsWatcher) run(ctx context.Context, changed func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.name || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Info("frustumcull: settings changed", "file", sw.name)
			changed()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("frustumcull: watching settings", "err", err)
		}
	}
}

func (sw *settingsWatcher) Close() error {
	return sw.watcher.Close()
}
