// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"cogentcore.org/core/base/errors"
	"github.com/kitsne241/drift/editor"
	"github.com/kitsne241/drift/expr"
	"github.com/kitsne241/drift/reconcile"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Print the code of an expression file every time it changes",
		Long: `watch renders and reconciles an expression file every time it changes,
after the settle delay, and prints its code or the reason it failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mu sync.Mutex
			return watch(cmd.Context(), args[0], a.settleDelay(), func(root *expr.Node, err error) {
				if err == nil {
					_, err = reconcile.Render(root, a.cfg.Renderer())
				}
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), a.paint(err.Error(), colorError))
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), root.Code())
			})
		},
	}
}

// watch calls fn with the expression in the given file, first right away
// and then after every change of the file, debounced by the given delay.
// It returns when ctx is done.
func watch(ctx context.Context, filename string, delay time.Duration, fn func(root *expr.Node, err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors often replace a file rather than write it,
	// so the directory is watched
	filename = filepath.Clean(filename)
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	load := func() {
		fn(expr.Open(filename))
	}
	s := editor.NewSettler(max(delay, 0), load)
	defer s.Stop()
	load()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filename || ev.Op == fsnotify.Chmod {
				continue
			}
			s.Schedule()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
