// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Watch watches and updates configuration when it changes.
// It blocks until ctx is done, or a watcher returns an error.
// WARNING: All loaders passed in Load after calling Watch do not get watched.
//
// Each delivered change fires a before/after pair of [EventReload] events
// around the recomputation of the merged configuration. The recomputation
// starts over from the provider trees, so direct mutations made with
// [Config.SetProperty] and friends do not survive a reload.
//
// It only can be called once. Call after first has no effects.
// It panics if ctx is nil.
func (c *Config) Watch(ctx context.Context) error {
	if ctx == nil {
		panic("cannot watch change with nil context")
	}

	c.nocopy.Check()

	var watchers []*provider
	for _, p := range c.providers {
		if _, ok := p.loader.(Watcher); ok {
			watchers = append(watchers, p)
		}
	}
	if len(watchers) == 0 {
		return nil
	}

	if c.watched.Swap(true) {
		c.logger.Warn("Config has been watched, call Watch again has no effects.")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Changed trees are handed to the reload goroutine instead of being
	// assigned by the watcher goroutines, so that provider trees have a
	// single writer even when several watchers fire at once.
	type change struct {
		provider *provider
		tree     *Node
	}
	changes := make(chan change)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		for {
			select {
			case changed := <-changes:
				changed.provider.tree = changed.tree
				c.fire(EventReload, "", nil, true)
				c.rebuild()
				c.fire(EventReload, "", nil, false)
				c.logger.DebugContext(ctx, "Configuration has been updated with change.",
					"loader", changed.provider.loader,
				)

			case <-ctx.Done():
				return nil
			}
		}
	})

	for _, p := range watchers {
		p := p
		watcher := p.loader.(Watcher)

		group.Go(func() error {
			onChange := func(tree *Node) {
				if tree == nil {
					tree = NewNode("")
				}

				select {
				case changes <- change{provider: p, tree: tree}:
					c.logger.InfoContext(ctx, "Configuration has been changed.",
						"loader", watcher,
					)
				case <-ctx.Done():
				}
			}

			c.logger.DebugContext(ctx, "Watching configuration change.", "loader", watcher)
			if err := watcher.Watch(ctx, onChange); err != nil {
				return fmt.Errorf("watch configuration change: %w", err)
			}

			return nil
		})
	}

	return group.Wait()
}
