package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// watch reloads the container when another process changes the data file. The
// directory is watched because editors often replace the file instead of writing it.
func (c *Controller) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		_ = watcher.Close()

		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(c.path), err)
	}

	c.watcher = watcher

	go c.watchLoop(watcher)

	return nil
}

func (c *Controller) watchLoop(watcher *fsnotify.Watcher) {
	target := filepath.Clean(c.path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}

			log.Debug().Str("event", event.String()).Msg("data file changed")

			c.app.QueueUpdateDraw(func() {
				if time.Since(c.lastSave) < ownWriteWindow {
					return
				}

				c.reload()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (c *Controller) stopWatching() {
	if c.watcher != nil {
		_ = c.watcher.Close()
	}
}
