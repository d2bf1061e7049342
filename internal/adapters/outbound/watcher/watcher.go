package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultSettle is how long a folder must stay quiet before a change is
// reported. Editors tend to save in bursts.
const DefaultSettle = 300 * time.Millisecond

// FolderWatcher reports changes to the .csv files of one log folder.
// Only .csv names count, so writing the report file never retriggers.
type FolderWatcher struct {
	dir    string
	settle time.Duration
	log    zerolog.Logger
}

func New(dir string, settle time.Duration, log zerolog.Logger) *FolderWatcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &FolderWatcher{dir: dir, settle: settle, log: log}
}

// Run blocks until ctx is done, calling onChange with the sorted base names
// of the .csv files touched since the previous call.
func (w *FolderWatcher) Run(ctx context.Context, onChange func(names []string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	w.log.Debug().Str("dir", w.dir).Msg("watching log folder")

	pending := map[string]struct{}{}
	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("log file changed")
			pending[filepath.Base(event.Name)] = struct{}{}
			timer.Reset(w.settle)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("file watcher error")

		case <-timer.C:
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			pending = map[string]struct{}{}
			onChange(names)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".csv" {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
