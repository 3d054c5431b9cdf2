package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// SettingsWatcher reloads a YAML settings file whenever it changes on disk.
// Reloaded settings are handed to the game loop through Poll, so nothing
// outside the loop goroutine ever touches live state.
type SettingsWatcher struct {
	path    string
	base    Settings
	watcher *fsnotify.Watcher
	updates chan Settings
	done    chan struct{}
}

// WatchSettingsFile starts watching path. The parent directory is watched
// rather than the file itself so that editors which replace the file on save
// keep triggering reloads.
func WatchSettingsFile(path string, base Settings) (*SettingsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &SettingsWatcher{
		path:    abs,
		base:    base,
		watcher: fw,
		updates: make(chan Settings, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *SettingsWatcher) run() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			s, err := LoadSettingsFile(w.path, w.base)
			if err != nil {
				log.Printf("[settings] reload %s: %v", w.path, err)
				continue
			}
			w.publish(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[settings] watch error: %v", err)
		}
	}
}

// publish keeps only the latest reload.
func (w *SettingsWatcher) publish(s Settings) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- s
}

// Poll returns the most recent reload, if any. It never blocks.
func (w *SettingsWatcher) Poll() (Settings, bool) {
	select {
	case s := <-w.updates:
		return s, true
	default:
		return Settings{}, false
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *SettingsWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
