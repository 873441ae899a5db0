// This file is part of Totem.
//
// Totem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Totem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Totem.  If not, see <https://www.gnu.org/licenses/>.

package profile

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/logger"
)

// writes to the profile file within this period of one another are treated
// as a single change
const coalescePeriod = 250 * time.Millisecond

// Watcher monitors a profile file for changes. A freshly loaded Node is made
// available on the Reloaded() channel after every change.
type Watcher struct {
	filename  string
	overrides Overrides

	watcher  *fsnotify.Watcher
	reloaded chan *Node
	done     chan struct{}
}

// Watch the named profile file. The overrides are applied to every reloaded
// profile.
//
// The directory containing the file is watched rather than the file itself
// because many editors save by replacing the file.
func Watch(filename string, ov Overrides) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, curated.Errorf(WatchError, err)
	}

	w := &Watcher{
		filename:  abs,
		overrides: ov,
		reloaded:  make(chan *Node, 1),
		done:      make(chan struct{}),
	}

	w.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatchError, err)
	}

	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		w.watcher.Close()
		return nil, curated.Errorf(WatchError, err)
	}

	go w.loop()

	logger.Logf(logger.Allow, "profile", "watching %s", abs)

	return w, nil
}

// Reloaded returns the channel on which reloaded profiles are sent. Only the
// most recent profile is kept if the channel is not serviced promptly. The
// channel is closed when the Watcher is closed.
func (w *Watcher) Reloaded() <-chan *Node {
	return w.reloaded
}

// Close stops the Watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.reloaded)

	timer := time.NewTimer(coalescePeriod)
	timer.Stop()

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.filename {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				timer.Reset(coalescePeriod)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "profile", curated.Errorf(WatchError, err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	n, err := Load(w.filename)
	if err != nil {
		logger.Log(logger.Allow, "profile", err)
		return
	}

	if err := n.Apply(w.overrides); err != nil {
		logger.Log(logger.Allow, "profile", err)
	}

	logger.Logf(logger.Allow, "profile", "reloaded %s", w.filename)

	// replace any profile that hasn't been collected yet
	select {
	case <-w.reloaded:
	default:
	}
	w.reloaded <- n
}
