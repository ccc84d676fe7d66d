/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path into env, via (load "path"), every time the file
// changes on disk, per SPEC_FULL.md §4.9's -watch flag. It runs until the
// watcher is closed or its process exits; reload errors are logged, not
// fatal, matching load's existing "report and keep the REPL alive"
// behavior.
func Watch(env *Environment, path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	var mu sync.Mutex
	reload := func() {
		mu.Lock()
		defer mu.Unlock()
		result := builtinLoad(env, sexpr(str(path)))
		if result.IsError() {
			log.Printf("watch %s: %s", path, result)
		} else {
			log.Printf("watch %s: reloaded", path)
		}
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					reload()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watch %s: %s", path, err)
			}
		}
	}()

	reload()
	return w, nil
}
