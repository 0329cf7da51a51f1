// Package watcher handles file system watching for the daemon.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/models"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventRegistryChanged EventType = iota
	EventStandupChanged
	EventStandupRemoved
)

// Event represents a file system change event.
type Event struct {
	Type      EventType
	ProjectID string
	Path      string
}

// Watcher watches the project registry and every tracked project's
// stand-up file for changes.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	mu         sync.RWMutex
	standups   map[string]string // projectID -> absolute stand-up path
	watchDirs  map[string]int    // directory -> refcount
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a new file system watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 100),
		done:       make(chan struct{}),
		standups:   make(map[string]string),
		watchDirs:  make(map[string]int),
		debounce:   make(map[string]*time.Timer),
	}

	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	// Watch the global dir for projects.yaml changes
	globalDir, err := config.GlobalDir()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(globalDir); err != nil {
		log.Printf("Warning: failed to watch global dir: %v", err)
	}

	go w.processEvents()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

// SetProjects replaces the watched project set. Stand-up files are watched
// through their parent directory so atomic replaces (write tmp, rename over
// target) are still observed.
func (w *Watcher) SetProjects(projects []models.ProjectEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Drop watches for directories no longer referenced
	for dir := range w.watchDirs {
		w.watchDirs[dir] = 0
	}

	standups := make(map[string]string, len(projects))
	for _, p := range projects {
		path := p.StandupPath()
		standups[p.ProjectID] = path
		w.watchDirs[filepath.Dir(path)]++
	}

	for dir, refs := range w.watchDirs {
		if refs == 0 {
			_ = w.fsWatcher.Remove(dir)
			delete(w.watchDirs, dir)
			continue
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			// Repo might be temporarily unavailable; the next scheduled
			// run will still pick it up.
			log.Printf("Warning: failed to watch %s: %v", dir, err)
		}
	}

	w.standups = standups
	log.Printf("[watcher] watching %d stand-up files in %d directories", len(standups), len(w.watchDirs))
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// handleEvent processes a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, rename, and remove events. Rename matters:
	// editors that write a temp file and rename it over the target
	// produce Rename/Create instead of Write.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	w.debounceEvent(event.Name, func() {
		w.processFileChange(event.Name, event.Op)
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

// processFileChange handles a debounced file change.
func (w *Watcher) processFileChange(path string, op fsnotify.Op) {
	filename := filepath.Base(path)

	if filename == config.ProjectsFileName {
		w.eventsChan <- Event{
			Type: EventRegistryChanged,
			Path: path,
		}
		return
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	for projectID, standupPath := range w.standups {
		if path != standupPath {
			continue
		}

		eventType := EventStandupChanged
		if op&fsnotify.Remove != 0 {
			eventType = EventStandupRemoved
		}
		w.eventsChan <- Event{
			Type:      eventType,
			ProjectID: projectID,
			Path:      path,
		}
		return
	}
}
