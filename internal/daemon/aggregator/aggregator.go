// Package aggregator owns the dashboard generation loop for the daemon.
package aggregator

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/daemon/watcher"
	"github.com/huddle-sh/huddle/internal/dashboard"
	"github.com/huddle-sh/huddle/internal/models"
	"github.com/huddle-sh/huddle/internal/standup"
)

// Aggregator regenerates the dashboard on a fixed schedule and whenever a
// tracked stand-up file or the registry changes.
type Aggregator struct {
	collector *standup.Collector
	watcher   *watcher.Watcher
	interval  time.Duration
	done      chan struct{}
	stopOnce  sync.Once

	runMu   sync.Mutex // serializes generation runs
	stateMu sync.RWMutex
	lastRun *models.RunEntry
}

// New creates an aggregator with the interval from settings.
func New() (*Aggregator, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	interval := time.Duration(settings.Dashboard.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	w, err := watcher.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Aggregator{
		collector: standup.NewCollector(),
		watcher:   w,
		interval:  interval,
		done:      make(chan struct{}),
	}, nil
}

// Start performs an initial generation, wires up the watcher, and launches
// the schedule loop.
func (a *Aggregator) Start() error {
	if err := a.watcher.Start(); err != nil {
		return err
	}
	if err := a.refreshWatchSet(); err != nil {
		log.Printf("Warning: failed to set up watches: %v", err)
	}

	if _, err := a.Run(models.TriggerManual); err != nil {
		log.Printf("Initial generation failed: %v", err)
	}

	go a.loop()
	return nil
}

// Stop shuts down the schedule loop and the watcher.
func (a *Aggregator) Stop() {
	a.stopOnce.Do(func() {
		close(a.done)
		a.watcher.Stop()
	})
}

// Interval returns the configured generation interval.
func (a *Aggregator) Interval() time.Duration {
	return a.interval
}

// LastRun returns the most recent generation run, or nil before the first.
func (a *Aggregator) LastRun() *models.RunEntry {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.lastRun
}

// ProjectCount returns the number of registered projects.
func (a *Aggregator) ProjectCount() int {
	index, err := config.LoadProjectsIndex()
	if err != nil {
		return 0
	}
	return len(index.Projects)
}

// loop dispatches scheduled ticks and watcher events to generation runs.
func (a *Aggregator) loop() {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.done:
			return

		case <-ticker.C:
			if _, err := a.Run(models.TriggerSchedule); err != nil {
				log.Printf("Scheduled generation failed: %v", err)
			}

		case event, ok := <-a.watcher.Events():
			if !ok {
				return
			}
			if event.Type == watcher.EventRegistryChanged {
				if err := a.refreshWatchSet(); err != nil {
					log.Printf("Warning: failed to refresh watches: %v", err)
				}
			}
			if _, err := a.Run(models.TriggerWatcher); err != nil {
				log.Printf("Watcher-triggered generation failed: %v", err)
			}
		}
	}
}

// refreshWatchSet points the watcher at the current registry contents.
func (a *Aggregator) refreshWatchSet() error {
	index, err := config.LoadProjectsIndex()
	if err != nil {
		return err
	}
	a.watcher.SetProjects(index.Projects)
	return nil
}

// Run executes one generation cycle: collect, render, write, record.
// Concurrent calls are serialized; each caller gets its own run.
func (a *Aggregator) Run(trigger string) (*models.RunEntry, error) {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	startedAt := time.Now().UTC()
	run := &models.RunEntry{
		RunID:     config.NewRunID(trigger, startedAt),
		Trigger:   trigger,
		StartedAt: startedAt.Format(time.RFC3339),
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return a.finishRun(run, nil, fmt.Errorf("failed to load settings: %w", err))
	}
	outputPath, err := config.DashboardPath(settings)
	if err != nil {
		return a.finishRun(run, nil, err)
	}

	entries, err := a.collector.Collect()
	if err != nil {
		return a.finishRun(run, nil, fmt.Errorf("failed to collect stand-ups: %w", err))
	}

	run.Projects = len(entries)
	details := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Missing() {
			run.Missing++
			details = append(details, fmt.Sprintf("%s: no stand-up found", e.Project))
		} else {
			details = append(details, fmt.Sprintf("%s: ok (%d sections, modified %s)",
				e.Project, len(e.Report.Sections), e.ModTime.UTC().Format(time.RFC3339)))
		}
	}

	renderer := dashboard.NewRenderer(settings)
	content := renderer.Render(entries, startedAt)

	written, err := dashboard.WriteIfChanged(outputPath, content)
	if err != nil {
		return a.finishRun(run, details, err)
	}
	run.Written = written

	log.Printf("[aggregator] run %s: %d projects, %d missing, written=%t",
		run.RunID, run.Projects, run.Missing, run.Written)

	return a.finishRun(run, details, nil)
}

// finishRun stamps the run, persists its log, and records it as the latest.
func (a *Aggregator) finishRun(run *models.RunEntry, details []string, runErr error) (*models.RunEntry, error) {
	run.EndedAt = time.Now().UTC().Format(time.RFC3339)
	if runErr != nil {
		run.Status = "error: " + runErr.Error()
	} else {
		run.Status = "ok"
	}

	if err := config.WriteRunLog(run, details); err != nil {
		log.Printf("Warning: failed to write run log: %v", err)
	}

	a.stateMu.Lock()
	a.lastRun = run
	a.stateMu.Unlock()

	return run, runErr
}
