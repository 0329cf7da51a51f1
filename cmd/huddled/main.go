// Package main is the entry point for the huddled daemon.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/huddle-sh/huddle/internal/buildinfo"
	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/daemon/aggregator"
	"github.com/huddle-sh/huddle/internal/daemon/server"
	"github.com/huddle-sh/huddle/internal/daemon/tray"
	"github.com/huddle-sh/huddle/internal/models"
)

func main() {
	// Parse flags
	foreground := flag.Bool("foreground", false, "Run in foreground (for development)")
	port := flag.Int("port", 0, "Port to listen on (0 for dynamic allocation)")
	flag.Parse()

	log.SetPrefix("[huddled] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure global directory exists
	if err := config.EnsureGlobalDir(); err != nil {
		log.Fatalf("Failed to create global directory: %v", err)
	}

	// Check if daemon is already running
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		log.Fatalf("Failed to check daemon status: %v", err)
	}
	if running {
		log.Fatalf("Daemon already running on port %d (PID %d)", info.Port, info.PID)
	}

	if *foreground {
		log.Println("Running in foreground mode (no system tray)")
		runForeground(*port)
	} else {
		log.Println("Running in background mode (with system tray)")
		runWithTray(*port)
	}
}

// startServices creates the aggregator and gRPC server and records the
// daemon info file. The returned stop function tears everything down.
func startServices(port int, onShutdown func()) (*server.Server, *aggregator.Aggregator, error) {
	agg, err := aggregator.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create aggregator: %w", err)
	}

	srv, err := server.New(port, agg, onShutdown)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create server: %w", err)
	}

	if err := agg.Start(); err != nil {
		srv.Stop()
		return nil, nil, fmt.Errorf("failed to start aggregator: %w", err)
	}

	daemonInfo := models.NewDaemonInfo("localhost", srv.Port(), os.Getpid(), buildinfo.Version)
	if err := config.SaveDaemonInfo(daemonInfo); err != nil {
		agg.Stop()
		srv.Stop()
		return nil, nil, fmt.Errorf("failed to write daemon info: %w", err)
	}

	log.Printf("Daemon started on port %d (PID %d), interval %s",
		srv.Port(), os.Getpid(), agg.Interval())

	return srv, agg, nil
}

// runForeground runs the daemon without a system tray, blocking on signals.
func runForeground(port int) {
	shutdownCh := make(chan struct{}, 1)
	srv, agg, err := startServices(port, func() {
		shutdownCh <- struct{}{}
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for {
		select {
		case sig := <-sigCh:
			// SIGHUP triggers an immediate regeneration; anything else
			// shuts the daemon down.
			if sig == syscall.SIGHUP {
				log.Println("Received SIGHUP, regenerating dashboard")
				if _, err := agg.Run(models.TriggerSignal); err != nil {
					log.Printf("Regeneration failed: %v", err)
				}
				continue
			}
			log.Printf("Received signal %v, shutting down...", sig)
			shutdown(srv, agg)
			return

		case <-shutdownCh:
			log.Println("Shutdown requested via RPC")
			shutdown(srv, agg)
			return

		case err := <-errCh:
			log.Printf("Server error: %v", err)
			shutdown(srv, agg)
			return
		}
	}
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(port int) {
	// onStart runs on the systray goroutine while the tray click handlers
	// read the state from another, so the pointers live behind a mutex.
	state := &lazyDaemonState{}

	onStart := func() {
		srv, agg, err := startServices(port, tray.Quit)
		if err != nil {
			log.Fatalf("%v", err)
		}
		state.set(srv, agg)

		// Serve gRPC in background
		go func() {
			if err := srv.Serve(); err != nil {
				log.Printf("Server error: %v", err)
				tray.Quit()
			}
		}()

		// Handle OS signals
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
			for sig := range sigCh {
				if sig == syscall.SIGHUP {
					log.Println("Received SIGHUP, regenerating dashboard")
					if _, err := agg.Run(models.TriggerSignal); err != nil {
						log.Printf("Regeneration failed: %v", err)
					}
					tray.UpdateStatus()
					continue
				}
				log.Printf("Received signal %v, shutting down...", sig)
				tray.Quit()
				return
			}
		}()
	}

	onExit := func() {
		if srv, agg := state.services(); srv != nil {
			shutdown(srv, agg)
		}
	}

	// This blocks the main goroutine until tray exits.
	tray.Run(state, onStart, onExit)
}

func shutdown(srv *server.Server, agg *aggregator.Aggregator) {
	if agg != nil {
		agg.Stop()
	}
	srv.Stop()

	if err := config.RemoveDaemonInfo(); err != nil {
		log.Printf("Failed to remove daemon info: %v", err)
	}

	fmt.Println("Daemon stopped")
}

// lazyDaemonState wraps the live server/aggregator with lazy initialization.
// Both are nil at tray startup and created inside onStart, which runs on the
// systray goroutine; the mutex makes them safely visible to the tray's click
// handler goroutine.
type lazyDaemonState struct {
	mu  sync.Mutex
	srv *server.Server
	agg *aggregator.Aggregator
}

func (l *lazyDaemonState) set(srv *server.Server, agg *aggregator.Aggregator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.srv = srv
	l.agg = agg
}

func (l *lazyDaemonState) services() (*server.Server, *aggregator.Aggregator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.srv, l.agg
}

func (l *lazyDaemonState) Port() int {
	if srv, _ := l.services(); srv != nil {
		return srv.Port()
	}
	return 0
}

func (l *lazyDaemonState) ProjectCount() int {
	if _, agg := l.services(); agg != nil {
		return agg.ProjectCount()
	}
	return 0
}

func (l *lazyDaemonState) LastGenerated() string {
	_, agg := l.services()
	if agg == nil {
		return ""
	}
	run := agg.LastRun()
	if run == nil {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, run.EndedAt); err == nil {
		return t.Local().Format("15:04:05")
	}
	return run.EndedAt
}

func (l *lazyDaemonState) Refresh() {
	if _, agg := l.services(); agg != nil {
		if _, err := agg.Run(models.TriggerManual); err != nil {
			log.Printf("Refresh failed: %v", err)
		}
	}
}

func (l *lazyDaemonState) RequestShutdown() {
	if srv, _ := l.services(); srv != nil {
		srv.RequestShutdown()
	}
}
