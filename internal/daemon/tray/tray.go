package tray

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"github.com/getlantern/systray"

	"github.com/huddle-sh/huddle/internal/config"
)

var (
	state   DaemonState
	onStart func()
	onExit  func()

	portItem      *systray.MenuItem
	generatedItem *systray.MenuItem
	projectsItem  *systray.MenuItem
	refreshItem   *systray.MenuItem
	dashboardItem *systray.MenuItem
	quitItem      *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (launch gRPC server here).
// onExitFn is called when the tray exits (cleanup here).
func Run(s DaemonState, onStartFn, onExitFn func()) {
	state = s
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTooltip(formatTooltip(0))

	// Header
	header := systray.AddMenuItem("Huddle Daemon", "")
	header.Disable()

	portItem = systray.AddMenuItem("Starting...", "")
	portItem.Disable()

	generatedItem = systray.AddMenuItem("Not generated yet", "")
	generatedItem.Disable()

	projectsItem = systray.AddMenuItem("0 projects tracked", "")
	projectsItem.Disable()

	systray.AddSeparator()

	refreshItem = systray.AddMenuItem("Refresh now", "Regenerate the dashboard immediately")
	dashboardItem = systray.AddMenuItem("Open dashboard", "Open the dashboard file")
	quitItem = systray.AddMenuItem("Quit", "Shut down Huddle daemon")

	// Start the daemon services
	if onStart != nil {
		onStart()
	}

	// Update display now that the server is started
	if state != nil {
		portItem.SetTitle(fmt.Sprintf("Running on port: %d", state.Port()))
		UpdateStatus()
	}

	go handleClicks()
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-refreshItem.ClickedCh:
			if state != nil {
				go func() {
					state.Refresh()
					UpdateStatus()
				}()
			}

		case <-dashboardItem.ClickedCh:
			openDashboard()

		case <-quitItem.ClickedCh:
			if state != nil {
				state.RequestShutdown()
			}
		}
	}
}

// UpdateStatus refreshes the last-generated line, project count, and tooltip.
func UpdateStatus() {
	if state == nil {
		return
	}

	if last := state.LastGenerated(); last != "" {
		generatedItem.SetTitle("Last generated: " + last)
	} else {
		generatedItem.SetTitle("Not generated yet")
	}

	count := state.ProjectCount()
	projectsItem.SetTitle(fmt.Sprintf("%d projects tracked", count))
	systray.SetTooltip(formatTooltip(count))
}

func formatTooltip(projects int) string {
	return fmt.Sprintf("Huddle: %d projects tracked", projects)
}

// openDashboard opens the dashboard file with the platform's default opener.
func openDashboard() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Printf("Failed to load settings: %v", err)
		return
	}
	path, err := config.DashboardPath(settings)
	if err != nil {
		log.Printf("Failed to resolve dashboard path: %v", err)
		return
	}

	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	if err := exec.Command(opener, path).Start(); err != nil {
		log.Printf("Failed to open dashboard: %v", err)
	}
}
