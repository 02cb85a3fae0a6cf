// Package tray provides an optional system tray menu for the finger calculator.
//
// Menu clicks arrive on the tray library's goroutine. They are turned into Commands on
// a buffered channel that the frame loop drains, so the session is only ever touched
// by the loop.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Command is a request from the tray menu.
type Command int

const (
	// CommandReset starts a new calculation.
	CommandReset Command = iota
	// CommandQuit stops the application.
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	}
	return "unknown"
}

// DefaultBuffer is the number of unprocessed clicks kept before new ones are dropped.
const DefaultBuffer = 8

// Tray represents the system tray application.
type Tray struct {
	commands chan Command
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuLastResult *systray.MenuItem
	lastResult     string
}

// New creates a Tray whose command channel holds up to buffer clicks.
func New(buffer int) *Tray {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Tray{
		commands: make(chan Command, buffer),
	}
}

// Commands returns the channel menu clicks are delivered on.
func (t *Tray) Commands() <-chan Command {
	return t.commands
}

// Run starts the system tray application.
// This function blocks until Quit is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit removes the tray icon and makes Run return.
func (t *Tray) Quit() {
	systray.Quit()
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Finger Calculator")
	systray.SetTooltip("Finger Calculator")

	t.mu.Lock()
	t.menuLastResult = systray.AddMenuItem(lastTitle(t.lastResult), "Last computed result")
	t.menuLastResult.Disable()
	t.mu.Unlock()
	systray.AddSeparator()

	menuReset := systray.AddMenuItem("Reset", "Start a new calculation")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Finger Calculator")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-menuReset.ClickedCh:
				t.handleReset()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {}

func (t *Tray) handleReset() {
	t.send(CommandReset)
}

func (t *Tray) handleQuit() {
	t.send(CommandQuit)
}

// send queues c without blocking the menu goroutine. Clicks beyond the buffer are
// dropped; it reports whether c was queued.
func (t *Tray) send(c Command) bool {
	select {
	case t.commands <- c:
		return true
	default:
		return false
	}
}

// SetLastResult updates the last result line in the menu.
func (t *Tray) SetLastResult(result string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastResult = result
	if t.menuLastResult != nil {
		t.menuLastResult.SetTitle(lastTitle(result))
	}
}

// LastResult returns the text shown on the last result line.
func (t *Tray) LastResult() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return lastTitle(t.lastResult)
}

func lastTitle(result string) string {
	if result == "" {
		return "Last: none"
	}
	return "Last: " + result
}
