package overlay

import (
	"time"

	"gocv.io/x/gocv"
)

// WindowTitle is the title of the preview window.
const WindowTitle = "Finger Calculator"

// Window is an OpenCV preview window that also reports key presses.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a preview window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show displays frame.
func (w *Window) Show(frame *gocv.Mat) {
	w.win.IMShow(*frame)
}

// PollKey waits up to wait for a key press.
func (w *Window) PollKey(wait time.Duration) (rune, bool) {
	ms := int(wait / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return KeyRune(w.win.WaitKey(ms))
}

// Close closes the window.
func (w *Window) Close() error {
	return w.win.Close()
}

// KeyRune converts a WaitKey code into a character. Codes below zero mean no key.
func KeyRune(code int) (rune, bool) {
	if code < 0 {
		return 0, false
	}
	return rune(code & 0xFF), true
}
