package app

import (
	"context"
	"fmt"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/fingercalc/internal/detector"
	"github.com/ayusman/fingercalc/internal/overlay"
	"github.com/ayusman/fingercalc/internal/session"
	"github.com/ayusman/fingercalc/internal/tray"
)

// Run executes the frame loop until the user quits, ctx is cancelled or the camera
// stops delivering frames. Each iteration reads a frame, detects hands, updates the
// session, draws the overlay, shows the frame and polls the keyboard.
//
// A failed read ends the loop with an error wrapping capture.ErrReadFrame. The
// camera, detector and window are released on every exit path.
func (a *App) Run(ctx context.Context) error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer func() {
		if err := a.camera.Close(); err != nil {
			a.log.Errorf("Error closing camera: %v", err)
		}
		if err := a.detector.Close(); err != nil {
			a.log.Errorf("Error closing detector: %v", err)
		}
	}()

	if a.display == nil {
		a.display = overlay.NewWindow(overlay.WindowTitle)
	}
	defer func() {
		if err := a.display.Close(); err != nil {
			a.log.Errorf("Error closing window: %v", err)
		}
	}()

	a.log.Infof("Frame loop started (session %v)", a.session.ID())
	defer a.log.Infof("Frame loop stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}
		if a.drainCommands() {
			return nil
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}

		now := a.now()
		view := a.ProcessFrame(frame, now)
		a.renderer.Draw(frame, view)
		a.display.Show(frame)
		frame.Close()

		key, ok := a.display.PollKey(KeyWait)
		if !ok {
			continue
		}
		if e := a.HandleKey(key, a.now()); e.Kind == session.EventQuit {
			return nil
		}
	}
}

// ProcessFrame runs detection on frame and feeds the primary hand to the session.
// A detector error is logged and the frame is treated as having no hand.
func (a *App) ProcessFrame(frame *gocv.Mat, now time.Time) overlay.View {
	hands, err := a.detector.Detect(frame)
	if err != nil {
		a.log.Warnf("Error detecting hands: %v", err)
		hands = nil
	}

	var hand *detector.HandLandmarks
	if len(hands) > 0 {
		hand = &hands[0]
	}

	f := a.session.Observe(hand, now)
	a.report(f.Event)
	return overlay.NewView(a.session, f, now)
}

// HandleKey applies a key press to the session.
func (a *App) HandleKey(key rune, now time.Time) session.Event {
	e := a.session.HandleKey(key, now)
	a.report(e)
	return e
}

// drainCommands applies all queued commands and reports whether one asked to quit.
func (a *App) drainCommands() bool {
	for {
		select {
		case c := <-a.commands:
			a.log.Infof("Tray command: %v", c)
			switch c {
			case tray.CommandReset:
				a.HandleKey(session.KeyReset, a.now())
			case tray.CommandQuit:
				return true
			}
		default:
			return false
		}
	}
}
