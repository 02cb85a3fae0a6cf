// Package app wires the camera, hand detector, calculator session and overlay into
// the interactive frame loop.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cyclopcam/logs"
	"gocv.io/x/gocv"

	"github.com/ayusman/fingercalc/internal/calc"
	"github.com/ayusman/fingercalc/internal/capture"
	"github.com/ayusman/fingercalc/internal/detector"
	"github.com/ayusman/fingercalc/internal/overlay"
	"github.com/ayusman/fingercalc/internal/session"
	"github.com/ayusman/fingercalc/internal/tray"
)

// KeyWait is how long each iteration waits for a key press.
const KeyWait = 10 * time.Millisecond

// Display shows frames and reports key presses.
type Display interface {
	Show(frame *gocv.Mat)
	PollKey(wait time.Duration) (rune, bool)
	Close() error
}

// Config holds configuration options for the application.
type Config struct {
	Camera   capture.Config
	Detector detector.Config
	Session  session.Config
	// UseMock skips MediaPipe and uses the mock detector.
	UseMock bool
	// Replay names a recording of hand service output to play back instead of
	// running MediaPipe.
	Replay string
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Camera:   capture.DefaultConfig(),
		Detector: detector.DefaultConfig(),
		Session:  session.DefaultConfig(),
	}
}

// App is the finger calculator. Everything except the tray runs on the goroutine
// that calls Run.
type App struct {
	config   Config
	log      logs.Log
	camera   capture.Camera
	detector detector.Detector
	session  *session.Session
	renderer *overlay.Renderer
	display  Display
	commands <-chan tray.Command
	console  io.Writer
	now      func() time.Time
	onResult func(string)
}

// New creates a new App instance with the given configuration.
func New(log logs.Log, config Config) *App {
	a := &App{
		config:   config,
		log:      log,
		camera:   capture.NewCamera(config.Camera),
		session:  session.New(config.Session),
		renderer: overlay.NewRenderer(),
		console:  os.Stdout,
		now:      time.Now,
	}

	a.detector = newDetector(log, config)

	return a
}

// newDetector picks the hand detector: a replay or the mock when asked for, otherwise
// MediaPipe with the mock as fallback.
func newDetector(log logs.Log, config Config) detector.Detector {
	if config.Replay != "" {
		d, err := openReplay(config.Replay)
		if err == nil {
			log.Infof("Replaying %d recorded frames from %v", d.Len(), config.Replay)
			return d
		}
		log.Warnf("Cannot replay %v (%v), using mock detector", config.Replay, err)
		return newStandInDetector(log)
	}

	if config.UseMock {
		log.Infof("Using mock hand detection")
		return newStandInDetector(log)
	}

	// Try MediaPipe first, fall back to mock detector
	mp, err := detector.NewMediaPipeDetector(log, config.Detector)
	if err == nil {
		log.Infof("Using MediaPipe hand detection")
		return mp
	}
	log.Warnf("MediaPipe not available (%v), using mock detector", err)
	return newStandInDetector(log)
}

// newStandInDetector returns a mock that always sees one open right palm, so the
// calculator can still be driven end to end from the keyboard.
func newStandInDetector(log logs.Log) *detector.MockDetector {
	m := detector.NewMockDetector()
	m.SetHands([]detector.HandLandmarks{detector.OpenPalmLandmarks()})
	log.Warnf("No live hand tracking: every frame shows an open palm (5 fingers, divide gesture)")
	return m
}

func openReplay(path string) (*detector.ReplayDetector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return detector.NewReplayDetector(f, true)
}

// SetCamera replaces the frame source.
func (a *App) SetCamera(c capture.Camera) { a.camera = c }

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) { a.detector = d }

// SetDisplay replaces the preview window. Run opens a window when none is set.
func (a *App) SetDisplay(d Display) { a.display = d }

// SetCommands connects a command source such as the tray menu.
func (a *App) SetCommands(ch <-chan tray.Command) { a.commands = ch }

// SetConsole redirects the user-facing notices, which go to stdout by default.
func (a *App) SetConsole(w io.Writer) { a.console = w }

// SetClock replaces time.Now.
func (a *App) SetClock(now func() time.Time) { a.now = now }

// OnResult registers a callback that receives each computed expression.
func (a *App) OnResult(fn func(expression string)) { a.onResult = fn }

// Session returns the calculator state.
func (a *App) Session() *session.Session { return a.session }

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector { return a.detector }

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera { return a.camera }

// report prints an event and publishes the result once one is available.
func (a *App) report(e session.Event) {
	if msg := e.String(); msg != "" {
		fmt.Fprintln(a.console, msg)
		a.log.Debugf("session %v: %v (stage %v)", a.session.ID(), msg, a.session.Stage())
	}
	if !e.Changed() {
		return
	}
	r, ok := a.session.Result()
	if !ok {
		return
	}
	op, _ := a.session.Operator()
	expr := calc.Expression(a.session.First(), a.session.Second(), op, r)
	a.log.Infof("session %v: %v", a.session.ID(), expr)
	if a.onResult != nil {
		a.onResult(expr)
	}
}
