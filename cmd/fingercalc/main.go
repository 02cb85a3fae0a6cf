package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"

	"github.com/ayusman/fingercalc/internal/app"
	"github.com/ayusman/fingercalc/internal/capture"
	"github.com/ayusman/fingercalc/internal/tray"
)

const banner = `
=== Finger Calculator Controls ===
- Show 0-5 fingers to input numbers
- Press SPACE to capture number (first, then second)
- Show gesture to choose operation:
  thumbs up: Add | fist: Subtract | peace: Multiply | open palm: Divide
- Press '+', '-', '*', '/' on keyboard to choose manually
- Press 'r' to reset or 'q' to quit.
`

func main() {
	parser := argparse.NewParser("fingercalc", "Webcam calculator driven by finger counts and hand gestures")
	cameraID := parser.Int("c", "camera", &argparse.Options{Help: "Camera device index", Default: 0})
	enableTray := parser.Flag("", "tray", &argparse.Options{Help: "Show a system tray menu with Reset and Quit", Default: false})
	useMock := parser.Flag("", "mock", &argparse.Options{Help: "Use the mock hand detector instead of MediaPipe", Default: false})
	replay := parser.String("", "replay", &argparse.Options{Help: "Play back recorded hand service output instead of running MediaPipe", Default: ""})
	holdMs := parser.Int("", "hold", &argparse.Options{Help: "How long an operator gesture must be held, in milliseconds", Default: 600})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	cfg := app.DefaultConfig()
	cfg.Camera.DeviceID = *cameraID
	cfg.UseMock = *useMock
	cfg.Replay = *replay
	if *holdMs > 0 {
		cfg.Session.HoldTime = time.Duration(*holdMs) * time.Millisecond
	}

	a := app.New(logger, cfg)

	if *enableTray {
		t := tray.New(tray.DefaultBuffer)
		a.SetCommands(t.Commands())
		a.OnResult(t.SetLastResult)
		go t.Run()
		defer t.Quit()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Print(banner)

	if err := a.Run(ctx); err != nil {
		if errors.Is(err, capture.ErrReadFrame) || errors.Is(err, capture.ErrEmptyFrame) {
			logger.Warnf("Camera stopped delivering frames: %v", err)
			return
		}
		logger.Errorf("%v", err)
		logger.Close()
		os.Exit(1)
	}
}
