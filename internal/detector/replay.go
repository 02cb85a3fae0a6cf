package detector

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"gocv.io/x/gocv"
)

// frameResult is one recorded frame: the hands seen, or the error the service reported.
type frameResult struct {
	hands []HandLandmarks
	err   error
}

// ReplayDetector plays back recorded hand service output, one line per frame. It
// ignores the frames it is given, which makes it useful for running the calculator
// against a known sequence of hands.
type ReplayDetector struct {
	frames []frameResult
	next   int
	loop   bool
	mu     sync.Mutex
}

// NewReplayDetector reads a recording in the hand service's line format. Blank lines
// are skipped. Lines carrying an "error" field replay as detection errors.
func NewReplayDetector(r io.Reader, loop bool) (*ReplayDetector, error) {
	d := &ReplayDetector{loop: loop}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		hands, err := DecodeResponse(line)
		if err != nil && !isServiceError(line) {
			return nil, fmt.Errorf("recording line %d: %w", n, err)
		}
		d.frames = append(d.frames, frameResult{hands: hands, err: err})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}

	return d, nil
}

// isServiceError reports whether line is a well-formed error response.
func isServiceError(line []byte) bool {
	var resp struct {
		Error string `json:"error"`
	}
	return json.Unmarshal(line, &resp) == nil && resp.Error != ""
}

// Detect returns the next recorded frame. Once the recording is exhausted it reports
// no hands, unless looping.
func (d *ReplayDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.next >= len(d.frames) {
		if !d.loop || len(d.frames) == 0 {
			return nil, nil
		}
		d.next = 0
	}

	f := d.frames[d.next]
	d.next++
	return f.hands, f.err
}

// Len returns the number of recorded frames.
func (d *ReplayDetector) Len() int {
	return len(d.frames)
}

// Remaining returns the number of frames not yet replayed in this pass.
func (d *ReplayDetector) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames) - d.next
}

// Close is a no-op.
func (d *ReplayDetector) Close() error {
	return nil
}
