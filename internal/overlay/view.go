package overlay

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"

	"github.com/ayusman/fingercalc/internal/calc"
	"github.com/ayusman/fingercalc/internal/detector"
	"github.com/ayusman/fingercalc/internal/session"
)

// NoHandText is shown while no hand is in view.
const NoHandText = "No hand detected. Bring hand in view!"

var (
	Green  = color.RGBA{0, 255, 0, 0}
	Red    = color.RGBA{255, 0, 0, 0}
	Yellow = color.RGBA{255, 255, 0, 0}
	Cyan   = color.RGBA{0, 255, 255, 0}
	Teal   = color.RGBA{0, 200, 200, 0}
	White  = color.RGBA{255, 255, 255, 0}
	Silver = color.RGBA{200, 200, 200, 0}
	Gray   = color.RGBA{180, 180, 180, 0}
)

// Line is one piece of text to draw.
type Line struct {
	Text      string
	Origin    image.Point
	Scale     float64
	Color     color.RGBA
	Thickness int
}

// View is a snapshot of everything the overlay shows for one frame.
type View struct {
	Stage    session.Stage
	First    *int
	Second   *int
	Op       *calc.Operator
	Result   string
	Count    int
	HasCount bool
	Hand     *detector.HandLandmarks
	Hint     string
	OpText   string
	Hold     float64
}

// NewView captures the session's state after it has seen frame f.
func NewView(s *session.Session, f session.Frame, now time.Time) View {
	v := View{
		Stage:    s.Stage(),
		First:    s.First(),
		Second:   s.Second(),
		Count:    f.Count,
		HasCount: f.HasCount,
		Hand:     f.Hand,
		Hint:     f.Hint,
		OpText:   s.OperatorText(),
		Hold:     s.HoldProgress(now),
	}
	if op, ok := s.Operator(); ok {
		v.Op = &op
	}
	if r, ok := s.Result(); ok {
		v.Result = calc.Expression(v.First, v.Second, *v.Op, r)
	}
	return v
}

// StatusText is the one-line summary of the session.
func (v View) StatusText() string {
	op := "?"
	if v.Op != nil {
		op = v.Op.String()
	}
	return fmt.Sprintf("Stage: %s | First: %s | Second: %s | Op: %s",
		v.Stage, operand(v.First), operand(v.Second), op)
}

// Lines lays out the text for a frame of the given height.
func (v View) Lines(height int) []Line {
	var lines []Line
	add := func(text string, x, y int, scale float64, c color.RGBA, thickness int) {
		lines = append(lines, Line{
			Text:      text,
			Origin:    image.Point{X: x, Y: y},
			Scale:     scale,
			Color:     c,
			Thickness: thickness,
		})
	}

	if v.Hand == nil {
		add(NoHandText, 10, 50, 0.7, Red, 2)
	}
	add(v.StatusText(), 10, 100, 0.6, Cyan, 2)
	if v.HasCount {
		add("Detected Fingers: "+strconv.Itoa(v.Count), 10, 30, 1, Green, 2)
	}

	bottom := height - 40
	switch v.Stage {
	case session.AwaitingFirst:
		add(v.Stage.Prompt(), 10, bottom, 0.7, White, 2)
	case session.AwaitingSecond:
		add(v.Stage.Prompt(), 10, bottom, 0.7, White, 2)
		add("First number: "+operand(v.First), 10, height-70, 0.8, Teal, 2)
	case session.ConfirmSecond:
		add(v.Stage.Prompt(), 10, bottom, 0.7, White, 2)
	case session.AwaitingOperator:
		add(v.Stage.Prompt(), 10, bottom, 0.6, Silver, 2)
		if v.Hint != "" {
			add(v.Hint, 10, height-70, 0.6, Gray, 2)
		}
		if v.OpText != "" {
			add("Selected: "+v.OpText, 10, height-100, 0.8, Yellow, 2)
		}
	case session.ShowResult:
		add(v.Result, 10, 60, 1.0, Green, 3)
		add(v.Stage.Prompt(), 10, bottom, 0.6, White, 1)
	}
	return lines
}

// HoldOrigin is where the hold bar is drawn for a frame of the given height.
func HoldOrigin(height int) image.Point {
	return image.Point{X: 10, Y: height - 130}
}

func operand(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
