// Package gesture classifies finger states into the calculator's operator gestures.
package gesture

import (
	"github.com/ayusman/fingercalc/internal/calc"
	"github.com/ayusman/fingercalc/internal/detector"
	"github.com/ayusman/fingercalc/internal/finger"
)

// Gesture is a recognised static hand pose.
type Gesture int

const (
	None Gesture = iota
	Add
	Subtract
	Multiply
	Divide
)

// Hint is shown while the operator stage sees no recognisable gesture.
const Hint = "Gesture: thumbs up Add | thumbs down Sub | peace Mul | open palm Div"

var names = map[Gesture]string{
	None:     "none",
	Add:      "add",
	Subtract: "subtract",
	Multiply: "multiply",
	Divide:   "divide",
}

func (g Gesture) String() string {
	if n, ok := names[g]; ok {
		return n
	}
	return "unknown"
}

// Operator returns the arithmetic operator selected by the gesture.
// ok is false for None.
func (g Gesture) Operator() (op calc.Operator, ok bool) {
	switch g {
	case Add:
		return calc.Add, true
	case Subtract:
		return calc.Subtract, true
	case Multiply:
		return calc.Multiply, true
	case Divide:
		return calc.Divide, true
	}
	return 0, false
}

// Label is the user-facing description of the gesture.
// Subtract is presented as "thumbs down" even though it is detected as a closed hand.
func (g Gesture) Label() string {
	switch g {
	case Add:
		return "ADD (thumbs up)"
	case Subtract:
		return "SUBTRACT (thumbs down)"
	case Multiply:
		return "MULTIPLY (peace)"
	case Divide:
		return "DIVIDE (open palm)"
	}
	return ""
}

// predicate reports whether a finger state matches a gesture.
// The hand is passed through for predicates that need raw geometry; none do yet.
type predicate func(s finger.State, hand *detector.HandLandmarks) bool

type rule struct {
	gesture Gesture
	match   predicate
}

// rules are evaluated in order and the first match wins.
var rules = []rule{
	{Add, isThumbUp},
	{Subtract, isFlat},
	{Multiply, isPeaceSign},
	{Divide, isOpenPalm},
}

// Classify maps a finger state to at most one gesture.
func Classify(s finger.State, hand *detector.HandLandmarks) Gesture {
	for _, r := range rules {
		if r.match(s, hand) {
			return r.gesture
		}
	}
	return None
}

func isThumbUp(s finger.State, _ *detector.HandLandmarks) bool {
	return s[finger.Thumb] && s.Count() == 1
}

func isFlat(s finger.State, _ *detector.HandLandmarks) bool {
	return s.Count() == 0
}

func isPeaceSign(s finger.State, _ *detector.HandLandmarks) bool {
	return s[finger.Index] && s[finger.Middle] &&
		!s[finger.Thumb] && !s[finger.Ring] && !s[finger.Pinky]
}

func isOpenPalm(s finger.State, _ *detector.HandLandmarks) bool {
	return s.Count() >= 4
}
