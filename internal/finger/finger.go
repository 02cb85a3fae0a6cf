// Package finger turns hand landmarks into a raised-finger vector and a smoothed count.
package finger

import (
	"strings"

	"github.com/ayusman/fingercalc/internal/detector"
)

// Digit indexes a State.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumDigits
)

// State records which digits are extended, ordered thumb to pinky.
type State [NumDigits]bool

// Count returns the number of extended digits.
func (s State) Count() int {
	n := 0
	for _, up := range s {
		if up {
			n++
		}
	}
	return n
}

// String renders the state as a binary vector, e.g. "[1 0 0 0 0]".
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, up := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		if up {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// tip/pip pairs for the four non-thumb fingers.
var fingerJoints = [4][2]int{
	{detector.IndexTip, detector.IndexPIP},
	{detector.MiddleTip, detector.MiddlePIP},
	{detector.RingTip, detector.RingPIP},
	{detector.PinkyTip, detector.PinkyPIP},
}

// Extract classifies each digit of a single hand as extended or not.
//
// The thumb is compared on the x axis only since it extends sideways. Frames are
// mirrored, so a Right hand's thumb is out when its tip is right of the IP joint and a
// Left hand's when it is left of it. The other four fingers are up when the tip sits
// above (smaller y than) the PIP joint.
func Extract(hand *detector.HandLandmarks) State {
	var s State
	if hand == nil {
		return s
	}

	tip := hand.Points[detector.ThumbTip].X
	ip := hand.Points[detector.ThumbIP].X
	if hand.Handedness == detector.Left {
		s[Thumb] = tip < ip
	} else {
		s[Thumb] = tip > ip
	}

	for i, j := range fingerJoints {
		s[Index+i] = hand.Points[j[0]].Y < hand.Points[j[1]].Y
	}

	return s
}
