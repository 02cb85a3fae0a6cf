package session

import (
	"fmt"

	"github.com/ayusman/fingercalc/internal/calc"
)

// EventKind says what an input did to the session.
type EventKind int

const (
	EventNone EventKind = iota
	EventFirstCaptured
	EventSecondCaptured
	EventProceed
	EventOperatorGesture
	EventOperatorKey
	EventNoHand
	EventCoolingDown
	EventReset
	EventQuit
)

// Event describes the outcome of one input. The zero Event means nothing happened.
type Event struct {
	Kind  EventKind
	Value int
	Op    calc.Operator
}

// Changed reports whether the event moved the session to another stage.
func (e Event) Changed() bool {
	switch e.Kind {
	case EventFirstCaptured, EventSecondCaptured, EventProceed,
		EventOperatorGesture, EventOperatorKey, EventReset:
		return true
	}
	return false
}

// String is the console line for the event, or "" when there is nothing to say.
func (e Event) String() string {
	switch e.Kind {
	case EventFirstCaptured:
		return fmt.Sprintf("First number saved: %d", e.Value)
	case EventSecondCaptured:
		return fmt.Sprintf("Second number saved: %d", e.Value)
	case EventProceed:
		return "Proceeding to operation selection..."
	case EventOperatorGesture:
		return fmt.Sprintf("Gesture confirmed: %s", e.Op)
	case EventOperatorKey:
		return fmt.Sprintf("Operator chosen (keyboard): %s", e.Op)
	case EventNoHand:
		return "No hand to capture."
	case EventCoolingDown:
		return "Please wait..."
	case EventReset:
		return "Reset."
	}
	return ""
}
