// Package session implements the finger calculator's input state machine.
//
// A Session owns everything that changes from frame to frame: the current stage and
// operands, the smoothing window, the gesture hold filter and the transition
// cooldowns. It is driven by the frame loop through Observe and HandleKey and is not
// safe for concurrent use.
package session

import (
	"time"

	"github.com/ayusman/fingercalc/internal/calc"
	"github.com/ayusman/fingercalc/internal/debounce"
	"github.com/ayusman/fingercalc/internal/detector"
	"github.com/ayusman/fingercalc/internal/finger"
	"github.com/ayusman/fingercalc/internal/gesture"
	"github.com/google/uuid"
)

// Config holds the timing and smoothing parameters of a Session.
type Config struct {
	// Window is the number of frames averaged for the finger count.
	Window int
	// HoldTime is how long an operator gesture must be held to be accepted.
	HoldTime time.Duration
	// CaptureCooldown ignores further SPACE presses after the first number is captured.
	CaptureCooldown time.Duration
	// OperatorCooldown ignores further operator choices after one is accepted. It
	// outlives a reset, so a pose held through a quick restart does not pick the next
	// operator by itself.
	OperatorCooldown time.Duration
}

// DefaultConfig returns the standard timings.
func DefaultConfig() Config {
	return Config{
		Window:           finger.DefaultWindow,
		HoldTime:         600 * time.Millisecond,
		CaptureCooldown:  400 * time.Millisecond,
		OperatorCooldown: 2 * time.Second,
	}
}

// Frame is what the session saw in one video frame.
type Frame struct {
	// Hand is the hand that was read, or nil when none was detected.
	Hand *detector.HandLandmarks
	// Fingers is the raw per-digit state of Hand.
	Fingers finger.State
	// Count is the smoothed finger count; valid only when HasCount is true.
	Count    int
	HasCount bool
	// Gesture is the classification in the operator stage.
	Gesture gesture.Gesture
	// Hint is set in the operator stage when no gesture is recognised.
	Hint string
	// Event is set when a held gesture was confirmed this frame.
	Event Event
}

// Session is the calculator's state.
type Session struct {
	config Config
	id     uuid.UUID
	stage  Stage
	first  *int
	second *int
	op     *calc.Operator
	opText string

	smoother *finger.Smoother
	hold     *debounce.Hold[gesture.Gesture]
	cooldown *debounce.Cooldown[Transition]

	// count is this frame's smoothed reading; cleared on frames without a hand.
	count    int
	hasCount bool
}

// New creates a Session in the AwaitingFirst stage.
func New(config Config) *Session {
	if config.HoldTime <= 0 {
		config.HoldTime = DefaultConfig().HoldTime
	}
	return &Session{
		config:   config,
		id:       uuid.New(),
		stage:    AwaitingFirst,
		smoother: finger.NewSmoother(config.Window),
		hold:     debounce.NewHold[gesture.Gesture](config.HoldTime),
		cooldown: debounce.NewCooldown(map[Transition]time.Duration{
			TransitionFirstCapture: config.CaptureCooldown,
			TransitionOperator:     config.OperatorCooldown,
		}),
	}
}

// ID identifies the current calculation; it changes on every reset.
func (s *Session) ID() uuid.UUID { return s.id }

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// First returns the first operand, or nil if it has not been captured.
func (s *Session) First() *int { return copyInt(s.first) }

// Second returns the second operand, or nil if it has not been captured.
func (s *Session) Second() *int { return copyInt(s.second) }

// Operator returns the selected operator; ok is true only in ShowResult.
func (s *Session) Operator() (op calc.Operator, ok bool) {
	if s.op == nil {
		return 0, false
	}
	return *s.op, true
}

// OperatorText is the description of the last recognised operator gesture.
func (s *Session) OperatorText() string { return s.opText }

// Count returns the smoothed finger count for the current frame.
func (s *Session) Count() (int, bool) { return s.count, s.hasCount }

// HoldProgress reports how far the current gesture is towards confirmation.
func (s *Session) HoldProgress(now time.Time) float64 { return s.hold.Progress(now) }

// Result evaluates the expression. ok is false outside ShowResult.
func (s *Session) Result() (r calc.Result, ok bool) {
	if s.stage != ShowResult || s.op == nil {
		return calc.Result{}, false
	}
	return calc.Compute(s.first, s.second, *s.op), true
}

// Observe feeds one frame's primary hand (nil if none) into the session.
func (s *Session) Observe(hand *detector.HandLandmarks, now time.Time) Frame {
	if hand == nil {
		s.hasCount = false
		// No hand means no gesture; a hold does not survive the gap.
		s.hold.Clear()
		return Frame{}
	}

	f := Frame{Hand: hand}
	f.Fingers = finger.Extract(hand)
	s.smoother.Add(f.Fingers.Count())
	s.count, s.hasCount = s.smoother.Value()
	f.Count, f.HasCount = s.count, s.hasCount

	if s.stage != AwaitingOperator {
		return f
	}

	f.Gesture = gesture.Classify(f.Fingers, hand)
	op, ok := f.Gesture.Operator()
	if !ok {
		s.hold.Clear()
		f.Hint = gesture.Hint
		return f
	}

	s.opText = f.Gesture.Label()
	if s.hold.Observe(f.Gesture, now) {
		f.Event = s.selectOperator(op, EventOperatorGesture, now)
	}
	return f
}

// HandleKey applies one key press. Unrecognised keys are ignored.
func (s *Session) HandleKey(key rune, now time.Time) Event {
	switch key {
	case KeyQuit:
		return Event{Kind: EventQuit}
	case KeyReset:
		s.Reset()
		return Event{Kind: EventReset}
	case KeyCapture:
		return s.capture(now)
	}

	if op, ok := calc.ParseOperator(key); ok && s.stage == AwaitingOperator {
		return s.selectOperator(op, EventOperatorKey, now)
	}
	return Event{}
}

// Reset returns to AwaitingFirst and forgets the operands and operator. A running
// operator cooldown is kept.
func (s *Session) Reset() {
	s.id = uuid.New()
	s.first = nil
	s.second = nil
	s.op = nil
	s.opText = ""
	s.cooldown.Clear(TransitionFirstCapture)
	s.enter(AwaitingFirst)
}

func (s *Session) capture(now time.Time) Event {
	if s.stage == AwaitingOperator || s.stage == ShowResult {
		return Event{}
	}
	if !s.hasCount {
		return Event{Kind: EventNoHand}
	}
	if !s.cooldown.Ready(TransitionFirstCapture, now) {
		return Event{Kind: EventCoolingDown}
	}

	var e Event
	switch s.stage {
	case AwaitingFirst:
		s.first = copyInt(&s.count)
		e = Event{Kind: EventFirstCaptured, Value: s.count}
		s.cooldown.Fire(TransitionFirstCapture, now)
		s.enter(AwaitingSecond)
	case AwaitingSecond:
		s.second = copyInt(&s.count)
		e = Event{Kind: EventSecondCaptured, Value: s.count}
		s.enter(ConfirmSecond)
	case ConfirmSecond:
		e = Event{Kind: EventProceed}
		s.enter(AwaitingOperator)
	}
	return e
}

func (s *Session) selectOperator(op calc.Operator, kind EventKind, now time.Time) Event {
	if !s.cooldown.Ready(TransitionOperator, now) {
		return Event{Kind: EventCoolingDown}
	}
	s.op = &op
	s.cooldown.Fire(TransitionOperator, now)
	s.enter(ShowResult)
	return Event{Kind: kind, Op: op}
}

// enter switches stage and starts the new stage with a clean smoothing window and
// no pending gesture.
func (s *Session) enter(stage Stage) {
	s.stage = stage
	s.smoother.Reset()
	s.hasCount = false
	s.hold.Clear()
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
