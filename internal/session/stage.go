package session

// Stage is the step of the calculation the user is on.
type Stage int

const (
	AwaitingFirst Stage = iota
	AwaitingSecond
	ConfirmSecond
	AwaitingOperator
	ShowResult
)

var stageNames = [...]string{
	AwaitingFirst:    "awaiting-first",
	AwaitingSecond:   "awaiting-second",
	ConfirmSecond:    "confirm-second",
	AwaitingOperator: "awaiting-operator",
	ShowResult:       "show-result",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Prompt is the instruction shown at the bottom of the frame.
func (s Stage) Prompt() string {
	switch s {
	case AwaitingFirst:
		return "Stage 1: Show FIRST number (0-5) and press SPACE"
	case AwaitingSecond:
		return "Stage 2: Show SECOND number (0-5) and press SPACE"
	case ConfirmSecond:
		return "Press SPACE again to choose operation (Stage 3)"
	case AwaitingOperator:
		return "Stage 3: Choose operation (gesture or keyboard)"
	case ShowResult:
		return "Press 'r' to restart or 'q' to quit"
	}
	return ""
}

// Keys understood by the session. Operator keys are '+', '-', '*' and '/'.
const (
	KeyCapture = ' '
	KeyReset   = 'r'
	KeyQuit    = 'q'
)

// Transition identifies a class of stage change for cooldown purposes.
type Transition int

const (
	// TransitionFirstCapture is the capture of the first number.
	TransitionFirstCapture Transition = iota
	// TransitionOperator is an operator choice, by gesture or by key.
	TransitionOperator
)
