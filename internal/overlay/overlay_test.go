package overlay

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"github.com/ayusman/fingercalc/internal/calc"
	"github.com/ayusman/fingercalc/internal/detector"
	"github.com/ayusman/fingercalc/internal/session"
)

func TestPixelPoint(t *testing.T) {
	p := PixelPoint(detector.Point3D{X: 0.5, Y: 0.25}, 640, 480)
	require.Equal(t, image.Point{X: 320, Y: 120}, p)

	p = PixelPoint(detector.Point3D{X: 0, Y: 1}, 640, 480)
	require.Equal(t, image.Point{X: 0, Y: 480}, p)
}

func TestHandBoxPadding(t *testing.T) {
	var hand detector.HandLandmarks
	for i := range hand.Points {
		hand.Points[i] = detector.Point3D{X: 0.25, Y: 0.25}
	}
	hand.Points[detector.MiddleTip] = detector.Point3D{X: 0.5, Y: 0.5}

	box := HandBox(&hand, 400, 200, BoxPadding)
	require.Equal(t, image.Rect(80, 30, 220, 120), box)
}

func TestHandBoxClamped(t *testing.T) {
	var hand detector.HandLandmarks
	for i := range hand.Points {
		hand.Points[i] = detector.Point3D{X: 0.01, Y: 0.01}
	}
	hand.Points[detector.PinkyTip] = detector.Point3D{X: 0.99, Y: 0.99}

	box := HandBox(&hand, 100, 100, BoxPadding)
	require.Equal(t, image.Rect(0, 0, 99, 99), box)
}

func TestHoldBar(t *testing.T) {
	origin := image.Point{X: 10, Y: 50}

	require.True(t, HoldBar(origin, 0).Empty())
	require.Equal(t, image.Rect(10, 50, 110, 58), HoldBar(origin, 0.5))
	require.Equal(t, image.Rect(10, 50, 210, 58), HoldBar(origin, 1))
	require.Equal(t, image.Rect(10, 50, 210, 58), HoldBar(origin, 3))
}

func TestLandmarkRadius(t *testing.T) {
	require.Equal(t, 2, LandmarkRadius(image.Rect(0, 0, 10, 10)))
	require.Equal(t, 5, LandmarkRadius(image.Rect(0, 0, 180, 240)))
	require.Equal(t, 6, LandmarkRadius(image.Rect(0, 0, 640, 480)))
}

func TestKeyRune(t *testing.T) {
	_, ok := KeyRune(-1)
	require.False(t, ok)

	k, ok := KeyRune(' ')
	require.True(t, ok)
	require.Equal(t, ' ', k)

	// Some backends set modifier bits above the low byte.
	k, ok = KeyRune(0x100000 | 'q')
	require.True(t, ok)
	require.Equal(t, 'q', k)
}

func texts(lines []Line) []string {
	var out []string
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestViewLinesNoHand(t *testing.T) {
	v := View{Stage: session.AwaitingFirst}
	got := texts(v.Lines(480))

	require.Contains(t, got, NoHandText)
	require.Contains(t, got, "Stage: awaiting-first | First: - | Second: - | Op: ?")
	require.Contains(t, got, session.AwaitingFirst.Prompt())
	for _, s := range got {
		require.NotContains(t, s, "Detected Fingers")
	}
}

func TestViewLinesWithCount(t *testing.T) {
	hand := detector.OpenPalmLandmarks()
	first := 3
	v := View{Stage: session.AwaitingSecond, First: &first, Hand: &hand, Count: 4, HasCount: true}
	lines := v.Lines(480)
	got := texts(lines)

	require.NotContains(t, got, NoHandText)
	require.Contains(t, got, "Detected Fingers: 4")
	require.Contains(t, got, "First number: 3")

	for _, l := range lines {
		if l.Text == session.AwaitingSecond.Prompt() {
			require.Equal(t, 440, l.Origin.Y)
		}
	}
}

func TestViewLinesOperatorStage(t *testing.T) {
	v := View{Stage: session.AwaitingOperator, Hint: "hint", OpText: "ADD (thumbs up)"}
	got := texts(v.Lines(480))

	require.Contains(t, got, "hint")
	require.Contains(t, got, "Selected: ADD (thumbs up)")
}

func TestNewViewShowsResult(t *testing.T) {
	s := session.New(session.DefaultConfig())
	now := time.Unix(1000, 0)

	three := detector.PoseLandmarks(detector.Right, [5]bool{false, true, true, true, false})
	s.Observe(&three, now)
	s.HandleKey(session.KeyCapture, now)

	now = now.Add(time.Second)
	four := detector.PoseLandmarks(detector.Right, [5]bool{false, true, true, true, true})
	s.Observe(&four, now)
	s.HandleKey(session.KeyCapture, now)

	now = now.Add(time.Second)
	f := s.Observe(&four, now)
	s.HandleKey(session.KeyCapture, now)
	s.HandleKey('+', now)

	v := NewView(s, f, now)
	require.Equal(t, session.ShowResult, v.Stage)
	require.NotNil(t, v.Op)
	require.Equal(t, calc.Add, *v.Op)
	require.Equal(t, "3 + 4 = 7", v.Result)
	require.Equal(t, "Stage: show-result | First: 3 | Second: 4 | Op: +", v.StatusText())
	require.Contains(t, texts(v.Lines(480)), "3 + 4 = 7")
}

func TestRendererDraw(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	hand := detector.OpenPalmLandmarks()
	v := View{Stage: session.AwaitingOperator, Hand: &hand, Hold: 0.5, OpText: "DIVIDE (open palm)"}
	NewRenderer().Draw(&frame, v)

	require.Equal(t, 480, frame.Rows())
	require.Equal(t, 640, frame.Cols())
	gray := frame.Reshape(1, 0)
	defer gray.Close()
	require.Greater(t, gocv.CountNonZero(gray), 0)
}
