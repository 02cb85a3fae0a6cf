package gesture

import (
	"testing"

	"github.com/ayusman/fingercalc/internal/calc"
	"github.com/ayusman/fingercalc/internal/detector"
	"github.com/ayusman/fingercalc/internal/finger"
	"github.com/stretchr/testify/require"
)

func state(bits ...int) finger.State {
	var s finger.State
	for i, b := range bits {
		s[i] = b == 1
	}
	return s
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		state finger.State
		want  Gesture
	}{
		{"thumb only", state(1, 0, 0, 0, 0), Add},
		{"closed hand", state(0, 0, 0, 0, 0), Subtract},
		{"peace", state(0, 1, 1, 0, 0), Multiply},
		{"four without pinky", state(1, 1, 1, 1, 0), Divide},
		{"four without thumb", state(0, 1, 1, 1, 1), Divide},
		{"open palm", state(1, 1, 1, 1, 1), Divide},
		{"index only", state(0, 1, 0, 0, 0), None},
		{"peace with thumb", state(1, 1, 1, 0, 0), None},
		{"three fingers", state(0, 1, 1, 1, 0), None},
		{"pinky only", state(0, 0, 0, 0, 1), None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.state, nil))
		})
	}
}

// Every possible vector maps to exactly one outcome, and each gesture's defining
// predicate agrees with the classification.
func TestClassifyExhaustive(t *testing.T) {
	for mask := 0; mask < 1<<finger.NumDigits; mask++ {
		var s finger.State
		for i := range s {
			s[i] = mask&(1<<i) != 0
		}
		g := Classify(s, nil)
		switch g {
		case Add:
			require.True(t, s[finger.Thumb])
			require.Equal(t, 1, s.Count())
		case Subtract:
			require.Equal(t, 0, s.Count())
		case Multiply:
			require.Equal(t, state(0, 1, 1, 0, 0), s)
		case Divide:
			require.GreaterOrEqual(t, s.Count(), 4)
		case None:
			require.False(t, isThumbUp(s, nil) || isFlat(s, nil) || isPeaceSign(s, nil) || isOpenPalm(s, nil))
		default:
			t.Fatalf("unexpected gesture %v for %v", g, s)
		}
	}
}

func TestClassifyPresets(t *testing.T) {
	presets := []struct {
		hand detector.HandLandmarks
		want Gesture
	}{
		{detector.ThumbsUpLandmarks(), Add},
		{detector.FistLandmarks(), Subtract},
		{detector.PeaceLandmarks(), Multiply},
		{detector.OpenPalmLandmarks(), Divide},
	}
	for _, p := range presets {
		require.Equal(t, p.want, Classify(finger.Extract(&p.hand), &p.hand))
	}
}

func TestGestureOperator(t *testing.T) {
	want := map[Gesture]calc.Operator{
		Add:      calc.Add,
		Subtract: calc.Subtract,
		Multiply: calc.Multiply,
		Divide:   calc.Divide,
	}
	for g, op := range want {
		got, ok := g.Operator()
		require.True(t, ok)
		require.Equal(t, op, got)
		require.NotEmpty(t, g.Label())
	}

	_, ok := None.Operator()
	require.False(t, ok)
	require.Empty(t, None.Label())
	require.Equal(t, "SUBTRACT (thumbs down)", Subtract.Label())
}
