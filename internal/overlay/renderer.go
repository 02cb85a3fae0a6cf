package overlay

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/fingercalc/internal/detector"
)

// Renderer draws views onto frames.
type Renderer struct {
	// Font is used for all text.
	Font gocv.HersheyFont
}

// NewRenderer returns a Renderer with the default font.
func NewRenderer() *Renderer {
	return &Renderer{Font: gocv.FontHersheySimplex}
}

// Draw paints v onto frame in place.
func (r *Renderer) Draw(frame *gocv.Mat, v View) {
	width, height := frame.Cols(), frame.Rows()

	if v.Hand != nil {
		r.drawHand(frame, v.Hand, width, height)
	}

	if v.Hold > 0 {
		origin := HoldOrigin(height)
		gocv.Rectangle(frame, HoldBar(origin, 1), Gray, 1)
		if bar := HoldBar(origin, v.Hold); !bar.Empty() {
			gocv.Rectangle(frame, bar, Yellow, -1)
		}
	}

	for _, l := range v.Lines(height) {
		gocv.PutText(frame, l.Text, l.Origin, r.Font, l.Scale, l.Color, l.Thickness)
	}
}

func (r *Renderer) drawHand(frame *gocv.Mat, hand *detector.HandLandmarks, width, height int) {
	pts := HandPoints(hand, width, height)
	box := HandBox(hand, width, height, BoxPadding)

	for _, c := range detector.Connections {
		gocv.Line(frame, pts[c[0]], pts[c[1]], White, 2)
	}
	radius := LandmarkRadius(box)
	for _, p := range pts {
		gocv.Circle(frame, p, radius, Red, -1)
	}
	gocv.Rectangle(frame, box, Yellow, 2)
}
