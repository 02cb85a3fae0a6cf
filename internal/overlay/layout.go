// Package overlay draws the calculator's view onto video frames.
//
// Layout is computed in plain Go (pixel positions, boxes and text lines) so that it
// can be tested without OpenCV; Renderer turns it into gocv drawing calls.
package overlay

import (
	"image"

	"github.com/ayusman/fingercalc/internal/detector"
	"github.com/chewxy/math32"
)

// BoxPadding is the margin in pixels around a hand's bounding box.
const BoxPadding = 20

// HoldBarWidth is the width in pixels of a full gesture hold bar.
const HoldBarWidth = 200

// PixelPoint maps a normalized landmark onto a frame of the given size.
func PixelPoint(p detector.Point3D, width, height int) image.Point {
	x := math32.Floor(float32(p.X) * float32(width))
	y := math32.Floor(float32(p.Y) * float32(height))
	return image.Point{X: int(x), Y: int(y)}
}

// HandPoints maps all of a hand's landmarks to pixels.
func HandPoints(hand *detector.HandLandmarks, width, height int) [detector.NumLandmarks]image.Point {
	var pts [detector.NumLandmarks]image.Point
	for i, p := range hand.Points {
		pts[i] = PixelPoint(p, width, height)
	}
	return pts
}

// HandBox returns the hand's bounding box in pixels, grown by pad on every side and
// clipped to the frame.
func HandBox(hand *detector.HandLandmarks, width, height, pad int) image.Rectangle {
	minX, minY, maxX, maxY := hand.Bounds()
	w, h := float32(width), float32(height)
	p := float32(pad)

	x0 := clamp(math32.Floor(float32(minX)*w)-p, 0, w-1)
	y0 := clamp(math32.Floor(float32(minY)*h)-p, 0, h-1)
	x1 := clamp(math32.Floor(float32(maxX)*w)+p, 0, w-1)
	y1 := clamp(math32.Floor(float32(maxY)*h)+p, 0, h-1)

	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

// HoldBar returns the filled part of the hold progress bar whose top-left corner is
// origin. An empty rectangle is returned for no progress.
func HoldBar(origin image.Point, progress float64) image.Rectangle {
	frac := clamp(float32(progress), 0, 1)
	w := int(math32.Floor(frac * HoldBarWidth))
	return image.Rect(origin.X, origin.Y, origin.X+w, origin.Y+8)
}

// LandmarkRadius scales the dot size with the apparent size of the hand.
func LandmarkRadius(box image.Rectangle) int {
	diag := math32.Sqrt(float32(box.Dx()*box.Dx() + box.Dy()*box.Dy()))
	return int(clamp(math32.Floor(diag/60), 2, 6))
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
