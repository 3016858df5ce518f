package mapkit

import "math"

// Point is a BD-09 coordinate. Everything in this package assumes BD-09;
// mixing frames renders at the wrong position without any error signal.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is a rectangle in BD-09, south-west to north-east.
type Bounds struct {
	SW Point `json:"sw"`
	NE Point `json:"ne"`
}

// BoundsOf returns the minimal bounds containing every point.
// ok is false for an empty set.
func BoundsOf(points []Point) (b Bounds, ok bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b = Bounds{SW: points[0], NE: points[0]}
	for _, p := range points[1:] {
		b.SW.Lat = math.Min(b.SW.Lat, p.Lat)
		b.SW.Lng = math.Min(b.SW.Lng, p.Lng)
		b.NE.Lat = math.Max(b.NE.Lat, p.Lat)
		b.NE.Lng = math.Max(b.NE.Lng, p.Lng)
	}
	return b, true
}

// Contains reports whether p lies within the bounds, edges inclusive.
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.SW.Lat && p.Lat <= b.NE.Lat &&
		p.Lng >= b.SW.Lng && p.Lng <= b.NE.Lng
}

func (b Bounds) Center() Point {
	return Point{
		Lat: (b.SW.Lat + b.NE.Lat) / 2,
		Lng: (b.SW.Lng + b.NE.Lng) / 2,
	}
}

const (
	minZoom = 3
	maxZoom = 18
)

// viewportZoom picks the largest GL zoom level whose visible span still
// covers the bounds. At zoom z the viewport spans roughly 360/2^(z-1)
// degrees of longitude; a small margin keeps edge points off the border.
func viewportZoom(b Bounds) int {
	span := math.Max(b.NE.Lat-b.SW.Lat, b.NE.Lng-b.SW.Lng)
	span *= 1.2
	if span <= 0 {
		return maxZoom
	}
	zoom := int(math.Floor(math.Log2(360/span))) + 1
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	return zoom
}

// FitViewport computes the camera for the minimal viewport containing all
// points: center of the bounding box at the deepest zoom that shows it whole.
func FitViewport(points []Point) (Point, int, bool) {
	b, ok := BoundsOf(points)
	if !ok {
		return Point{}, 0, false
	}
	return b.Center(), viewportZoom(b), true
}
