package mapkit

import (
	"sync"
	"time"
)

// Overlay is one visual marker bound to an activity's coordinates, carrying
// the content revealed when the client clicks it.
type Overlay struct {
	ID          string `json:"id"`
	Point       Point  `json:"point"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Camera struct {
	Center     Point         `json:"center"`
	Zoom       int           `json:"zoom"`
	Animated   bool          `json:"animated,omitempty"`
	AnimateFor time.Duration `json:"animate_for,omitempty"`
}

// Snapshot is the render state a client mirrors onto the actual map.
type Snapshot struct {
	Overlays []Overlay `json:"overlays"`
	Camera   Camera    `json:"camera"`
}

// Surface is the rendering surface owned by the sync engine. The engine is
// its only writer; nothing else may touch the overlay set.
type Surface interface {
	ClearOverlays()
	AddOverlay(o Overlay)
	SetViewport(points []Point)
	CenterAndZoom(center Point, zoom int)
	FlyTo(center Point, zoom int, d time.Duration)
	Snapshot() Snapshot
}

// Default camera: Beijing at city zoom, same as the GL surface default.
var DefaultCenter = Point{Lat: 39.915, Lng: 116.404}

const DefaultZoom = 11

// glSurface is the in-memory GL-command surface backing one map session.
type glSurface struct {
	mu       sync.Mutex
	overlays []Overlay
	camera   Camera
}

func NewGLSurface() Surface {
	return &glSurface{
		camera: Camera{Center: DefaultCenter, Zoom: DefaultZoom},
	}
}

func (s *glSurface) ClearOverlays() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays = nil
}

func (s *glSurface) AddOverlay(o Overlay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays = append(s.overlays, o)
}

func (s *glSurface) SetViewport(points []Point) {
	center, zoom, ok := FitViewport(points)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = Camera{Center: center, Zoom: zoom}
}

func (s *glSurface) CenterAndZoom(center Point, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = Camera{Center: center, Zoom: zoom}
}

func (s *glSurface) FlyTo(center Point, zoom int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = Camera{Center: center, Zoom: zoom, Animated: true, AnimateFor: d}
}

func (s *glSurface) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Snapshot{Camera: s.camera}
	out.Overlays = append(out.Overlays, s.overlays...)
	return out
}
