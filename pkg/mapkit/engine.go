package mapkit

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"tripflow/internal/models/plan_models"
	"tripflow/pkg/utils"
)

// EngineState is the lifecycle of one map session.
type EngineState int

const (
	StateUninitialized EngineState = iota
	StateCredentialMissing
	StateAwaitingResource
	StateResourceFailed
	StateSurfaceReady
	StateSynced
)

func (s EngineState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCredentialMissing:
		return "credential_missing"
	case StateAwaitingResource:
		return "awaiting_resource"
	case StateResourceFailed:
		return "resource_failed"
	case StateSurfaceReady:
		return "surface_ready"
	case StateSynced:
		return "synced"
	}
	return "unknown"
}

const (
	detailZoom    = 17
	focusDuration = 800 * time.Millisecond
)

// Engine keeps one rendering surface consistent with the itinerary and with
// user-driven focus events. It never mutates the plan; the plan never holds a
// reference to it.
type Engine struct {
	mu         sync.Mutex
	state      EngineState
	loader     *Loader
	newSurface func() Surface
	surface    Surface
	overlays   map[string]Overlay
	syncedOnce bool
}

func NewEngine(loader *Loader, newSurface func() Surface) *Engine {
	if newSurface == nil {
		newSurface = NewGLSurface
	}
	return &Engine{
		state:      StateUninitialized,
		loader:     loader,
		newSurface: newSurface,
		overlays:   make(map[string]Overlay),
	}
}

// Init drives the session from Uninitialized to SurfaceReady. A missing
// credential or a failed acquisition parks the session in a user-visible,
// non-fatal state; the caller shows a placeholder and the rest of the page
// keeps working. Re-entry after configuring a credential takes a new session.
func (e *Engine) Init(ctx context.Context, credential string) error {
	e.mu.Lock()
	if e.surface != nil {
		// Surface already live; a second construction attempt is a no-op.
		e.mu.Unlock()
		return nil
	}
	if strings.TrimSpace(credential) == "" {
		e.state = StateCredentialMissing
		e.mu.Unlock()
		return nil
	}
	e.state = StateAwaitingResource
	e.mu.Unlock()

	err := e.loader.EnsureLoaded(ctx, credential)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = StateResourceFailed
		return err
	}
	if e.surface == nil {
		e.surface = e.newSurface()
	}
	e.state = StateSurfaceReady
	return nil
}

// Sync recomputes the overlay set from scratch for the given plan (which may
// be nil). Old overlays are fully cleared before new ones are added, so a
// mixed overlay set is never observable. With no located activity the camera
// resets to the default view; otherwise it fits the minimal viewport
// containing every plotted point.
func (e *Engine) Sync(plan *plan_models.TripPlan) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StateCredentialMissing:
		return utils.ErrMissingCredential
	case StateResourceFailed:
		return utils.ErrAcquisitionFailed
	case StateUninitialized, StateAwaitingResource:
		return utils.ErrMapNotReady
	}

	e.surface.ClearOverlays()
	e.overlays = make(map[string]Overlay)

	var points []Point
	if plan != nil {
		for _, day := range plan.Days {
			for i, act := range day.Activities {
				if act.Location == nil {
					continue
				}
				o := Overlay{
					ID:          fmt.Sprintf("d%02d-a%02d", day.Day, i+1),
					Point:       Point{Lat: act.Location.Lat, Lng: act.Location.Lng},
					Icon:        act.Type.Marker(),
					Title:       string(act.Type),
					Name:        act.Name,
					Description: act.Description,
				}
				e.overlays[o.ID] = o
				e.surface.AddOverlay(o)
				points = append(points, o.Point)
			}
		}
	}

	if len(points) == 0 {
		e.surface.CenterAndZoom(DefaultCenter, DefaultZoom)
	} else {
		e.surface.SetViewport(points)
	}

	e.state = StateSynced
	e.syncedOnce = true
	return nil
}

// Focus animates the camera to one point at detail zoom. Commands arriving
// before the first sync are dropped, not queued. Repeating the same point is
// idempotent. The overlay set is never touched.
func (e *Engine) Focus(p Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.syncedOnce {
		log.Printf("dropping focus command in state %s", e.state)
		return false
	}
	e.surface.FlyTo(p, detailZoom, focusDuration)
	return true
}

func (e *Engine) State() EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// OverlayCount reports the size of the live overlay set.
func (e *Engine) OverlayCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.overlays)
}

// Snapshot returns the render state for the client, or an empty snapshot
// while no surface exists (the placeholder states).
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.surface == nil {
		return Snapshot{}
	}
	return e.surface.Snapshot()
}
