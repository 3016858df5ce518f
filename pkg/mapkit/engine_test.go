package mapkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripflow/internal/models/plan_models"
	"tripflow/pkg/utils"
)

func okLoader() *Loader {
	return NewLoader(func(ctx context.Context, url string) error { return nil })
}

func failingLoader() *Loader {
	return NewLoader(func(ctx context.Context, url string) error {
		return errors.New("upstream unreachable")
	})
}

func readyEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(okLoader(), nil)
	require.NoError(t, e.Init(context.Background(), "ak-test"))
	require.Equal(t, StateSurfaceReady, e.State())
	return e
}

func planWithLocations(n int) *plan_models.TripPlan {
	plan := &plan_models.TripPlan{
		Title:  "Test Plan",
		Budget: plan_models.Budget{Total: 100},
	}
	day := plan_models.DayPlan{Day: 1, Theme: "Day one"}
	for i := 0; i < n; i++ {
		day.Activities = append(day.Activities, plan_models.Activity{
			Type: plan_models.ActivityAttraction,
			Name: "Stop",
			Location: &plan_models.Location{
				Lat: 39.9 + float64(i)*0.01,
				Lng: 116.4 + float64(i)*0.01,
			},
		})
	}
	plan.Days = []plan_models.DayPlan{day}
	return plan
}

func TestInitWithoutCredentialParksSession(t *testing.T) {
	e := NewEngine(okLoader(), nil)

	err := e.Init(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, StateCredentialMissing, e.State())

	// The parked session refuses sync but never panics.
	assert.ErrorIs(t, e.Sync(planWithLocations(1)), utils.ErrMissingCredential)
	assert.Equal(t, Snapshot{}, e.Snapshot())
}

func TestInitBlankCredentialParksSession(t *testing.T) {
	e := NewEngine(okLoader(), nil)

	err := e.Init(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Equal(t, StateCredentialMissing, e.State())
}

func TestInitAcquisitionFailure(t *testing.T) {
	e := NewEngine(failingLoader(), nil)

	err := e.Init(context.Background(), "ak-test")
	assert.ErrorIs(t, err, utils.ErrAcquisitionFailed)
	assert.Equal(t, StateResourceFailed, e.State())
	assert.ErrorIs(t, e.Sync(planWithLocations(1)), utils.ErrAcquisitionFailed)
}

func TestInitIsIdempotent(t *testing.T) {
	e := readyEngine(t)
	require.NoError(t, e.Init(context.Background(), "ak-test"))
	assert.Equal(t, StateSurfaceReady, e.State())
}

func TestSyncBeforeInitIsRejected(t *testing.T) {
	e := NewEngine(okLoader(), nil)
	assert.ErrorIs(t, e.Sync(planWithLocations(1)), utils.ErrMapNotReady)
}

func TestSyncPlotsOneOverlayPerLocatedActivity(t *testing.T) {
	e := readyEngine(t)

	plan := planWithLocations(3)
	// An unlocated activity must not produce an overlay.
	plan.Days[0].Activities = append(plan.Days[0].Activities, plan_models.Activity{
		Type: plan_models.ActivityRestaurant,
		Name: "Lunch somewhere",
	})

	require.NoError(t, e.Sync(plan))
	assert.Equal(t, StateSynced, e.State())
	assert.Equal(t, 3, e.OverlayCount())

	snap := e.Snapshot()
	require.Len(t, snap.Overlays, 3)
	for _, o := range snap.Overlays {
		assert.Equal(t, "marker-attraction", o.Icon)
		assert.Equal(t, "Stop", o.Name)
	}
}

func TestSyncReplacesOverlaysWholesale(t *testing.T) {
	e := readyEngine(t)

	require.NoError(t, e.Sync(planWithLocations(5)))
	require.Equal(t, 5, e.OverlayCount())

	require.NoError(t, e.Sync(planWithLocations(2)))
	assert.Equal(t, 2, e.OverlayCount())
	assert.Len(t, e.Snapshot().Overlays, 2)
}

func TestSyncIsIdempotent(t *testing.T) {
	e := readyEngine(t)
	plan := planWithLocations(4)

	require.NoError(t, e.Sync(plan))
	first := e.Snapshot()
	require.NoError(t, e.Sync(plan))
	second := e.Snapshot()

	assert.Equal(t, first, second)
}

func TestSyncViewportContainsEveryOverlay(t *testing.T) {
	e := readyEngine(t)
	plan := planWithLocations(3)
	require.NoError(t, e.Sync(plan))

	snap := e.Snapshot()
	var points []Point
	for _, o := range snap.Overlays {
		points = append(points, o.Point)
	}
	b, ok := BoundsOf(points)
	require.True(t, ok)
	assert.True(t, b.Contains(snap.Camera.Center))
}

func TestSyncEmptyPlanResetsCamera(t *testing.T) {
	e := readyEngine(t)

	require.NoError(t, e.Sync(planWithLocations(3)))
	require.NoError(t, e.Sync(nil))

	assert.Zero(t, e.OverlayCount())
	snap := e.Snapshot()
	assert.Empty(t, snap.Overlays)
	assert.Equal(t, DefaultCenter, snap.Camera.Center)
	assert.Equal(t, DefaultZoom, snap.Camera.Zoom)
}

func TestFocusBeforeFirstSyncIsDropped(t *testing.T) {
	e := readyEngine(t)

	ok := e.Focus(Point{Lat: 39.9163, Lng: 116.3972})
	assert.False(t, ok)
	assert.Equal(t, StateSurfaceReady, e.State())
}

func TestFocusMovesCameraOnly(t *testing.T) {
	e := readyEngine(t)
	require.NoError(t, e.Sync(planWithLocations(3)))
	before := e.Snapshot()

	target := Point{Lat: 39.9163, Lng: 116.3972}
	require.True(t, e.Focus(target))

	snap := e.Snapshot()
	assert.Equal(t, before.Overlays, snap.Overlays)
	assert.Equal(t, target, snap.Camera.Center)
	assert.Equal(t, detailZoom, snap.Camera.Zoom)
	assert.True(t, snap.Camera.Animated)
	assert.Equal(t, focusDuration, snap.Camera.AnimateFor)
}

func TestFocusIsIdempotent(t *testing.T) {
	e := readyEngine(t)
	require.NoError(t, e.Sync(planWithLocations(1)))

	target := Point{Lat: 31.230, Lng: 121.473}
	require.True(t, e.Focus(target))
	first := e.Snapshot()
	require.True(t, e.Focus(target))
	second := e.Snapshot()

	assert.Equal(t, first, second)
}

func TestOverlayIDsEncodeDayAndPosition(t *testing.T) {
	e := readyEngine(t)
	plan := planWithLocations(2)
	plan.Days = append(plan.Days, plan_models.DayPlan{
		Day: 2,
		Activities: []plan_models.Activity{
			{
				Type:     plan_models.ActivityHotel,
				Name:     "Checkin",
				Location: &plan_models.Location{Lat: 39.95, Lng: 116.45},
			},
		},
	})
	require.NoError(t, e.Sync(plan))

	ids := make(map[string]bool)
	for _, o := range e.Snapshot().Overlays {
		ids[o.ID] = true
	}
	assert.True(t, ids["d01-a01"])
	assert.True(t, ids["d01-a02"])
	assert.True(t, ids["d02-a01"])
}
