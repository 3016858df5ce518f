package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tripflow/internal/models/db_models"
	"tripflow/internal/models/plan_models"
	"tripflow/internal/models/response_models"
	"tripflow/internal/repositories"
	"tripflow/pkg/mapkit"
	mem "tripflow/pkg/memcache"
	"tripflow/pkg/utils"
)

// MapServiceInterface manages map sessions: one sync engine per viewing
// session, all sharing the process-wide capability loader.
type MapServiceInterface interface {
	CreateSession(ctx context.Context, userId string) (*response_models.MapSessionState, error)
	SyncPlan(ctx context.Context, sessionId, userId, tripId string, plan *plan_models.TripPlan) (*response_models.MapSessionState, error)
	Focus(ctx context.Context, sessionId string, lat, lng float64) (*response_models.MapSessionState, error)
	GetState(ctx context.Context, sessionId string) (*response_models.MapSessionState, error)
	CloseSession(ctx context.Context, sessionId string)
}

type MapService struct {
	loader      *mapkit.Loader
	sessions    mem.MapSessionStore
	settingRepo repositories.SettingRepository
	tripRepo    repositories.TripRepository
}

func NewMapService(
	loader *mapkit.Loader,
	sessions mem.MapSessionStore,
	settingRepo repositories.SettingRepository,
	tripRepo repositories.TripRepository,
) MapServiceInterface {
	return &MapService{
		loader:      loader,
		sessions:    sessions,
		settingRepo: settingRepo,
		tripRepo:    tripRepo,
	}
}

// CreateSession builds a fresh engine for the caller. A missing credential or
// a failed capability load leaves the session in its placeholder state; the
// session is still created so the client can render the guidance.
func (m *MapService) CreateSession(ctx context.Context, userId string) (*response_models.MapSessionState, error) {
	credential, err := m.settingRepo.Get(ctx, userId, db_models.SettingBaiduMapAK)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	engine := mapkit.NewEngine(m.loader, nil)
	if err := engine.Init(ctx, credential); err != nil {
		log.Printf("map session init degraded: %v", err)
	}

	sessionId := uuid.New().String()
	m.sessions.Put(sessionId, engine)
	return m.snapshot(sessionId, engine), nil
}

// SyncPlan replaces the session's overlay set from a saved trip or an inline
// plan. Passing neither resyncs against an empty plan (default view).
func (m *MapService) SyncPlan(ctx context.Context, sessionId, userId, tripId string, plan *plan_models.TripPlan) (*response_models.MapSessionState, error) {
	engine, ok := m.sessions.Get(sessionId)
	if !ok {
		return nil, utils.ErrMapSessionGone
	}

	if tripId != "" {
		trip, err := m.tripRepo.FindByIdForUser(ctx, tripId, userId)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if trip == nil {
			return nil, utils.ErrTripNotFound
		}
		plan = &trip.Plan
	} else if plan != nil {
		// Inline plans arrive straight from the client; saved trips were
		// already validated on save.
		if err := plan.Validate(); err != nil {
			return nil, utils.ErrInvalidInput
		}
	}

	if err := engine.Sync(plan); err != nil {
		return nil, err
	}
	return m.snapshot(sessionId, engine), nil
}

func (m *MapService) Focus(ctx context.Context, sessionId string, lat, lng float64) (*response_models.MapSessionState, error) {
	engine, ok := m.sessions.Get(sessionId)
	if !ok {
		return nil, utils.ErrMapSessionGone
	}

	// Focus commands before the first sync are dropped by the engine.
	engine.Focus(mapkit.Point{Lat: lat, Lng: lng})
	return m.snapshot(sessionId, engine), nil
}

func (m *MapService) GetState(ctx context.Context, sessionId string) (*response_models.MapSessionState, error) {
	engine, ok := m.sessions.Get(sessionId)
	if !ok {
		return nil, utils.ErrMapSessionGone
	}
	return m.snapshot(sessionId, engine), nil
}

func (m *MapService) CloseSession(ctx context.Context, sessionId string) {
	m.sessions.Delete(sessionId)
}

func (m *MapService) snapshot(sessionId string, engine *mapkit.Engine) *response_models.MapSessionState {
	snap := engine.Snapshot()
	return &response_models.MapSessionState{
		SessionID: sessionId,
		State:     engine.State().String(),
		Overlays:  snap.Overlays,
		Camera:    snap.Camera,
	}
}
