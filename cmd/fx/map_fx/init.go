package map_fx

import (
	"time"

	"go.uber.org/fx"

	"tripflow/internal/api/controllers"
	"tripflow/internal/repositories"
	"tripflow/internal/services"
	"tripflow/pkg/mapkit"
	mem "tripflow/pkg/memcache"
)

var Module = fx.Provide(
	provideLoader,
	provideSessionStore,
	provideMapService,
	provideMapController,
)

// provideLoader is the process-wide capability loader: the map script is
// acquired once per process, whoever asks first.
func provideLoader() *mapkit.Loader {
	return mapkit.NewLoader(nil)
}

func provideSessionStore() mem.MapSessionStore {
	return mem.NewMapSessions(2 * time.Hour)
}

func provideMapService(
	loader *mapkit.Loader,
	sessions mem.MapSessionStore,
	settingRepo repositories.SettingRepository,
	tripRepo repositories.TripRepository,
) services.MapServiceInterface {
	return services.NewMapService(loader, sessions, settingRepo, tripRepo)
}

func provideMapController(mapService services.MapServiceInterface) *controllers.MapController {
	return controllers.NewMapController(mapService)
}
