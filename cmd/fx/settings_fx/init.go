package settings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripflow/internal/api/controllers"
	"tripflow/internal/repositories"
	"tripflow/internal/services"
)

var Module = fx.Provide(provideSettingRepo, provideSettingService, provideSettingsController)

func provideSettingRepo(db *gorm.DB) repositories.SettingRepository {
	return repositories.NewSettingRepository(db)
}

func provideSettingService(settingRepo repositories.SettingRepository) services.SettingServiceInterface {
	return services.NewSettingService(settingRepo)
}

func provideSettingsController(settingService services.SettingServiceInterface) *controllers.SettingsController {
	return controllers.NewSettingsController(settingService)
}
