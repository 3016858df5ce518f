package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripflow/internal/api/controllers"
	"tripflow/internal/repositories"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlanGenerator,
	ProvidePlanService,
	ProvidePlannerController,
)

// ProvidePlanGenerator selects the generation provider from the environment.
// The credential itself stays per-user and per-call; only provider and model
// are process config.
func ProvidePlanGenerator() (utils.PlanGeneratorInterface, error) {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "dashscope")
	model := os.Getenv("GENERATION_MODEL")

	log.Printf("Initializing %s plan generator", provider)
	return utils.NewPlanGenerator(provider, model)
}

func ProvidePlanService(
	generator utils.PlanGeneratorInterface,
	settingRepo repositories.SettingRepository,
) services.PlanServiceInterface {
	return services.NewPlanService(generator, settingRepo)
}

func ProvidePlannerController(planService services.PlanServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(planService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
