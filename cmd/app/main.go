package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripflow/cmd/fx/account_fx"
	"tripflow/cmd/fx/db_fx"
	"tripflow/cmd/fx/expense_fx"
	"tripflow/cmd/fx/map_fx"
	"tripflow/cmd/fx/planner_fx"
	"tripflow/cmd/fx/settings_fx"
	"tripflow/cmd/fx/trip_fx"
	"tripflow/internal/api/controllers"
	"tripflow/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		settings_fx.Module,
		planner_fx.Module,
		trip_fx.Module,
		expense_fx.Module,
		map_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	settingsController *controllers.SettingsController,
	plannerController *controllers.PlannerController,
	tripController *controllers.TripController,
	expenseController *controllers.ExpenseController,
	mapController *controllers.MapController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, settingsController, plannerController, tripController, expenseController, mapController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	settingsController *controllers.SettingsController,
	plannerController *controllers.PlannerController,
	tripController *controllers.TripController,
	expenseController *controllers.ExpenseController,
	mapController *controllers.MapController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.RegisterHandler)
	accounts.POST("/login", accountController.LoginHandler)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	settings := authed.Group("settings")
	settings.GET("", settingsController.GetSettingsHandler)
	settings.PUT("", settingsController.UpdateSettingsHandler)

	planner := authed.Group("planner")
	planner.POST("/generate", plannerController.GeneratePlanHandler)
	planner.POST("/place-details", plannerController.PlaceDetailsHandler)

	trips := authed.Group("trips")
	trips.POST("", tripController.SaveTripHandler)
	trips.GET("", tripController.ListTripsHandler)
	trips.GET("/:id", tripController.GetTripHandler)
	trips.DELETE("/:id", tripController.DeleteTripHandler)
	trips.POST("/:id/expenses", expenseController.AddExpenseHandler)
	trips.GET("/:id/expenses", expenseController.ListExpensesHandler)
	trips.GET("/:id/expenses/stats", expenseController.StatsHandler)

	expenses := authed.Group("expenses")
	expenses.PUT("/:expenseId", expenseController.UpdateExpenseHandler)
	expenses.DELETE("/:expenseId", expenseController.DeleteExpenseHandler)

	maps := authed.Group("map/sessions")
	maps.POST("", mapController.CreateSessionHandler)
	maps.PUT("/:id/plan", mapController.SyncPlanHandler)
	maps.POST("/:id/focus", mapController.FocusHandler)
	maps.GET("/:id", mapController.GetStateHandler)
	maps.DELETE("/:id", mapController.CloseSessionHandler)
}
