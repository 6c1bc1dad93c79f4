package main

import (
	"os"

	"github.com/labstack/echo/v5"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"barkmap/apiHandlers"
	"barkmap/events"
	"barkmap/events/handlers"
	"barkmap/events/types"
	"barkmap/internal/config"
	"barkmap/repositories"
	"barkmap/services"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Load()
	app := pocketbase.New()

	collections := services.NewCollectionService(cfg)
	dispatcher := events.NewDispatcher()

	app.OnBeforeServe().Add(func(e *core.ServeEvent) error {
		if err := collections.EnsureDogsCollection(app); err != nil {
			return err
		}
		if err := collections.EnsureBusinessRecordsCollection(app); err != nil {
			return err
		}
		if err := collections.EnsureAdminAccount(app); err != nil {
			return err
		}

		dogRepo := repositories.NewPocketBaseDogRepository(app)
		recordRepo := repositories.NewPocketBaseRecordRepository(app, cfg.Tile.IndexedZoomLevels)

		mvtService := services.NewMVTService(recordRepo, cfg.Tile)
		dogService := services.NewDogService(dogRepo)
		recordService := services.NewRecordService(recordRepo, dispatcher)

		cacheHandler := handlers.NewCacheHandler(mvtService)
		dispatcher.Subscribe(types.RecordCreatedEvent, cacheHandler.HandleRecordEvent)
		dispatcher.Subscribe(types.RecordDeletedEvent, cacheHandler.HandleRecordEvent)

		apiHandlers.NewMVTHandler(mvtService).SetupRoutes(e)
		apiHandlers.NewDogHandler(dogService).SetupRoutes(e)
		apiHandlers.NewRecordHandler(recordService).SetupRoutes(e)

		e.Router.Use(apis.ActivityLogger(app))
		e.Router.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Response().Header().Set("Access-Control-Allow-Origin", "*")
				c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

				if c.Request().Method == "OPTIONS" {
					return c.NoContent(204)
				}

				return next(c)
			}
		})

		return nil
	})

	if err := app.Start(); err != nil {
		log.Fatal().Err(err).Msg("barkmap server exited")
	}
}
