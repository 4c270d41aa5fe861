package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/bharathz8/Nutri-Go/config"
	"github.com/bharathz8/Nutri-Go/controllers"
	"github.com/bharathz8/Nutri-Go/routes"
	"github.com/bharathz8/Nutri-Go/services"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}

	userSvc := services.NewUserService(db)
	entrySvc := services.NewEntryService(db)
	extractor := services.NewExtractionService(cfg)
	analyzer := services.NewAnalysisService(cfg)
	translator := services.NewTranslationService(cfg)

	r := routes.SetupRouter(routes.Controllers{
		Meta:      controllers.NewMetaController(cfg, translator),
		Users:     controllers.NewUserController(userSvc),
		Analyze:   controllers.NewAnalyzeController(userSvc, entrySvc, extractor, analyzer, translator),
		Intake:    controllers.NewIntakeController(userSvc, entrySvc),
		Translate: controllers.NewTranslateController(translator),
	})

	log.Infof("Starting nutrition tracker API on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
