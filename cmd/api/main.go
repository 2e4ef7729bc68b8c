package main

import (
	"fmt"
	"os"

	"goanova/adapters/dist"
	"goanova/app"
	"goanova/internal"
	"goanova/internal/analysis"
	"goanova/internal/api"
	"goanova/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.Server.GinMode)

	calc := analysis.NewCalculator(dist.NewFProvider())
	service := app.NewAnalysisService(calc, cfg.Analysis.Alpha, logger)
	router := api.NewRouter(service, calc)

	logger.Info("goanova API listening on :%s (alpha=%g)", cfg.Server.Port, cfg.Analysis.Alpha)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Error("server exited: %v", err)
		os.Exit(1)
	}
}
