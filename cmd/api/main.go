package main

import (
	"record-viewer/internal/app"
	"record-viewer/internal/bootstrap"
	"record-viewer/internal/config"
	"record-viewer/internal/shared/apperror"
	"record-viewer/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}
	r := gin.Default()

	auditLogger := audit.NewStdoutLogger()

	// build dependency + routes
	closeInfra, err := app.BuildApp(r, cfg, auditLogger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer closeInfra()

	logger.Info("records backend", zap.String("base_url", cfg.RecordsAPIBaseURL))

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     cfg.ReadTimeout,
			WriteTimeout:    cfg.WriteTimeout,
			IdleTimeout:     cfg.IdleTimeout,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
		auditLogger,
	)
}
