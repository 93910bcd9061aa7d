package app

import (
	"context"

	"record-viewer/internal/config"
	"record-viewer/internal/middleware"
	"record-viewer/internal/shared/audit"
	"record-viewer/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Closer releases the infrastructure opened by BuildApp.
type Closer func()

func BuildApp(router *gin.Engine, cfg config.Config, auditLogger audit.Logger) (Closer, error) {
	logger := zap.L().Named("app")

	// 1. Optional infrastructure
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		rdb = client
		logger.Info("redis upload lock enabled", zap.String("addr", cfg.RedisAddr))
	}

	var kafkaWriter *kafkago.Writer
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
		if err != nil {
			if rdb != nil {
				_ = rdb.Close()
			}
			return nil, err
		}
		kafkaWriter = writer
		logger.Info("kafka upload events enabled",
			zap.String("broker", cfg.KafkaBroker),
			zap.String("topic", cfg.KafkaRecordsTopic),
		)
	}

	closer := func() {
		if kafkaWriter != nil {
			_ = kafkaWriter.Close()
		}
		if rdb != nil {
			_ = rdb.Close()
		}
	}

	// 2. Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// 3. Modules & routes
	viewer := registerModules(router, cfg, rdb, kafkaWriter, auditLogger)

	// Initial load, like a page mount. Failure is not fatal; the page shows
	// the notice and the user can upload or refresh.
	if err := viewer.LoadRecords(context.Background()); err != nil {
		logger.Warn("initial record load failed", zap.Error(err))
	}

	return closer, nil
}
