package app

import (
	"record-viewer/internal/config"
	"record-viewer/internal/record"
	"record-viewer/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	rdb *redis.Client,
	kafkaWriter *kafkago.Writer,
	auditLogger audit.Logger,
) record.Viewer {
	// --- Infrastructure adapters ---
	client := record.NewClient(cfg.RecordsAPIBaseURL, cfg.RecordsAPITimeout)

	guard := record.NewLocalUploadGuard()
	if rdb != nil {
		guard = record.NewRedisUploadGuard(rdb)
	}

	publisher := record.NewNoopEventPublisher()
	if kafkaWriter != nil {
		publisher = record.NewKafkaEventPublisher(kafkaWriter, cfg.KafkaRecordsTopic)
	}

	// --- Services ---
	viewer := record.NewViewer(client, guard, publisher, auditLogger)

	// --- Handlers ---
	recordHandler := record.NewHandler(viewer, cfg.MaxUploadBytes)

	// --- Routes Registration ---
	record.RegisterRoutes(router, recordHandler, record.RouteConfig{
		UploadRatePerSec: cfg.UploadRatePerSec,
		UploadRateBurst:  cfg.UploadRateBurst,
	})

	return viewer
}
