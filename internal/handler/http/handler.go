package http

import (
	"time"

	"github.com/MKhiriev/go-cloud-editor/internal/config"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
)

type Handler struct {
	services *service.Services

	// tokenSignKey and tokenIssuer verify bearer API keys.
	tokenSignKey string
	tokenIssuer  string

	// hasher is nil when body signing is disabled.
	hasher *utils.Hasher

	requestTimeout time.Duration
	metrics        *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		tokenSignKey:   cfg.App.TokenSignKey,
		tokenIssuer:    cfg.App.TokenIssuer,
		hasher:         utils.NewHasher(cfg.App.HashKey),
		requestTimeout: cfg.Server.RequestTimeout,
		metrics:        newMetrics(),
		logger:         logger,
	}
}
