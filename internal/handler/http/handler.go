package http

import (
	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// sessionCheck enables session-cache consultation in the auth middleware.
	sessionCheck bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("session_check", cfg.SessionCheck).Msg("http handler created")
	return &Handler{
		services:     services,
		sessionCheck: cfg.SessionCheck,
		logger:       logger,
	}
}
