package handler

import (
	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-course-auth/internal/handler/http"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger, http.WithRequestTimeout(cfg.RequestTimeout))
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
