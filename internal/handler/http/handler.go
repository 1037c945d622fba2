// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/internal/service"
	"github.com/MKhiriev/volcano-api/internal/utils"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
}
