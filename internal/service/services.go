// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/volcano-api/internal/config"
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/internal/store"
	"github.com/MKhiriev/volcano-api/internal/validators"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	VolcanoService  VolcanoService
	OperatorService OperatorService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	operatorService, err := NewOperatorService(cfg.Operator, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validators.NewCredentialsValidator(), cfg.App, time.Now, logger),
		ProfileService:  NewProfileService(storages.UserRepository, validators.NewProfileValidator(time.Now), logger),
		VolcanoService:  NewVolcanoService(storages.VolcanoRepository, logger),
		OperatorService: operatorService,
	}, nil
}
