package service

import (
	"context"

	"github.com/MKhiriev/volcano-api/internal/config"
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/models"
)

type operatorService struct {
	operator models.Operator

	logger *logger.Logger
}

func NewOperatorService(cfg config.Operator, logger *logger.Logger) (OperatorService, error) {
	if cfg.Name == "" || cfg.StudentNumber == "" {
		return nil, ErrOperatorIsNotSpecified
	}

	return &operatorService{
		operator: models.Operator{Name: cfg.Name, StudentNumber: cfg.StudentNumber},
		logger:   logger,
	}, nil
}

func (s *operatorService) Me(ctx context.Context) models.Operator {
	return s.operator
}
