package usecase

import (
	"context"
	"fmt"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

type FindPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewFindPropertiesUseCase(properties port.PropertyRepositoryPort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{properties: properties}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"filters":  filters,
	})

	ucLogger.Debug("Use case started", nil)

	result, err := uc.properties.Find(ctx, filters)
	if err != nil {
		ucLogger.Error("Repository failed to find properties", err, nil)
		return nil, fmt.Errorf("failed to find properties: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(result)})
	return result, nil
}
