package usecase

import (
	"context"
	"fmt"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

type GetOwnerPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetOwnerPropertiesUseCase(properties port.PropertyRepositoryPort) *GetOwnerPropertiesUseCase {
	return &GetOwnerPropertiesUseCase{properties: properties}
}

func (uc *GetOwnerPropertiesUseCase) Execute(ctx context.Context, ownerID string) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetOwnerProperties",
		"owner_id": ownerID,
	})

	ucLogger.Debug("Use case started", nil)

	result, err := uc.properties.FindByOwner(ctx, ownerID)
	if err != nil {
		ucLogger.Error("Repository failed to find owner properties", err, nil)
		return nil, fmt.Errorf("failed to find owner properties: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(result)})
	return result, nil
}
