package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyRepositoryPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID.String(),
	})

	ucLogger.Debug("Use case started", nil)

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
