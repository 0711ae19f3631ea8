package usecase

import (
	"context"
	"fmt"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
	"github.com/ank17jaat/SpaceMate/internal/core/port/usecases_port"
)

type CreatePropertyUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewCreatePropertyUseCase(properties port.PropertyRepositoryPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{properties: properties}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, ownerID string, input usecases_port.CreatePropertyInput) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"owner_id": ownerID,
		"type":     input.Type,
		"city":     input.City,
	})

	ucLogger.Info("Use case started", nil)

	// Обязательность полей уже проверена контрактом на REST-границе,
	// здесь только сборка сущности с дефолтами.
	property := domain.NewProperty(ownerID, input.Name, input.Type, input.Description, input.Location, input.City, input.PricePerNight)
	if len(input.Images) > 0 {
		property.Images = input.Images
	}
	if len(input.Amenities) > 0 {
		property.Amenities = input.Amenities
	}
	property.MaxGuests = input.MaxGuests
	property.MaxOccupancy = input.MaxOccupancy

	if err := uc.properties.Create(ctx, property); err != nil {
		ucLogger.Error("Repository failed to create property", err, nil)
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID.String()})
	return property, nil
}
