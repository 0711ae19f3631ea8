package usecase

import (
	"context"
	"fmt"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

type GetAmenitiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetAmenitiesUseCase(properties port.PropertyRepositoryPort) *GetAmenitiesUseCase {
	return &GetAmenitiesUseCase{properties: properties}
}

func (uc *GetAmenitiesUseCase) Execute(ctx context.Context) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetAmenities"})

	ucLogger.Debug("Use case started", nil)

	amenities, err := uc.properties.ListAmenities(ctx)
	if err != nil {
		ucLogger.Error("Repository failed to list amenities", err, nil)
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(amenities)})
	return amenities, nil
}
