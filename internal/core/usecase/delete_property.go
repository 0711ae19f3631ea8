package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

type DeletePropertyUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewDeletePropertyUseCase(properties port.PropertyRepositoryPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, callerID string, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"caller_id":   callerID,
		"property_id": propertyID.String(),
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return err
	}

	// Объект с записанным владельцем может удалить только владелец.
	// Seed-данные владельца не имеют и остаются удаляемыми.
	if property.OwnerID != "" && property.OwnerID != callerID {
		ucLogger.Warn("Delete rejected: caller is not the owner", nil)
		return domain.ErrNotOwner
	}

	if err := uc.properties.Delete(ctx, propertyID); err != nil {
		ucLogger.Error("Repository failed to delete property", err, nil)
		return err
	}

	// Связанные брони сохраняют снимок объекта, каскадная чистка не нужна.
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
