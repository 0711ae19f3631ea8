package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

type GetPropertyDetailsUseCasePort interface {
	Execute(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error)
}
