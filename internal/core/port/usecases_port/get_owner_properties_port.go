package usecases_port

import (
	"context"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

type GetOwnerPropertiesUseCasePort interface {
	Execute(ctx context.Context, ownerID string) ([]domain.Property, error)
}
