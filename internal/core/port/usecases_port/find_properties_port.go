package usecases_port

import (
	"context"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

type FindPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error)
}
