package usecases_port

import (
	"context"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

// CreatePropertyInput - входные данные владельца для нового объекта.
// Поля с дефолтами (rating, images, amenities, featured) необязательны.
type CreatePropertyInput struct {
	Name          string
	Type          domain.PropertyType
	Description   string
	Location      string
	City          string
	PricePerNight int
	Images        []string
	Amenities     []string
	MaxGuests     *int
	MaxOccupancy  *int
}

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, ownerID string, input CreatePropertyInput) (*domain.Property, error)
}
