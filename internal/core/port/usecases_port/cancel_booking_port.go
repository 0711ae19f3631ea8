package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

type CancelBookingUseCasePort interface {
	Execute(ctx context.Context, userID string, bookingID uuid.UUID) (*domain.Booking, error)
}
