package usecases_port

import (
	"context"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

type GetUserBookingsUseCasePort interface {
	Execute(ctx context.Context, userID string) ([]domain.Booking, error)
}
