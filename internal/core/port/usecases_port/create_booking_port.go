package usecases_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

// CreateBookingInput - намерение бронирования от аутентифицированного
// пользователя. Email нужен только для уведомления.
type CreateBookingInput struct {
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     *int
}

type CreateBookingUseCasePort interface {
	Execute(ctx context.Context, userID, userEmail string, input CreateBookingInput) (*domain.Booking, error)
}
