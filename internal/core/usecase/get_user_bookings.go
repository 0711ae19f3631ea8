package usecase

import (
	"context"
	"fmt"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

type GetUserBookingsUseCase struct {
	bookings port.BookingRepositoryPort
}

func NewGetUserBookingsUseCase(bookings port.BookingRepositoryPort) *GetUserBookingsUseCase {
	return &GetUserBookingsUseCase{bookings: bookings}
}

func (uc *GetUserBookingsUseCase) Execute(ctx context.Context, userID string) ([]domain.Booking, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserBookings",
		"user_id":  userID,
	})

	ucLogger.Debug("Use case started", nil)

	// Брони уже обогащены снимком объекта, сделанным при создании,
	// поэтому отдельного похода за объектами не требуется.
	result, err := uc.bookings.FindByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository failed to find user bookings", err, nil)
		return nil, fmt.Errorf("failed to find user bookings: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(result)})
	return result, nil
}
