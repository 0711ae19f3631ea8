package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

type CancelBookingUseCase struct {
	bookings port.BookingRepositoryPort
}

func NewCancelBookingUseCase(bookings port.BookingRepositoryPort) *CancelBookingUseCase {
	return &CancelBookingUseCase{bookings: bookings}
}

func (uc *CancelBookingUseCase) Execute(ctx context.Context, userID string, bookingID uuid.UUID) (*domain.Booking, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "CancelBooking",
		"user_id":    userID,
		"booking_id": bookingID.String(),
	})

	ucLogger.Info("Use case started", nil)

	booking, err := uc.bookings.FindByID(ctx, bookingID)
	if err != nil {
		ucLogger.Warn("Booking lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Отменить бронь может только ее создатель.
	if booking.UserID != userID {
		ucLogger.Warn("Cancel rejected: caller is not the booking owner", nil)
		return nil, domain.ErrNotOwner
	}

	// Повторная отмена - no-op success: терминальное состояние не меняется.
	if booking.IsCancelled() {
		ucLogger.Info("Booking already cancelled, nothing to do", nil)
		return booking, nil
	}

	if err := uc.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		ucLogger.Error("Repository failed to cancel booking", err, nil)
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Cancel()
	ucLogger.Info("Use case finished successfully", nil)
	return booking, nil
}
