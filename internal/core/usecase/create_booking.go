package usecase

import (
	"context"
	"fmt"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
	"github.com/ank17jaat/SpaceMate/internal/core/port/usecases_port"
)

type CreateBookingUseCase struct {
	properties port.PropertyRepositoryPort
	bookings   port.BookingRepositoryPort
	notifier   port.BookingNotifierPort
}

func NewCreateBookingUseCase(
	properties port.PropertyRepositoryPort,
	bookings port.BookingRepositoryPort,
	notifier port.BookingNotifierPort,
) *CreateBookingUseCase {
	return &CreateBookingUseCase{
		properties: properties,
		bookings:   bookings,
		notifier:   notifier,
	}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, userID, userEmail string, input usecases_port.CreateBookingInput) (*domain.Booking, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateBooking",
		"user_id":     userID,
		"property_id": input.PropertyID.String(),
	})

	ucLogger.Info("Use case started", nil)

	// Шаг 1: Объект должен существовать в момент создания брони.
	property, err := uc.properties.FindByID(ctx, input.PropertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Шаги 2-4: валидация диапазона/гостей и серверный расчет цены
	// живут в доменном конструкторе. При ошибке ничего не записывается.
	booking, err := domain.NewBooking(property, userID, input.CheckIn, input.CheckOut, input.Guests)
	if err != nil {
		ucLogger.Warn("Booking validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Шаг 5: Сохраняем бронь со статусом confirmed.
	if err := uc.bookings.Create(ctx, booking); err != nil {
		ucLogger.Error("Repository failed to create booking", err, nil)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	ucLogger = ucLogger.WithFields(port.Fields{"booking_id": booking.ID.String()})
	ucLogger.Debug("Booking persisted, dispatching notification", nil)

	// Шаг 6: Уведомление fire-and-forget. Адаптер сам логирует сбои,
	// провал доставки никогда не проваливает бронирование.
	uc.notifier.BookingConfirmed(ctx, booking, userEmail)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_price": booking.TotalPrice,
		"nights":      domain.Nights(booking.CheckIn, booking.CheckOut),
	})
	return booking, nil
}
