package port

import (
	"context"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

// BookingNotifierPort - контракт для отправки уведомлений о бронях.
// Семантика fire-and-forget: реализация сама логирует сбои и ничего
// не возвращает - провал доставки не должен провалить бронирование.
type BookingNotifierPort interface {
	// BookingConfirmed уведомляет получателя о подтвержденной брони.
	BookingConfirmed(ctx context.Context, booking *domain.Booking, recipientEmail string)
}
