package logger_adapter

import (
	"context"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

// LogBookingNotifier - запасная реализация нотификатора: пишет уведомление
// в лог вместо брокера. Используется, когда RabbitMQ выключен в конфиге.
type LogBookingNotifier struct{}

func NewLogBookingNotifier() *LogBookingNotifier {
	return &LogBookingNotifier{}
}

func (n *LogBookingNotifier) BookingConfirmed(ctx context.Context, booking *domain.Booking, recipientEmail string) {
	logger := contextkeys.LoggerFromContext(ctx)
	logger.Info("Booking confirmation notification (broker disabled).", port.Fields{
		"component":     "LogBookingNotifier",
		"booking_id":    booking.ID.String(),
		"property_name": booking.Property.Name,
		"recipient":     recipientEmail,
		"check_in":      booking.CheckIn.Format("2006-01-02"),
		"check_out":     booking.CheckOut.Format("2006-01-02"),
		"total_price":   booking.TotalPrice,
	})
}
