package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/contracts"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
	"github.com/ank17jaat/SpaceMate/pkg/rabbitmq/rabbitmq_producer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingConfirmedEventDTO - тело события для очереди уведомлений
type BookingConfirmedEventDTO struct {
	BookingID      uuid.UUID `json:"booking_id"`
	PropertyID     uuid.UUID `json:"property_id"`
	PropertyName   string    `json:"property_name"`
	UserID         string    `json:"user_id"`
	RecipientEmail string    `json:"recipient_email,omitempty"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Guests         *int      `json:"guests,omitempty"`
	TotalPrice     int       `json:"total_price"`
	OccurredAt     string    `json:"occurred_at"`
}

// BookingNotifierAdapter публикует событие подтверждения бронирования.
// Доставка fire-and-forget: бронирование уже сохранено, поэтому ошибки
// публикации логируются, но наружу не возвращаются.
type BookingNotifierAdapter struct {
	producer   *rabbitmq_producer.Publisher
	routingKey string
}

func NewBookingNotifierAdapter(producer *rabbitmq_producer.Publisher, routingKey string) (*BookingNotifierAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &BookingNotifierAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

// BookingConfirmed публикует событие о новом бронировании.
func (a *BookingNotifierAdapter) BookingConfirmed(ctx context.Context, booking *domain.Booking, recipientEmail string) {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "BookingNotifierAdapter",
		"routing_key": a.routingKey,
		"booking_id":  booking.ID.String(),
	})

	dto := BookingConfirmedEventDTO{
		BookingID:      booking.ID,
		PropertyID:     booking.PropertyID,
		PropertyName:   booking.Property.Name,
		UserID:         booking.UserID,
		RecipientEmail: recipientEmail,
		CheckIn:        booking.CheckIn.Format("2006-01-02"),
		CheckOut:       booking.CheckOut.Format("2006-01-02"),
		Guests:         booking.Guests,
		TotalPrice:     booking.TotalPrice,
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(dto)
	if err != nil {
		adapterLogger.Error("Failed to marshal booking event, skipping publish", err, nil)
		return
	}

	// Проверяем событие по контракту до отправки в брокер
	if err := contracts.Validate("BookingConfirmedEvent", "1.0.0", body); err != nil {
		adapterLogger.Error("Booking event does not match contract, skipping publish", err, nil)
		return
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Type:         "BookingConfirmedEvent",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      amqp.Table{"version": "1.0.0"},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Устанавливаем таймаут на операцию публикации, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish booking confirmed event", err, nil)
		return
	}

	adapterLogger.Info("Booking confirmed event published.", port.Fields{"recipient": recipientEmail})
}
