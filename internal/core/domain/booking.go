package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus - перечисление для статусов бронирования
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PropertySnapshot - денормализованный срез объекта на момент создания
// брони. Хранится вместе с бронированием, поэтому история показывается
// даже после удаления самого объекта.
type PropertySnapshot struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Location string       `json:"location"`
	City     string       `json:"city"`
	Type     PropertyType `json:"type"`
	Images   []string     `json:"images"`
}

// Booking - бронирование объекта на диапазон дат.
// Машина состояний: confirmed -> cancelled, обратного перехода нет.
// Оплата наличными при заселении, поэтому состояния "pending" нет -
// подтверждение мгновенное и безусловное.
type Booking struct {
	ID         uuid.UUID        `json:"id"`
	PropertyID uuid.UUID        `json:"property_id"`
	UserID     string           `json:"user_id"`
	CheckIn    time.Time        `json:"check_in"`
	CheckOut   time.Time        `json:"check_out"`
	Guests     *int             `json:"guests,omitempty"`
	TotalPrice int              `json:"total_price"`
	Status     BookingStatus    `json:"status"`
	Property   PropertySnapshot `json:"property"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewBooking - конструктор бронирования. Здесь живут все инварианты
// создания: валидация диапазона дат, проверка вместимости и серверный
// расчет итоговой цены (клиентской цене не доверяем).
func NewBooking(property *Property, userID string, checkIn, checkOut time.Time, guests *int) (*Booking, error) {
	nights := Nights(checkIn, checkOut)
	if nights < 1 {
		return nil, ErrInvalidDateRange
	}

	if guests != nil {
		if *guests < 1 {
			return nil, ErrInvalidGuests
		}
		if bound := property.CapacityBound(); bound != nil && *guests > *bound {
			return nil, ErrCapacityExceeded
		}
	}

	return &Booking{
		ID:         uuid.New(),
		PropertyID: property.ID,
		UserID:     userID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
		TotalPrice: nights * property.PricePerNight,
		Status:     BookingStatusConfirmed,
		Property:   property.Snapshot(),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Nights возвращает длительность брони в целых сутках.
// checkOut должен быть строго позже checkIn, иначе результат < 1.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// Cancel переводит бронь в статус cancelled. Повторная отмена - no-op.
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}

// IsCancelled сообщает, находится ли бронь в терминальном состоянии.
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
