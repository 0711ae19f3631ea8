package constants

// Обменник для событий бронирований
const BookingEventsExchange = "booking_events_exchange"

// Ключи маршрутизации
const (
	RoutingKeyBookingConfirmed = "notify.booking.confirmed"
)
