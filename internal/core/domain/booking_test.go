package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewBooking_ComputesTotalPriceServerSide(t *testing.T) {
	property := NewProperty("", "Grand Luxe Hotel", PropertyTypeHotel, "", "Downtown", "New York", 100)

	booking, err := NewBooking(property, "user-1", date("2024-01-01"), date("2024-01-04"), nil)

	require.NoError(t, err)
	// 3 ночи по 100
	assert.Equal(t, 300, booking.TotalPrice)
	assert.Equal(t, BookingStatusConfirmed, booking.Status)
	assert.Equal(t, property.ID, booking.PropertyID)
	assert.Equal(t, "user-1", booking.UserID)
}

func TestNewBooking_SnapshotCopiesPropertyFields(t *testing.T) {
	property := NewProperty("owner-1", "Sunset Beach Resort", PropertyTypeHotel, "", "Beachfront Avenue", "Miami", 280)
	property.Images = []string{"/a.png", "/b.png"}

	booking, err := NewBooking(property, "user-1", date("2024-02-10"), date("2024-02-12"), nil)

	require.NoError(t, err)
	assert.Equal(t, "Sunset Beach Resort", booking.Property.Name)
	assert.Equal(t, "Miami", booking.Property.City)
	assert.Equal(t, PropertyTypeHotel, booking.Property.Type)
	assert.Equal(t, []string{"/a.png", "/b.png"}, booking.Property.Images)

	// Снимок - независимая копия
	property.Images[0] = "/mutated.png"
	assert.Equal(t, "/a.png", booking.Property.Images[0])
}

func TestNewBooking_RejectsNonPositiveNights(t *testing.T) {
	property := NewProperty("", "Hotel", PropertyTypeHotel, "", "", "", 100)

	_, err := NewBooking(property, "user-1", date("2024-01-04"), date("2024-01-04"), nil)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewBooking(property, "user-1", date("2024-01-04"), date("2024-01-01"), nil)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestNewBooking_RejectsNonPositiveGuests(t *testing.T) {
	property := NewProperty("", "Hotel", PropertyTypeHotel, "", "", "", 100)

	_, err := NewBooking(property, "user-1", date("2024-01-01"), date("2024-01-02"), intPtr(0))
	assert.ErrorIs(t, err, ErrInvalidGuests)
}

func TestNewBooking_EnforcesCapacityBound(t *testing.T) {
	hotel := NewProperty("", "Hotel", PropertyTypeHotel, "", "", "", 100)
	hotel.MaxGuests = intPtr(4)

	_, err := NewBooking(hotel, "user-1", date("2024-01-01"), date("2024-01-02"), intPtr(5))
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	booking, err := NewBooking(hotel, "user-1", date("2024-01-01"), date("2024-01-02"), intPtr(4))
	require.NoError(t, err)
	assert.Equal(t, 4, *booking.Guests)
}

func TestNewBooking_OfficeUsesMaxOccupancy(t *testing.T) {
	office := NewProperty("", "Coworking", PropertyTypeOffice, "", "", "", 45)
	office.MaxOccupancy = intPtr(10)

	_, err := NewBooking(office, "user-1", date("2024-01-01"), date("2024-01-02"), intPtr(11))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestNewBooking_NoCapacityBoundMeansAnyGuests(t *testing.T) {
	property := NewProperty("", "Hotel", PropertyTypeHotel, "", "", "", 100)

	booking, err := NewBooking(property, "user-1", date("2024-01-01"), date("2024-01-02"), intPtr(50))
	require.NoError(t, err)
	assert.Equal(t, 50, *booking.Guests)
}

func TestBookingCancel_IsTerminal(t *testing.T) {
	property := NewProperty("", "Hotel", PropertyTypeHotel, "", "", "", 100)
	booking, err := NewBooking(property, "user-1", date("2024-01-01"), date("2024-01-02"), nil)
	require.NoError(t, err)

	assert.False(t, booking.IsCancelled())
	booking.Cancel()
	assert.True(t, booking.IsCancelled())

	// Повторная отмена ничего не меняет
	booking.Cancel()
	assert.Equal(t, BookingStatusCancelled, booking.Status)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(date("2024-01-01"), date("2024-01-02")))
	assert.Equal(t, 3, Nights(date("2024-01-01"), date("2024-01-04")))
	assert.Equal(t, 0, Nights(date("2024-01-01"), date("2024-01-01")))
	assert.Equal(t, -2, Nights(date("2024-01-03"), date("2024-01-01")))
}
