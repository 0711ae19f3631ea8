package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CreatePropertyRequest(t *testing.T) {
	valid := []byte(`{
		"name": "Grand Hotel",
		"type": "hotel",
		"description": "City-centre rooms",
		"city": "Boston",
		"price_per_night": 120,
		"amenities": ["WiFi"],
		"max_guests": 2
	}`)
	require.NoError(t, Validate("CreatePropertyRequest", "1.0.0", valid))

	// Бесплатное размещение допустимо, цена не может быть только отрицательной
	freeListing := []byte(`{"name": "Grand Hotel", "type": "hotel", "description": "City-centre rooms", "city": "Boston", "price_per_night": 0}`)
	assert.NoError(t, Validate("CreatePropertyRequest", "1.0.0", freeListing))

	negativePrice := []byte(`{"name": "Grand Hotel", "type": "hotel", "description": "City-centre rooms", "city": "Boston", "price_per_night": -1}`)
	assert.Error(t, Validate("CreatePropertyRequest", "1.0.0", negativePrice))

	missingPrice := []byte(`{"name": "Grand Hotel", "type": "hotel", "description": "City-centre rooms", "city": "Boston"}`)
	assert.Error(t, Validate("CreatePropertyRequest", "1.0.0", missingPrice))

	badType := []byte(`{"name": "Grand Hotel", "type": "castle", "description": "City-centre rooms", "city": "Boston", "price_per_night": 120}`)
	assert.Error(t, Validate("CreatePropertyRequest", "1.0.0", badType))

	unknownField := []byte(`{"name": "Grand Hotel", "type": "hotel", "description": "City-centre rooms", "city": "Boston", "price_per_night": 120, "rating": 5}`)
	assert.Error(t, Validate("CreatePropertyRequest", "1.0.0", unknownField))
}

func TestValidate_CreateBookingRequest(t *testing.T) {
	valid := []byte(`{
		"property_id": "2f0a4b44-9f58-4f05-9c68-0f32a2d7a001",
		"check_in": "2024-06-01",
		"check_out": "2024-06-04",
		"guests": 2
	}`)
	require.NoError(t, Validate("CreateBookingRequest", "1.0.0", valid))

	zeroGuests := []byte(`{
		"property_id": "2f0a4b44-9f58-4f05-9c68-0f32a2d7a001",
		"check_in": "2024-06-01",
		"check_out": "2024-06-04",
		"guests": 0
	}`)
	assert.Error(t, Validate("CreateBookingRequest", "1.0.0", zeroGuests))

	missingDates := []byte(`{"property_id": "2f0a4b44-9f58-4f05-9c68-0f32a2d7a001"}`)
	assert.Error(t, Validate("CreateBookingRequest", "1.0.0", missingDates))
}

func TestValidate_BookingConfirmedEvent(t *testing.T) {
	valid := []byte(`{
		"booking_id": "6c1f5a10-63ff-4c3f-8a52-b2f2a2d7a002",
		"property_id": "2f0a4b44-9f58-4f05-9c68-0f32a2d7a001",
		"property_name": "Grand Hotel",
		"user_id": "user-42",
		"recipient_email": "user@example.com",
		"check_in": "2024-06-01",
		"check_out": "2024-06-04",
		"guests": 2,
		"total_price": 360,
		"occurred_at": "2024-05-20T10:00:00Z"
	}`)
	require.NoError(t, Validate("BookingConfirmedEvent", "1.0.0", valid))

	missingTotal := []byte(`{
		"booking_id": "6c1f5a10-63ff-4c3f-8a52-b2f2a2d7a002",
		"property_id": "2f0a4b44-9f58-4f05-9c68-0f32a2d7a001",
		"property_name": "Grand Hotel",
		"user_id": "user-42",
		"check_in": "2024-06-01",
		"check_out": "2024-06-04",
		"occurred_at": "2024-05-20T10:00:00Z"
	}`)
	assert.Error(t, Validate("BookingConfirmedEvent", "1.0.0", missingTotal))
}

func TestValidate_UnknownContract(t *testing.T) {
	err := Validate("NoSuchContract", "1.0.0", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := Validate("CreateBookingRequest", "1.0.0", []byte(`{not json`))
	require.Error(t, err)
}
