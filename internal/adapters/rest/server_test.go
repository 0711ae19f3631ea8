package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	token_adapter "github.com/ank17jaat/SpaceMate/internal/adapters/jwt"
	logger_adapter "github.com/ank17jaat/SpaceMate/internal/adapters/logger"
	memory_adapter "github.com/ank17jaat/SpaceMate/internal/adapters/memory"
	"github.com/ank17jaat/SpaceMate/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-handlers"

type testEnv struct {
	server       *Server
	properties   *memory_adapter.MemoryPropertyRepository
	bookings     *memory_adapter.MemoryBookingRepository
	tokenService *token_adapter.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	properties := memory_adapter.NewMemoryPropertyRepository(memory_adapter.SeedProperties())
	bookings := memory_adapter.NewMemoryBookingRepository()
	notifier := logger_adapter.NewLogBookingNotifier()

	tokenService, err := token_adapter.NewTokenService(testJWTSecret)
	require.NoError(t, err)

	baseLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})

	propertyHandlers := NewPropertyHandler(
		usecase.NewFindPropertiesUseCase(properties),
		usecase.NewGetPropertyDetailsUseCase(properties),
		usecase.NewCreatePropertyUseCase(properties),
		usecase.NewDeletePropertyUseCase(properties),
		usecase.NewGetOwnerPropertiesUseCase(properties),
		usecase.NewGetAmenitiesUseCase(properties),
	)
	bookingHandlers := NewBookingHandler(
		usecase.NewCreateBookingUseCase(properties, bookings, notifier),
		usecase.NewCancelBookingUseCase(bookings),
		usecase.NewGetUserBookingsUseCase(bookings),
	)
	authMiddleware := NewAuthMiddleware(tokenService)

	server := NewServer("0", propertyHandlers, bookingHandlers, authMiddleware,
		[]string{"http://localhost:5173"}, baseLogger)

	return &testEnv{
		server:       server,
		properties:   properties,
		bookings:     bookings,
		tokenService: tokenService,
	}
}

func (e *testEnv) tokenFor(t *testing.T, userID, email string) string {
	t.Helper()
	token, err := e.tokenService.GenerateToken(context.Background(), userID, email, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeProperties(t *testing.T, rec *httptest.ResponseRecorder) []PropertyResponse {
	t.Helper()
	var properties []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &properties))
	return properties
}

func TestGetProperties_ReturnsSeededCatalog(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/properties", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	properties := decodeProperties(t, rec)
	assert.Len(t, properties, 8)
	assert.True(t, properties[0].Featured)
}

func TestGetProperties_Filtering(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/properties?type=office&city=austin", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	properties := decodeProperties(t, rec)
	require.Len(t, properties, 1)
	assert.Equal(t, "Innovation Hub Coworking", properties[0].Name)
}

func TestGetProperties_AmenitiesRequireAll(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/properties?amenities=WiFi,Parking,Pool", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, p := range decodeProperties(t, rec) {
		assert.Contains(t, p.Amenities, "WiFi")
		assert.Contains(t, p.Amenities, "Parking")
		assert.Contains(t, p.Amenities, "Pool")
	}
}

func TestGetPropertyDetails(t *testing.T) {
	env := newTestEnv(t)

	catalog := decodeProperties(t, env.do(t, http.MethodGet, "/api/v1/properties", "", nil))
	require.NotEmpty(t, catalog)

	rec := env.do(t, http.MethodGet, "/api/v1/properties/"+catalog[0].ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var property PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &property))
	assert.Equal(t, catalog[0].Name, property.Name)
}

func TestGetPropertyDetails_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/properties/00000000-0000-0000-0000-000000000001", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAmenities_IsPublic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/amenities", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var amenities []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &amenities))
	assert.Contains(t, amenities, "WiFi")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, route := range []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/v1/properties"},
		{http.MethodGet, "/api/v1/my-properties"},
		{http.MethodGet, "/api/v1/bookings"},
		{http.MethodPost, "/api/v1/bookings"},
	} {
		rec := env.do(t, route.method, route.target, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.target)
	}
}

func TestProtectedRoutes_RejectForgedToken(t *testing.T) {
	env := newTestEnv(t)

	forged, err := func() (string, error) {
		other, err := token_adapter.NewTokenService("another-secret")
		if err != nil {
			return "", err
		}
		return other.GenerateToken(context.Background(), "user-1", "u@example.com", time.Hour)
	}()
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/v1/bookings", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProperty_AndListMine(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "owner-7", "owner@example.com")

	rec := env.do(t, http.MethodPost, "/api/v1/properties", token, map[string]interface{}{
		"name":            "Harbor View Hotel",
		"type":            "hotel",
		"description":     "Waterfront rooms near the aquarium",
		"city":            "Boston",
		"price_per_night": 180,
		"amenities":       []string{"WiFi"},
		"max_guests":      3,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "owner-7", created.OwnerID)
	assert.Equal(t, 0, created.Rating)

	mine := decodeProperties(t, env.do(t, http.MethodGet, "/api/v1/my-properties", token, nil))
	require.Len(t, mine, 1)
	assert.Equal(t, "Harbor View Hotel", mine[0].Name)
}

func TestCreateProperty_ContractValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "owner-7", "owner@example.com")

	// Без обязательного price_per_night
	rec := env.do(t, http.MethodPost, "/api/v1/properties", token, map[string]interface{}{
		"name":        "Nameless",
		"type":        "hotel",
		"description": "A hotel without a price",
		"city":        "Boston",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Недопустимый тип объекта
	rec = env.do(t, http.MethodPost, "/api/v1/properties", token, map[string]interface{}{
		"name":            "Castle",
		"type":            "castle",
		"description":     "A literal castle",
		"city":            "Edinburgh",
		"price_per_night": 100,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Неизвестное поле
	rec = env.do(t, http.MethodPost, "/api/v1/properties", token, map[string]interface{}{
		"name":            "Rated Hotel",
		"type":            "hotel",
		"description":     "Tries to set its own rating",
		"city":            "Boston",
		"price_per_night": 100,
		"rating":          5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProperty_OwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	ownerToken := env.tokenFor(t, "owner-7", "owner@example.com")
	intruderToken := env.tokenFor(t, "intruder", "bad@example.com")

	rec := env.do(t, http.MethodPost, "/api/v1/properties", ownerToken, map[string]interface{}{
		"name":            "Private Hotel",
		"type":            "hotel",
		"description":     "Owner-only establishment",
		"city":            "Boston",
		"price_per_night": 100,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(t, http.MethodDelete, "/api/v1/properties/"+created.ID, intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/properties/"+created.ID, ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/properties/"+created.ID, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBooking_FullFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "guest-1", "guest@example.com")

	catalog := decodeProperties(t, env.do(t, http.MethodGet, "/api/v1/properties?type=hotel", "", nil))
	require.NotEmpty(t, catalog)
	hotel := catalog[0]

	rec := env.do(t, http.MethodPost, "/api/v1/bookings", token, map[string]interface{}{
		"property_id": hotel.ID,
		"check_in":    "2024-06-01",
		"check_out":   "2024-06-04",
		"guests":      2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booking BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, 3*hotel.PricePerNight, booking.TotalPrice)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, hotel.Name, booking.Property.Name)

	// Бронь видна в списке пользователя
	rec = env.do(t, http.MethodGet, "/api/v1/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bookings []BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)

	// Отмена
	rec = env.do(t, http.MethodDelete, "/api/v1/bookings/"+booking.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cancelled BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)
}

func TestCreateBooking_BadRequests(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "guest-1", "guest@example.com")

	catalog := decodeProperties(t, env.do(t, http.MethodGet, "/api/v1/properties?type=hotel", "", nil))
	require.NotEmpty(t, catalog)
	hotel := catalog[0]

	cases := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{
			name: "checkout before checkin",
			body: map[string]interface{}{
				"property_id": hotel.ID, "check_in": "2024-06-04", "check_out": "2024-06-01",
			},
			want: http.StatusBadRequest,
		},
		{
			name: "malformed date",
			body: map[string]interface{}{
				"property_id": hotel.ID, "check_in": "June 1st", "check_out": "2024-06-04",
			},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown property",
			body: map[string]interface{}{
				"property_id": "00000000-0000-0000-0000-000000000001",
				"check_in":    "2024-06-01", "check_out": "2024-06-04",
			},
			want: http.StatusNotFound,
		},
		{
			name: "missing required fields",
			body: map[string]interface{}{"check_in": "2024-06-01"},
			want: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/v1/bookings", token, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestCancelBooking_OnlyOwner(t *testing.T) {
	env := newTestEnv(t)
	guestToken := env.tokenFor(t, "guest-1", "guest@example.com")
	intruderToken := env.tokenFor(t, "intruder", "bad@example.com")

	catalog := decodeProperties(t, env.do(t, http.MethodGet, "/api/v1/properties?type=hotel", "", nil))
	require.NotEmpty(t, catalog)

	rec := env.do(t, http.MethodPost, "/api/v1/bookings", guestToken, map[string]interface{}{
		"property_id": catalog[0].ID,
		"check_in":    "2024-06-01",
		"check_out":   "2024-06-02",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var booking BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))

	rec = env.do(t, http.MethodDelete, "/api/v1/bookings/"+booking.ID, intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBookingSnapshot_SurvivesPropertyDeletion(t *testing.T) {
	env := newTestEnv(t)
	ownerToken := env.tokenFor(t, "owner-7", "owner@example.com")
	guestToken := env.tokenFor(t, "guest-1", "guest@example.com")

	rec := env.do(t, http.MethodPost, "/api/v1/properties", ownerToken, map[string]interface{}{
		"name":            "Ephemeral Hotel",
		"type":            "hotel",
		"description":     "Here today, gone tomorrow",
		"city":            "Boston",
		"price_per_night": 90,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(t, http.MethodPost, "/api/v1/bookings", guestToken, map[string]interface{}{
		"property_id": created.ID,
		"check_in":    "2024-06-01",
		"check_out":   "2024-06-03",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/properties/"+created.ID, ownerToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// История бронирований показывает снимок удаленного объекта
	rec = env.do(t, http.MethodGet, "/api/v1/bookings", guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bookings []BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "Ephemeral Hotel", bookings[0].Property.Name)
}

func TestGetProperties_OwnerIdQueryFilter(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "owner-7", "owner@example.com")

	rec := env.do(t, http.MethodPost, "/api/v1/properties", token, map[string]interface{}{
		"name":            "Owned Offices",
		"type":            "office",
		"description":     "Dedicated desks downtown",
		"city":            "Denver",
		"price_per_night": 60,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	properties := decodeProperties(t, env.do(t, http.MethodGet,
		fmt.Sprintf("/api/v1/properties?ownerId=%s", "owner-7"), "", nil))
	require.Len(t, properties, 1)
	assert.Equal(t, "Owned Offices", properties[0].Name)
}
