package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/contracts"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
	"github.com/ank17jaat/SpaceMate/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BookingHandler struct {
	createBookingUC   usecases_port.CreateBookingUseCasePort
	cancelBookingUC   usecases_port.CancelBookingUseCasePort
	getUserBookingsUC usecases_port.GetUserBookingsUseCasePort
}

func NewBookingHandler(
	createBookingUC usecases_port.CreateBookingUseCasePort,
	cancelBookingUC usecases_port.CancelBookingUseCasePort,
	getUserBookingsUC usecases_port.GetUserBookingsUseCasePort) *BookingHandler {
	return &BookingHandler{
		createBookingUC:   createBookingUC,
		cancelBookingUC:   cancelBookingUC,
		getUserBookingsUC: getUserBookingsUC,
	}
}

// CreateBooking обрабатывает POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	claims, ok := UserClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Проверяем тело по контракту до декодирования
	if err := contracts.Validate("CreateBookingRequest", "1.0.0", body); err != nil {
		logger.Warn("Create booking request failed contract validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var req CreateBookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid check_in date, expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid check_out date, expected YYYY-MM-DD")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "CreateBooking",
		"user_id":     claims.UserID,
		"property_id": req.PropertyID,
	})
	handlerLogger.Debug("Processing request to create booking", nil)

	booking, err := h.createBookingUC.Execute(r.Context(), claims.UserID, claims.Email, usecases_port.CreateBookingInput{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrInvalidDateRange):
			WriteJSONError(w, http.StatusBadRequest, "Check-out must be after check-in")
		case errors.Is(err, domain.ErrInvalidGuests):
			WriteJSONError(w, http.StatusBadRequest, "Guests must be a positive number")
		case errors.Is(err, domain.ErrCapacityExceeded):
			WriteJSONError(w, http.StatusBadRequest, "Guests exceed property capacity")
		default:
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	handlerLogger.Info("Booking created", port.Fields{"booking_id": booking.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toBookingResponse(*booking))
}

// CancelBooking обрабатывает DELETE /api/v1/bookings/{bookingID}
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	claims, ok := UserClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	bookingIDStr := chi.URLParam(r, "bookingID")
	bookingID, err := uuid.Parse(bookingIDStr)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "CancelBooking",
		"booking_id": bookingIDStr,
		"user_id":    claims.UserID,
	})

	booking, err := h.cancelBookingUC.Execute(r.Context(), claims.UserID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			WriteJSONError(w, http.StatusNotFound, "Booking not found")
		case errors.Is(err, domain.ErrNotOwner):
			WriteJSONError(w, http.StatusForbidden, "Only the booking owner can cancel it")
		default:
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}

	handlerLogger.Info("Booking cancelled", nil)
	RespondWithJSON(w, http.StatusOK, toBookingResponse(*booking))
}

// GetUserBookings обрабатывает GET /api/v1/bookings
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	claims, ok := UserClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetUserBookings",
		"user_id": claims.UserID,
	})

	bookings, err := h.getUserBookingsUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	responses := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = toBookingResponse(b)
	}
	RespondWithJSON(w, http.StatusOK, responses)
}
