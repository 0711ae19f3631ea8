package rest

import (
	"time"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

// CreatePropertyRequest - тело POST /api/v1/properties
type CreatePropertyRequest struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	PricePerNight int      `json:"price_per_night"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	MaxGuests     *int     `json:"max_guests"`
	MaxOccupancy  *int     `json:"max_occupancy"`
}

// CreateBookingRequest - тело POST /api/v1/bookings.
// Даты передаются строками вида "2006-01-02".
type CreateBookingRequest struct {
	PropertyID string `json:"property_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     *int   `json:"guests"`
}

// PropertyResponse - DTO объекта каталога.
type PropertyResponse struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"owner_id,omitempty"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	PricePerNight int      `json:"price_per_night"`
	Rating        int      `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	MaxGuests     *int     `json:"max_guests,omitempty"`
	MaxOccupancy  *int     `json:"max_occupancy,omitempty"`
	Featured      bool     `json:"featured"`
}

// PropertySnapshotResponse - снимок объекта внутри бронирования.
type PropertySnapshotResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	City     string   `json:"city"`
	Type     string   `json:"type"`
	Images   []string `json:"images"`
}

// BookingResponse - DTO бронирования.
type BookingResponse struct {
	ID         string                   `json:"id"`
	PropertyID string                   `json:"property_id"`
	UserID     string                   `json:"user_id"`
	CheckIn    string                   `json:"check_in"`
	CheckOut   string                   `json:"check_out"`
	Guests     *int                     `json:"guests,omitempty"`
	TotalPrice int                      `json:"total_price"`
	Status     string                   `json:"status"`
	Property   PropertySnapshotResponse `json:"property"`
	CreatedAt  time.Time                `json:"created_at"`
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID.String(),
		OwnerID:       p.OwnerID,
		Name:          p.Name,
		Type:          string(p.Type),
		Description:   p.Description,
		Location:      p.Location,
		City:          p.City,
		PricePerNight: p.PricePerNight,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Images:        p.Images,
		Amenities:     p.Amenities,
		MaxGuests:     p.MaxGuests,
		MaxOccupancy:  p.MaxOccupancy,
		Featured:      p.Featured,
	}
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		responses[i] = toPropertyResponse(p)
	}
	return responses
}

func toBookingResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID.String(),
		PropertyID: b.PropertyID.String(),
		UserID:     b.UserID,
		CheckIn:    b.CheckIn.Format("2006-01-02"),
		CheckOut:   b.CheckOut.Format("2006-01-02"),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		Property: PropertySnapshotResponse{
			ID:       b.Property.ID.String(),
			Name:     b.Property.Name,
			Location: b.Property.Location,
			City:     b.Property.City,
			Type:     string(b.Property.Type),
			Images:   b.Property.Images,
		},
		CreatedAt: b.CreatedAt,
	}
}
