package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/contracts"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
	"github.com/ank17jaat/SpaceMate/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	findPropertiesUC     usecases_port.FindPropertiesUseCasePort
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCasePort
	createPropertyUC     usecases_port.CreatePropertyUseCasePort
	deletePropertyUC     usecases_port.DeletePropertyUseCasePort
	getOwnerPropertiesUC usecases_port.GetOwnerPropertiesUseCasePort
	getAmenitiesUC       usecases_port.GetAmenitiesUseCasePort
}

func NewPropertyHandler(
	findPropertiesUC usecases_port.FindPropertiesUseCasePort,
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCasePort,
	createPropertyUC usecases_port.CreatePropertyUseCasePort,
	deletePropertyUC usecases_port.DeletePropertyUseCasePort,
	getOwnerPropertiesUC usecases_port.GetOwnerPropertiesUseCasePort,
	getAmenitiesUC usecases_port.GetAmenitiesUseCasePort) *PropertyHandler {
	return &PropertyHandler{
		findPropertiesUC:     findPropertiesUC,
		getPropertyDetailsUC: getPropertyDetailsUC,
		createPropertyUC:     createPropertyUC,
		deletePropertyUC:     deletePropertyUC,
		getOwnerPropertiesUC: getOwnerPropertiesUC,
		getAmenitiesUC:       getAmenitiesUC,
	}
}

// FindProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	filters := domain.SearchFilters{
		Type:      parseString(query, "type"),
		City:      parseString(query, "city"),
		MinPrice:  parseInt(query, "minPrice"),
		MaxPrice:  parseInt(query, "maxPrice"),
		Rating:    parseInt(query, "rating"),
		Amenities: parseStringSlice(query, "amenities"),
		Search:    parseString(query, "search"),
		OwnerID:   parseString(query, "ownerId"),
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "FindProperties",
		"filters": filters,
	})
	handlerLogger.Debug("Processing request to find properties", nil)

	properties, err := h.findPropertiesUC.Execute(r.Context(), filters)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	handlerLogger.Info("Successfully found properties", port.Fields{"total_found": len(properties)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// GetPropertyDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyIDStr := chi.URLParam(r, "propertyID")
	propertyID, err := uuid.Parse(propertyIDStr)
	if err != nil {
		logger.Warn("Invalid property ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": propertyIDStr,
	})

	property, err := h.getPropertyDetailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve property")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
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
	if err := contracts.Validate("CreatePropertyRequest", "1.0.0", body); err != nil {
		logger.Warn("Create property request failed contract validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var req CreatePropertyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "CreateProperty",
		"owner_id": claims.UserID,
	})
	handlerLogger.Debug("Processing request to create property", nil)

	property, err := h.createPropertyUC.Execute(r.Context(), claims.UserID, usecases_port.CreatePropertyInput{
		Name:          req.Name,
		Type:          domain.PropertyType(req.Type),
		Description:   req.Description,
		Location:      req.Location,
		City:          req.City,
		PricePerNight: req.PricePerNight,
		Images:        req.Images,
		Amenities:     req.Amenities,
		MaxGuests:     req.MaxGuests,
		MaxOccupancy:  req.MaxOccupancy,
	})
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	handlerLogger.Info("Property created", port.Fields{"property_id": property.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*property))
}

// DeleteProperty обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	claims, ok := UserClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	propertyIDStr := chi.URLParam(r, "propertyID")
	propertyID, err := uuid.Parse(propertyIDStr)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "DeleteProperty",
		"property_id": propertyIDStr,
		"caller_id":   claims.UserID,
	})

	if err := h.deletePropertyUC.Execute(r.Context(), claims.UserID, propertyID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrNotOwner):
			WriteJSONError(w, http.StatusForbidden, "Only the owner can delete this property")
		default:
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		}
		return
	}

	handlerLogger.Info("Property deleted", nil)
	w.WriteHeader(http.StatusNoContent)
}

// GetMyProperties обрабатывает GET /api/v1/my-properties
func (h *PropertyHandler) GetMyProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	claims, ok := UserClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "GetMyProperties",
		"owner_id": claims.UserID,
	})

	properties, err := h.getOwnerPropertiesUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// GetAmenities обрабатывает GET /api/v1/amenities
func (h *PropertyHandler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	amenities, err := h.getAmenitiesUC.Execute(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetAmenities"})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve amenities")
		return
	}

	RespondWithJSON(w, http.StatusOK, amenities)
}
