package domain

import (
	"github.com/google/uuid"
)

// PropertyType - перечисление для типов объектов
type PropertyType string

const (
	PropertyTypeHotel  PropertyType = "hotel"
	PropertyTypeOffice PropertyType = "office"
)

// Property - основная доменная сущность: бронируемый объект
// (номер в отеле или офисное/коворкинг пространство).
type Property struct {
	ID          uuid.UUID `json:"id"`
	// OwnerID - идентификатор создавшего пользователя (от внешнего
	// auth-провайдера). Пустая строка для seed-данных.
	OwnerID     string    `json:"owner_id,omitempty"`
	Name        string    `json:"name"`
	Type        PropertyType `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	City        string    `json:"city"`
	// PricePerNight - цена за ночь (hotel) или за день (office),
	// целое число в минимальных единицах отображения.
	PricePerNight int    `json:"price_per_night"`
	Rating        int    `json:"rating"` // 0..5, 0 = без оценки
	ReviewCount   int    `json:"review_count"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	// Границы вместимости. Заполняется только одна из двух,
	// в зависимости от типа объекта. nil = не ограничено.
	MaxGuests    *int `json:"max_guests,omitempty"`
	MaxOccupancy *int `json:"max_occupancy,omitempty"`
	Featured     bool `json:"featured"`
}

// NewProperty - конструктор нового объекта с применением дефолтов:
// rating 0, пустые слайсы вместо nil, featured=false остается как есть.
func NewProperty(ownerID, name string, propertyType PropertyType, description, location, city string, pricePerNight int) *Property {
	return &Property{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		Type:          propertyType,
		Description:   description,
		Location:      location,
		City:          city,
		PricePerNight: pricePerNight,
		Rating:        0,
		ReviewCount:   0,
		Images:        []string{},
		Amenities:     []string{},
	}
}

// CapacityBound возвращает действующую границу вместимости:
// maxGuests для отелей, maxOccupancy для офисов. nil = без ограничения.
func (p *Property) CapacityBound() *int {
	switch p.Type {
	case PropertyTypeHotel:
		return p.MaxGuests
	case PropertyTypeOffice:
		return p.MaxOccupancy
	}
	return nil
}

// Snapshot возвращает денормализованный срез объекта для встраивания
// в бронирование. Снимок делается в момент создания брони, чтобы
// отображение истории не зависело от дальнейшей судьбы объекта.
func (p *Property) Snapshot() PropertySnapshot {
	images := make([]string, len(p.Images))
	copy(images, p.Images)

	return PropertySnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Location: p.Location,
		City:     p.City,
		Type:     p.Type,
		Images:   images,
	}
}
