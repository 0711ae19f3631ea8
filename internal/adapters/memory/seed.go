package memory_adapter

import (
	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

func intPtr(v int) *int { return &v }

// Картинки демо-каталога
const (
	imgHotelRoom      = "/assets/images/modern_hotel_room.png"
	imgHotelExterior  = "/assets/images/boutique_hotel_exterior.png"
	imgHotelPool      = "/assets/images/hotel_pool_amenity.png"
	imgCoworkingSpace = "/assets/images/modern_coworking_space.png"
	imgPrivateOffice  = "/assets/images/private_office_space.png"
)

// SeedProperties возвращает демо-каталог объектов. Владельца у seed-данных
// нет. id присваиваются при каждом вызове, поэтому каждый репозиторий
// (и каждый тест) получает собственный независимый набор.
func SeedProperties() []domain.Property {
	return []domain.Property{
		{
			ID:            uuid.New(),
			Name:          "Grand Luxe Hotel & Spa",
			Type:          domain.PropertyTypeHotel,
			Description:   "Experience unparalleled luxury in the heart of the city. Elegantly appointed rooms with stunning views, a world-class spa, rooftop pool and award-winning dining.",
			Location:      "Downtown District",
			City:          "New York",
			PricePerNight: 350,
			Rating:        5,
			ReviewCount:   1247,
			Images:        []string{imgHotelExterior, imgHotelRoom, imgHotelPool},
			Amenities:     []string{"WiFi", "Parking", "Pool", "Gym", "Restaurant", "Room Service", "Spa", "Breakfast"},
			MaxGuests:     intPtr(4),
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Sunset Beach Resort",
			Type:          domain.PropertyTypeHotel,
			Description:   "Wake up to the sound of waves at our beachfront paradise. Direct beach access, multiple pools, water sports and oceanview rooms with private balconies.",
			Location:      "Beachfront Avenue",
			City:          "Miami",
			PricePerNight: 280,
			Rating:        5,
			ReviewCount:   892,
			Images:        []string{imgHotelPool, imgHotelRoom, imgHotelExterior},
			Amenities:     []string{"WiFi", "Parking", "Pool", "Gym", "Restaurant", "Breakfast"},
			MaxGuests:     intPtr(3),
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Metropolitan Business Hotel",
			Type:          domain.PropertyTypeHotel,
			Description:   "Strategically located in the financial district. Modern rooms with ergonomic workspaces, high-speed internet and express check-in/out services.",
			Location:      "Financial District",
			City:          "San Francisco",
			PricePerNight: 220,
			Rating:        4,
			ReviewCount:   634,
			Images:        []string{imgHotelRoom, imgHotelExterior},
			Amenities:     []string{"WiFi", "Parking", "Gym", "Restaurant", "Breakfast"},
			MaxGuests:     intPtr(2),
		},
		{
			ID:            uuid.New(),
			Name:          "Urban Skyline Suites",
			Type:          domain.PropertyTypeHotel,
			Description:   "Luxury suites with panoramic views and spacious accommodations. Each suite features a full kitchen, separate living area and floor-to-ceiling windows.",
			Location:      "Uptown",
			City:          "Chicago",
			PricePerNight: 320,
			Rating:        4,
			ReviewCount:   758,
			Images:        []string{imgHotelRoom, imgHotelExterior, imgHotelPool},
			Amenities:     []string{"WiFi", "Parking", "Gym", "Pool"},
			MaxGuests:     intPtr(6),
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Innovation Hub Coworking",
			Type:          domain.PropertyTypeOffice,
			Description:   "A vibrant community of entrepreneurs, freelancers and remote workers. High-speed fiber internet, ergonomic workstations, private phone booths and 24/7 access.",
			Location:      "Tech District",
			City:          "Austin",
			PricePerNight: 45,
			Rating:        5,
			ReviewCount:   342,
			Images:        []string{imgCoworkingSpace, imgPrivateOffice},
			Amenities:     []string{"WiFi", "Coffee", "Meeting Rooms", "24/7 Access", "Printer", "Parking"},
			MaxOccupancy:  intPtr(50),
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Executive Office Suites",
			Type:          domain.PropertyTypeOffice,
			Description:   "Premium private offices and meeting rooms. Fully furnished suites with reception services, mail handling and administrative support.",
			Location:      "Business Park",
			City:          "Seattle",
			PricePerNight: 120,
			Rating:        5,
			ReviewCount:   198,
			Images:        []string{imgPrivateOffice, imgCoworkingSpace},
			Amenities:     []string{"WiFi", "Meeting Rooms", "Coffee", "Parking", "Printer", "Kitchen"},
			MaxOccupancy:  intPtr(8),
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Downtown Flex Space",
			Type:          domain.PropertyTypeOffice,
			Description:   "Affordable and convenient coworking in the heart of downtown. Hot desks, dedicated desks and small private offices without long-term commitments.",
			Location:      "Downtown Core",
			City:          "Denver",
			PricePerNight: 35,
			Rating:        4,
			ReviewCount:   445,
			Images:        []string{imgCoworkingSpace, imgPrivateOffice},
			Amenities:     []string{"WiFi", "Coffee", "Meeting Rooms", "Printer", "Kitchen"},
			MaxOccupancy:  intPtr(40),
		},
		{
			ID:            uuid.New(),
			Name:          "Green Valley Shared Office",
			Type:          domain.PropertyTypeOffice,
			Description:   "Eco-friendly office space with sustainable design, natural materials and abundant greenery. Standing desks, meditation room and outdoor terrace workspace.",
			Location:      "Green Valley",
			City:          "Portland",
			PricePerNight: 55,
			Rating:        5,
			ReviewCount:   312,
			Images:        []string{imgPrivateOffice, imgCoworkingSpace},
			Amenities:     []string{"WiFi", "Coffee", "Meeting Rooms", "Lounge", "Parking", "24/7 Access"},
			MaxOccupancy:  intPtr(25),
			Featured:      true,
		},
	}
}
