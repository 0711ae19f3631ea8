package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func testCatalog() []Property {
	return []Property{
		{
			ID: uuid.New(), Name: "Grand Luxe Hotel", Type: PropertyTypeHotel,
			Location: "Downtown District", City: "New York",
			PricePerNight: 350, Rating: 5,
			Amenities: []string{"WiFi", "Parking", "Pool"},
			Featured:  true,
		},
		{
			ID: uuid.New(), Name: "Metropolitan Business Hotel", Type: PropertyTypeHotel,
			Location: "Financial District", City: "San Francisco",
			PricePerNight: 220, Rating: 4,
			Amenities: []string{"WiFi", "Gym"},
		},
		{
			ID: uuid.New(), Name: "Innovation Hub Coworking", Type: PropertyTypeOffice,
			Location: "Tech District", City: "Austin",
			PricePerNight: 45, Rating: 5,
			Amenities: []string{"WiFi", "Coffee", "Parking"},
			Featured:  true,
		},
		{
			ID: uuid.New(), Name: "Downtown Flex Space", Type: PropertyTypeOffice,
			Location: "Downtown Core", City: "Denver",
			PricePerNight: 35, Rating: 4,
			Amenities: []string{"WiFi", "Coffee"},
		},
	}
}

func names(properties []Property) []string {
	result := make([]string, len(properties))
	for i, p := range properties {
		result[i] = p.Name
	}
	return result
}

func TestFilterProperties_NoFilters_ReturnsAllInCatalogOrder(t *testing.T) {
	result := FilterProperties(testCatalog(), SearchFilters{})

	require.Len(t, result, 4)
	// featured сначала, затем rating по убыванию, при равенстве - порядок вставки
	assert.Equal(t, []string{
		"Grand Luxe Hotel",
		"Innovation Hub Coworking",
		"Metropolitan Business Hotel",
		"Downtown Flex Space",
	}, names(result))
}

func TestFilterProperties_TypeFilter(t *testing.T) {
	result := FilterProperties(testCatalog(), SearchFilters{Type: "office"})

	require.Len(t, result, 2)
	for _, p := range result {
		assert.Equal(t, PropertyTypeOffice, p.Type)
	}
}

func TestFilterProperties_TypeAll_DisablesFilter(t *testing.T) {
	result := FilterProperties(testCatalog(), SearchFilters{Type: "all"})
	assert.Len(t, result, 4)
}

func TestFilterProperties_CityIsCaseInsensitiveSubstring(t *testing.T) {
	result := FilterProperties(testCatalog(), SearchFilters{City: "austin"})

	require.Len(t, result, 1)
	assert.Equal(t, "Innovation Hub Coworking", result[0].Name)
}

func TestFilterProperties_CityMatchesLocationToo(t *testing.T) {
	// "Downtown" есть и в location двух объектов
	result := FilterProperties(testCatalog(), SearchFilters{City: "downtown"})

	assert.Equal(t, []string{"Grand Luxe Hotel", "Downtown Flex Space"}, names(result))
}

func TestFilterProperties_PriceBoundsAreInclusive(t *testing.T) {
	result := FilterProperties(testCatalog(), SearchFilters{MinPrice: intPtr(45), MaxPrice: intPtr(220)})

	assert.Equal(t, []string{"Innovation Hub Coworking", "Metropolitan Business Hotel"}, names(result))
}

func TestFilterProperties_RatingIsLowerBound(t *testing.T) {
	result := FilterProperties(testCatalog(), SearchFilters{Rating: intPtr(5)})

	require.Len(t, result, 2)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Rating, 5)
	}
}

func TestFilterProperties_AmenitiesRequireAll(t *testing.T) {
	// WiFi есть у всех, Parking - у двух: подходят только объекты с обоими
	result := FilterProperties(testCatalog(), SearchFilters{Amenities: []string{"WiFi", "Parking"}})

	assert.Equal(t, []string{"Grand Luxe Hotel", "Innovation Hub Coworking"}, names(result))
}

func TestFilterProperties_SearchMatchesNameSubstring(t *testing.T) {
	result := FilterProperties(testCatalog(), SearchFilters{Search: "hotel"})

	assert.Equal(t, []string{"Grand Luxe Hotel", "Metropolitan Business Hotel"}, names(result))
}

func TestFilterProperties_CombinedFilters(t *testing.T) {
	result := FilterProperties(testCatalog(), SearchFilters{
		Type:     "hotel",
		MaxPrice: intPtr(250),
		Rating:   intPtr(4),
	})

	require.Len(t, result, 1)
	assert.Equal(t, "Metropolitan Business Hotel", result[0].Name)
}

func TestFilterProperties_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	originalFirst := catalog[0].Name

	FilterProperties(catalog, SearchFilters{Type: "office"})

	assert.Equal(t, originalFirst, catalog[0].Name)
}

func TestFilterProperties_OwnerExactMatch(t *testing.T) {
	catalog := testCatalog()
	catalog[1].OwnerID = "user-42"

	result := FilterProperties(catalog, SearchFilters{OwnerID: "user-42"})

	require.Len(t, result, 1)
	assert.Equal(t, "Metropolitan Business Hotel", result[0].Name)
}
