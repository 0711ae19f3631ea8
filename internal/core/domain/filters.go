package domain

import (
	"sort"
	"strings"
)

// SearchFilters - спецификация фильтра для поиска объектов.
// Нулевое значение поля = отсутствие ограничения.
type SearchFilters struct {
	// Type: "hotel", "office"; "" или "all" = без ограничения.
	Type string
	// City: регистронезависимый substring-поиск по city ИЛИ location.
	City string
	// Границы цены, включительно.
	MinPrice *int
	MaxPrice *int
	// Rating: нижняя граница, включительно.
	Rating *int
	// Amenities: семантика ALL-OF - объект подходит, только если
	// содержит КАЖДУЮ из перечисленных меток.
	Amenities []string
	// Search: регистронезависимый substring-поиск по названию.
	Search string
	// OwnerID: точное совпадение владельца.
	OwnerID string
}

// Matches проверяет один объект против спецификации фильтра.
func (f SearchFilters) Matches(p *Property) bool {
	if f.Type != "" && f.Type != "all" && string(p.Type) != f.Type {
		return false
	}

	if f.City != "" {
		needle := strings.ToLower(f.City)
		if !strings.Contains(strings.ToLower(p.City), needle) &&
			!strings.Contains(strings.ToLower(p.Location), needle) {
			return false
		}
	}

	if f.MinPrice != nil && p.PricePerNight < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.PricePerNight > *f.MaxPrice {
		return false
	}

	if f.Rating != nil && p.Rating < *f.Rating {
		return false
	}

	for _, amenity := range f.Amenities {
		if !containsString(p.Amenities, amenity) {
			return false
		}
	}

	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}

	if f.OwnerID != "" && p.OwnerID != f.OwnerID {
		return false
	}

	return true
}

// FilterProperties - чистая функция поискового движка: применяет
// спецификацию к коллекции и возвращает детерминированно
// отсортированный результат. Исходный слайс не модифицируется.
func FilterProperties(properties []Property, filters SearchFilters) []Property {
	result := make([]Property, 0, len(properties))
	for i := range properties {
		if filters.Matches(&properties[i]) {
			result = append(result, properties[i])
		}
	}

	SortProperties(result)
	return result
}

// SortProperties сортирует объекты по правилу выдачи:
// featured сначала, затем rating по убыванию. Сортировка стабильная,
// поэтому равные элементы сохраняют порядок вставки.
func SortProperties(properties []Property) {
	sort.SliceStable(properties, func(i, j int) bool {
		if properties[i].Featured != properties[j].Featured {
			return properties[i].Featured
		}
		return properties[i].Rating > properties[j].Rating
	})
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
