package memory_adapter

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

// MemoryPropertyRepository - референсная реализация хранилища объектов
// в памяти. Явный объект вместо глобального состояния: каждый тест и
// каждое приложение получают собственный изолированный экземпляр.
// Защищен RWMutex, так как разделяется многими конкурентными запросами.
type MemoryPropertyRepository struct {
	mu sync.RWMutex
	// properties хранит записи по id; order хранит порядок вставки,
	// чтобы выдача была детерминированной при равных featured/rating.
	properties map[uuid.UUID]domain.Property
	order      []uuid.UUID
}

// NewMemoryPropertyRepository - конструктор. seed может быть пустым.
func NewMemoryPropertyRepository(seed []domain.Property) *MemoryPropertyRepository {
	r := &MemoryPropertyRepository{
		properties: make(map[uuid.UUID]domain.Property, len(seed)),
		order:      make([]uuid.UUID, 0, len(seed)),
	}
	for _, p := range seed {
		r.properties[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *MemoryPropertyRepository) Find(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	r.mu.RLock()
	snapshot := r.all()
	r.mu.RUnlock()

	return domain.FilterProperties(snapshot, filters), nil
}

func (r *MemoryPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	property, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &property, nil
}

func (r *MemoryPropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Property, 0)
	for _, id := range r.order {
		if p := r.properties[id]; p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *MemoryPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.properties[property.ID] = *property
	r.order = append(r.order, property.ID)
	return nil
}

func (r *MemoryPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.properties, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryPropertyRepository) ListAmenities(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	amenities := make([]string, 0)
	for _, id := range r.order {
		for _, amenity := range r.properties[id].Amenities {
			if _, ok := seen[amenity]; !ok {
				seen[amenity] = struct{}{}
				amenities = append(amenities, amenity)
			}
		}
	}
	sort.Strings(amenities)
	return amenities, nil
}

// all возвращает срез всех записей в порядке вставки.
// Вызывать только под блокировкой.
func (r *MemoryPropertyRepository) all() []domain.Property {
	result := make([]domain.Property, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.properties[id])
	}
	return result
}
