package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

// PropertyRepositoryPort - контракт для хранилища объектов.
// Реализации: in-memory (референсное хранилище) и PostgreSQL.
type PropertyRepositoryPort interface {
	// Find возвращает все объекты, подходящие под фильтр,
	// в порядке выдачи (featured desc, rating desc).
	Find(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error)

	// FindByID - точный поиск по id. domain.ErrPropertyNotFound, если нет.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// FindByOwner - все объекты с точным совпадением владельца.
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)

	// Create сохраняет объект (id уже присвоен доменным конструктором).
	Create(ctx context.Context, property *domain.Property) error

	// Delete физически удаляет запись. domain.ErrPropertyNotFound, если нет.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAmenities возвращает множество различных меток удобств
	// по всем объектам (производное, не хранится отдельно).
	ListAmenities(ctx context.Context) ([]string, error)
}
