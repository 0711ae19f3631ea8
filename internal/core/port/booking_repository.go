package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

// BookingRepositoryPort - контракт для хранилища бронирований.
// Записи никогда не удаляются: отмена - это только переход статуса.
type BookingRepositoryPort interface {
	// Create сохраняет бронь (статус и снимок объекта уже присвоены).
	Create(ctx context.Context, booking *domain.Booking) error

	// FindByID - точный поиск по id. domain.ErrBookingNotFound, если нет.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)

	// FindByUser - все брони пользователя, новые первыми.
	FindByUser(ctx context.Context, userID string) ([]domain.Booking, error)

	// UpdateStatus меняет статус брони на месте, остальные поля
	// неизменяемы после создания. domain.ErrBookingNotFound, если нет.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}
