package memory_adapter

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
)

// MemoryBookingRepository - референсная реализация хранилища бронирований
// в памяти. История не удаляется: отмена - это только переход статуса.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]domain.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[uuid.UUID]domain.Booking),
	}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &booking, nil
}

func (r *MemoryBookingRepository) FindByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Booking, 0)
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			result = append(result, booking)
		}
	}

	// Новые первыми, как в выдаче избранного.
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	booking.Status = status
	r.bookings[id] = booking
	return nil
}
