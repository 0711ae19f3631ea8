package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, property_id, user_id, check_in, check_out, guests,
	total_price, status, property_name, property_location, property_city,
	property_type, property_images, created_at`

// PostgresBookingRepository - реализация порта бронирований для PostgreSQL.
// Снимок объекта хранится денормализованно в строке бронирования,
// поэтому история переживает удаление объекта из каталога.
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository - конструктор.
func NewPostgresBookingRepository(pool *pgxpool.Pool) (*PostgresBookingRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresBookingRepository{pool: pool}, nil
}

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var b domain.Booking
	var status, snapshotType string
	err := row.Scan(
		&b.ID, &b.PropertyID, &b.UserID, &b.CheckIn, &b.CheckOut, &b.Guests,
		&b.TotalPrice, &status,
		&b.Property.Name, &b.Property.Location, &b.Property.City,
		&snapshotType, &b.Property.Images, &b.CreatedAt,
	)
	if err != nil {
		return domain.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	b.Property.ID = b.PropertyID
	b.Property.Type = domain.PropertyType(snapshotType)
	return b, nil
}

// Create сохраняет новое бронирование вместе со снимком объекта.
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresBookingRepository",
		"method":     "Create",
		"booking_id": booking.ID,
	})

	query := `INSERT INTO bookings (id, property_id, user_id, check_in, check_out, guests,
		total_price, status, property_name, property_location, property_city,
		property_type, property_images, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		booking.ID, booking.PropertyID, booking.UserID,
		booking.CheckIn, booking.CheckOut, booking.Guests,
		booking.TotalPrice, string(booking.Status),
		booking.Property.Name, booking.Property.Location, booking.Property.City,
		string(booking.Property.Type), booking.Property.Images, booking.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert booking", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	repoLogger.Debug("Booking created.", nil)
	return nil
}

// FindByID ищет бронирование по идентификатору.
func (r *PostgresBookingRepository) FindByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresBookingRepository",
		"method":     "FindByID",
		"booking_id": bookingID,
	})

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	b, err := scanBooking(r.pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Booking not found.", nil)
			return nil, domain.ErrBookingNotFound
		}
		repoLogger.Error("Failed to find booking by ID", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find booking by id: %w", err)
	}

	return &b, nil
}

// FindByUser возвращает бронирования пользователя, свежие первыми.
func (r *PostgresBookingRepository) FindByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresBookingRepository",
		"method":    "FindByUser",
		"user_id":   userID,
	})

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, bookingColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		repoLogger.Error("Failed to query bookings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			repoLogger.Error("Failed to scan booking row", err, nil)
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during bookings iteration", err, nil)
		return nil, fmt.Errorf("error during bookings iteration: %w", err)
	}

	repoLogger.Debug("Bookings fetched.", port.Fields{"count": len(bookings)})
	return bookings, nil
}

// UpdateStatus меняет статус бронирования.
func (r *PostgresBookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresBookingRepository",
		"method":     "UpdateStatus",
		"booking_id": bookingID,
		"status":     string(status),
	})

	query := `UPDATE bookings SET status = $2 WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, bookingID, string(status))
	if err != nil {
		repoLogger.Error("Failed to update booking status", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to update a booking that did not exist.", nil)
		return domain.ErrBookingNotFound
	}

	repoLogger.Debug("Booking status updated.", nil)
	return nil
}

// CREATE TABLE IF NOT EXISTS bookings (
//     id UUID PRIMARY KEY,
//     property_id UUID NOT NULL,
//     user_id TEXT NOT NULL,
//     check_in TIMESTAMPTZ NOT NULL,
//     check_out TIMESTAMPTZ NOT NULL,
//     guests INT,
//     total_price INT NOT NULL,
//     status TEXT NOT NULL,
//     property_name TEXT NOT NULL DEFAULT '',
//     property_location TEXT NOT NULL DEFAULT '',
//     property_city TEXT NOT NULL DEFAULT '',
//     property_type TEXT NOT NULL DEFAULT '',
//     property_images TEXT[] NOT NULL DEFAULT '{}',
//     created_at TIMESTAMPTZ NOT NULL DEFAULT now()
// );

// CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id);
