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

const propertyColumns = `id, owner_id, name, type, description, location, city,
	price_per_night, rating, review_count, images, amenities,
	max_guests, max_occupancy, featured`

// PostgresPropertyRepository - реализация порта каталога для PostgreSQL.
type PostgresPropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPropertyRepository - конструктор.
func NewPostgresPropertyRepository(pool *pgxpool.Pool) (*PostgresPropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPropertyRepository{pool: pool}, nil
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var p domain.Property
	var typ string
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &typ, &p.Description, &p.Location, &p.City,
		&p.PricePerNight, &p.Rating, &p.ReviewCount, &p.Images, &p.Amenities,
		&p.MaxGuests, &p.MaxOccupancy, &p.Featured,
	)
	if err != nil {
		return domain.Property{}, err
	}
	p.Type = domain.PropertyType(typ)
	return p, nil
}

// Find возвращает объекты, удовлетворяющие фильтрам, в каталожном порядке.
func (r *PostgresPropertyRepository) Find(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "Find",
	})

	whereClause, args := applyFilters(filters)
	query := fmt.Sprintf(`SELECT %s FROM properties %s
		ORDER BY featured DESC, rating DESC, created_at ASC`, propertyColumns, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during properties iteration", err, nil)
		return nil, fmt.Errorf("error during properties iteration: %w", err)
	}

	repoLogger.Debug("Properties fetched.", port.Fields{"count": len(properties)})
	return properties, nil
}

// FindByID ищет объект по идентификатору.
func (r *PostgresPropertyRepository) FindByID(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresPropertyRepository",
		"method":      "FindByID",
		"property_id": propertyID,
	})

	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)

	p, err := scanProperty(r.pool.QueryRow(ctx, query, propertyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Property not found.", nil)
			return nil, domain.ErrPropertyNotFound
		}
		repoLogger.Error("Failed to find property by ID", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find property by id: %w", err)
	}

	return &p, nil
}

// FindByOwner возвращает объекты владельца в каталожном порядке.
func (r *PostgresPropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	return r.Find(ctx, domain.SearchFilters{OwnerID: ownerID})
}

// Create сохраняет новый объект.
func (r *PostgresPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresPropertyRepository",
		"method":      "Create",
		"property_id": property.ID,
	})

	query := `INSERT INTO properties (id, owner_id, name, type, description, location, city,
		price_per_night, rating, review_count, images, amenities, max_guests, max_occupancy, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.pool.Exec(ctx, query,
		property.ID, property.OwnerID, property.Name, string(property.Type),
		property.Description, property.Location, property.City,
		property.PricePerNight, property.Rating, property.ReviewCount,
		property.Images, property.Amenities,
		property.MaxGuests, property.MaxOccupancy, property.Featured,
	)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert property: %w", err)
	}

	repoLogger.Debug("Property created.", nil)
	return nil
}

// Delete удаляет объект. Возвращает ErrPropertyNotFound, если объекта нет.
func (r *PostgresPropertyRepository) Delete(ctx context.Context, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresPropertyRepository",
		"method":      "Delete",
		"property_id": propertyID,
	})

	query := `DELETE FROM properties WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, propertyID)
	if err != nil {
		repoLogger.Error("Failed to delete property", err, port.Fields{"query": query})
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to delete a property that did not exist.", nil)
		return domain.ErrPropertyNotFound
	}

	repoLogger.Debug("Property deleted.", nil)
	return nil
}

// ListAmenities возвращает отсортированный список уникальных удобств каталога.
func (r *PostgresPropertyRepository) ListAmenities(ctx context.Context) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "ListAmenities",
	})

	query := `SELECT DISTINCT unnest(amenities) AS amenity FROM properties ORDER BY amenity ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query amenities", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query amenities: %w", err)
	}
	defer rows.Close()

	amenities := make([]string, 0)
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			repoLogger.Error("Failed to scan amenity row", err, nil)
			return nil, fmt.Errorf("failed to scan amenity: %w", err)
		}
		amenities = append(amenities, a)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during amenities iteration", err, nil)
		return nil, fmt.Errorf("error during amenities iteration: %w", err)
	}

	return amenities, nil
}

// CREATE TABLE IF NOT EXISTS properties (
//     id UUID PRIMARY KEY,
//     owner_id TEXT NOT NULL DEFAULT '',
//     name TEXT NOT NULL,
//     type TEXT NOT NULL,
//     description TEXT NOT NULL DEFAULT '',
//     location TEXT NOT NULL DEFAULT '',
//     city TEXT NOT NULL DEFAULT '',
//     price_per_night INT NOT NULL,
//     rating INT NOT NULL DEFAULT 0,
//     review_count INT NOT NULL DEFAULT 0,
//     images TEXT[] NOT NULL DEFAULT '{}',
//     amenities TEXT[] NOT NULL DEFAULT '{}',
//     max_guests INT,
//     max_occupancy INT,
//     featured BOOLEAN NOT NULL DEFAULT FALSE,
//     created_at TIMESTAMPTZ NOT NULL DEFAULT now()
// );

// CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties(owner_id);
// CREATE INDEX IF NOT EXISTS idx_properties_type ON properties(type);
