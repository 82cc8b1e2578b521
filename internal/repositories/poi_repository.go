package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gps/internal/models/db_models"
)

const pgUniqueViolation = "23505"

// ErrDuplicatePOI is returned by CreatePoi when the store's unique name
// constraint rejects the row.
var ErrDuplicatePOI = errors.New("poi violates a unique constraint")

type POIRepository interface {
	CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error)

	ListAll(ctx context.Context) ([]db_models.POI, error)
	Count(ctx context.Context) (int64, error)
	ExistsAtCoordinate(ctx context.Context, x, y float64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(poi).Error; err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrDuplicatePOI
		}
		return uuid.Nil, err
	}
	return poi.ID, nil
}

// ListAll returns every POI in insertion order.
func (r *poiRepository) ListAll(ctx context.Context) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *poiRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&db_models.POI{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *poiRepository) ExistsAtCoordinate(ctx context.Context, x, y float64) (bool, error) {
	return r.exists(ctx, "x = ? AND y = ?", x, y)
}

func (r *poiRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, "name = ?", name)
}

func (r *poiRepository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.POI{}).
		Where(query, args...).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// isUniqueViolation recognises a unique-constraint failure from whichever
// driver produced it: gorm's translated error, pgx or lib/pq.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
