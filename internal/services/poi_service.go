package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gps/internal/cache"
	"gps/internal/metrics"
	"gps/internal/models/db_models"
	"gps/internal/models/response_models"
	"gps/internal/repositories"
	"gps/pkg/utils"
)

type POIServiceInterface interface {
	InsertPOI(ctx context.Context, name string, x, y float64) (uuid.UUID, error)
	GetAllPOIs(ctx context.Context) ([]response_models.POI, error)
	GetPOIsInRange(ctx context.Context, x, y, dmax float64) ([]response_models.POI, error)
}

type PoiService struct {
	poiRepository repositories.POIRepository
	cache         cache.POICache
	log           *zap.Logger
}

func NewPOIService(poiRepository repositories.POIRepository, poiCache cache.POICache, log *zap.Logger) POIServiceInterface {
	return &PoiService{
		poiRepository: poiRepository,
		cache:         poiCache,
		log:           log,
	}
}

// InsertPOI validates the candidate and stores it. Coordinates must be
// strictly positive and no other POI may share its (x, y) or its name.
func (p *PoiService) InsertPOI(ctx context.Context, name string, x, y float64) (uuid.UUID, error) {
	name = strings.TrimSpace(name)

	if !isFinite(x) || !isFinite(y) || x <= 0 || y <= 0 {
		metrics.POIInsertsTotal.WithLabelValues("invalid").Inc()
		return uuid.Nil, utils.ErrInvalidCoordinate
	}
	if name == "" {
		metrics.POIInsertsTotal.WithLabelValues("invalid").Inc()
		return uuid.Nil, utils.ErrInvalidName
	}

	taken, err := p.poiRepository.ExistsAtCoordinate(ctx, x, y)
	if err != nil {
		p.log.Error("check poi coordinate", zap.Error(err), zap.Float64("x", x), zap.Float64("y", y))
		return uuid.Nil, utils.ErrDatabaseError
	}
	if taken {
		metrics.POIInsertsTotal.WithLabelValues("conflict").Inc()
		return uuid.Nil, utils.ErrCoordinateTaken
	}

	taken, err = p.poiRepository.ExistsByName(ctx, name)
	if err != nil {
		p.log.Error("check poi name", zap.Error(err), zap.String("name", name))
		return uuid.Nil, utils.ErrDatabaseError
	}
	if taken {
		metrics.POIInsertsTotal.WithLabelValues("conflict").Inc()
		return uuid.Nil, utils.ErrNameTaken
	}

	id, err := p.poiRepository.CreatePoi(ctx, &db_models.POI{Name: name, X: x, Y: y})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicatePOI) {
			metrics.POIInsertsTotal.WithLabelValues("conflict").Inc()
			return uuid.Nil, utils.ErrNameTaken
		}
		p.log.Error("create poi", zap.Error(err), zap.String("name", name))
		return uuid.Nil, utils.ErrDatabaseError
	}

	p.cache.Invalidate(ctx)
	metrics.POIInsertsTotal.WithLabelValues("accepted").Inc()
	p.log.Info("poi inserted",
		zap.String("id", id.String()),
		zap.String("name", name),
		zap.Float64("x", x),
		zap.Float64("y", y))
	return id, nil
}

func (p *PoiService) GetAllPOIs(ctx context.Context) ([]response_models.POI, error) {
	pois, err := p.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return response_models.FromPOIs(pois), nil
}

// GetPOIsInRange scans every stored POI and keeps those within dmax of
// (x, y). An empty store is reported as not found; a store with no POI in
// range yields an empty result.
func (p *PoiService) GetPOIsInRange(ctx context.Context, x, y, dmax float64) ([]response_models.POI, error) {
	if !isFinite(x) || !isFinite(y) || !isFinite(dmax) || dmax < 0 {
		return nil, utils.ErrInvalidRadius
	}

	pois, err := p.listAll(ctx)
	if err != nil {
		return nil, err
	}

	inRange := FilterInRange(pois, x, y, dmax)
	metrics.POISearchResults.Observe(float64(len(inRange)))
	return response_models.FromPOIs(inRange), nil
}

// listAll serves the listing from the cache when possible and reports an
// empty store as ErrPOINotFound.
func (p *PoiService) listAll(ctx context.Context) ([]db_models.POI, error) {
	if pois, ok := p.cache.Get(ctx); ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		if len(pois) == 0 {
			return nil, utils.ErrPOINotFound
		}
		return pois, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	pois, err := p.poiRepository.ListAll(ctx)
	if err != nil {
		p.log.Error("list pois", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if len(pois) == 0 {
		return nil, utils.ErrPOINotFound
	}
	p.cache.Set(ctx, pois)
	return pois, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
