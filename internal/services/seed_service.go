package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gps/internal/repositories"
	"gps/pkg/utils"
)

type SamplePOI struct {
	Name string
	X, Y float64
}

var SamplePOIs = []SamplePOI{
	{"Lanchonete", 27, 12},
	{"Posto", 31, 18},
	{"Joalheria", 15, 12},
	{"Floricultura", 19, 21},
	{"Pub", 12, 8},
	{"Supermercado", 23, 6},
	{"Churrascaria", 28, 2},
}

type SeedService struct {
	poiRepository repositories.POIRepository
	poiService    POIServiceInterface
	log           *zap.Logger
}

func NewSeedService(poiRepository repositories.POIRepository, poiService POIServiceInterface, log *zap.Logger) *SeedService {
	return &SeedService{poiRepository: poiRepository, poiService: poiService, log: log}
}

// SeedIfEmpty inserts samples through the POI service when the store holds
// no POI yet. Conflicting samples are skipped. It returns how many were
// inserted.
func (s *SeedService) SeedIfEmpty(ctx context.Context, samples []SamplePOI) (int, error) {
	n, err := s.poiRepository.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("store already populated, skipping seed", zap.Int64("count", n))
		return 0, nil
	}

	inserted := 0
	for _, sample := range samples {
		_, err := s.poiService.InsertPOI(ctx, sample.Name, sample.X, sample.Y)
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, utils.ErrConflict), errors.Is(err, utils.ErrInvalidInput):
			s.log.Warn("skipping sample poi", zap.String("name", sample.Name), zap.Error(err))
		default:
			return inserted, err
		}
	}
	s.log.Info("seeded sample pois", zap.Int("count", inserted))
	return inserted, nil
}
