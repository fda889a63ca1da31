package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/smartcity/tourdifficulty/internal/domain"
	"github.com/smartcity/tourdifficulty/pkg/utils"
)

// ErrInvalidFeatures reports a non-finite value inside the pipeline.
// It must surface as a failed request, never as a default score.
var ErrInvalidFeatures = errors.New("non-finite feature value")

// StatusService runs the difficulty pipeline for catalog areas:
// features -> forecast -> score -> level -> message.
type StatusService struct {
	areas   AreaRepository
	traffic *TrafficService
	noise   NoiseFactory
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a StatusService
type Option func(*StatusService)

// WithNoise replaces the default per-bucket noise
func WithNoise(f NoiseFactory) Option {
	return func(s *StatusService) { s.noise = f }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *StatusService) { s.now = now }
}

// WithLogger sets the logger used for pipeline diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(s *StatusService) { s.logger = l }
}

// NewStatusService creates a new status service
func NewStatusService(areas AreaRepository, traffic *TrafficService, opts ...Option) *StatusService {
	s := &StatusService{
		areas:   areas,
		traffic: traffic,
		noise:   BucketNoise,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Status assesses areaID at the current instant
func (s *StatusService) Status(ctx context.Context, areaID string) (domain.StatusResponse, error) {
	return s.StatusAt(ctx, areaID, s.now())
}

// StatusAt assesses areaID at the given instant. Unknown ids return an error
// wrapping domain.ErrAreaNotFound.
func (s *StatusService) StatusAt(ctx context.Context, areaID string, at time.Time) (domain.StatusResponse, error) {
	area, err := s.areas.Get(areaID)
	if err != nil {
		return domain.StatusResponse{}, err
	}

	noise := s.noise(area.ID, at)

	now := s.traffic.GenerateFeatures(area, at, noise)
	ahead := domain.Features{
		TrafficIndex:    ForecastTraffic(now.TrafficIndex, at, noise),
		ParkingPressure: ForecastParking(now.ParkingPressure, noise),
	}

	if !utils.IsFinite(now.TrafficIndex, now.ParkingPressure, ahead.TrafficIndex, ahead.ParkingPressure) {
		return domain.StatusResponse{}, fmt.Errorf("status: area %q: %w", area.ID, ErrInvalidFeatures)
	}

	current := Assess(now, area.NameKR, false)
	forecast := Assess(ahead, area.NameKR, true)

	s.logger.DebugContext(ctx, "assessed area",
		"area", area.ID,
		"traffic", now.TrafficIndex,
		"parking", now.ParkingPressure,
		"score_now", current.Score,
		"score_30m", forecast.Score,
	)

	return domain.StatusResponse{
		AreaID:                  area.ID,
		Area:                    area.Name,
		AreaKR:                  area.NameKR,
		Region:                  area.Region,
		Category:                area.Category,
		Emoji:                   area.Emoji,
		NowKST:                  at.In(domain.KST).Format(time.RFC3339Nano),
		TrafficIndexNow:         utils.RoundTo(now.TrafficIndex, 3),
		TrafficIndexForecast30m: utils.RoundTo(ahead.TrafficIndex, 3),
		ParkingPressureNow:      utils.RoundTo(now.ParkingPressure, 3),
		DifficultyNow:           current.Score,
		Difficulty30m:           forecast.Score,
		LevelNow:                current.Level,
		Level30m:                forecast.Level,
		Message:                 current.Message,
		Message30m:              forecast.Message,
		Notes:                   domain.SyntheticDataNote,
	}, nil
}

// Areas lists the catalog, optionally filtered
func (s *StatusService) Areas(search string) domain.AreaListResponse {
	areas := s.areas.List(search)
	return domain.AreaListResponse{
		Total: len(areas),
		Areas: areas,
	}
}

// AreaIDs returns every valid area id in catalog order
func (s *StatusService) AreaIDs() []string {
	return s.areas.IDs()
}

// Now returns the service clock's current instant
func (s *StatusService) Now() time.Time {
	return s.now()
}
