package service

import (
	"time"

	"github.com/smartcity/tourdifficulty/internal/domain"
	"github.com/smartcity/tourdifficulty/pkg/utils"
)

const (
	weekendFactor   = 1.3
	trafficJitter   = 0.10
	parkingRatio    = 0.9
	parkingJitterHi = 0.15
)

// TrafficService generates synthetic traffic and parking features.
// It stands in for a real sensor feed; only GenerateFeatures needs replacing
// once one is available.
type TrafficService struct{}

// NewTrafficService creates a new traffic service
func NewTrafficService() *TrafficService {
	return &TrafficService{}
}

// GenerateFeatures returns the (traffic, parking) pair for area at the given instant
func (s *TrafficService) GenerateFeatures(area domain.Area, at time.Time, noise NoiseSource) domain.Features {
	local := at.In(domain.KST)

	base := baseTraffic(local.Hour()) * area.BasePopularity
	if isWeekend(local.Weekday()) {
		base = min(1.0, base*weekendFactor)
	}

	traffic := utils.Clamp01(base + uniform(noise, -trafficJitter, trafficJitter))
	parking := utils.Clamp01(traffic*parkingRatio + uniform(noise, 0, parkingJitterHi))

	return domain.Features{
		TrafficIndex:    traffic,
		ParkingPressure: parking,
	}
}

// baseTraffic is the hour-of-day step function, before popularity weighting
func baseTraffic(hour int) float64 {
	switch {
	case hour >= 10 && hour < 12:
		return 0.4
	case hour >= 12 && hour < 14:
		return 0.6
	case hour >= 14 && hour < 18:
		return 0.7
	case hour >= 18 && hour < 20:
		return 0.5
	default:
		return 0.2
	}
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
