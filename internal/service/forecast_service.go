package service

import (
	"time"

	"github.com/smartcity/tourdifficulty/internal/domain"
	"github.com/smartcity/tourdifficulty/pkg/utils"
)

const (
	forecastJitter        = 0.05
	parkingForecastRatio  = 0.9
	parkingForecastJitter = 0.10
)

// ForecastTraffic projects the traffic index 30 minutes ahead of at using a
// fixed hourly trend plus noise. The result is always within [0, 1].
func ForecastTraffic(current float64, at time.Time, noise NoiseSource) float64 {
	trend := trafficTrend(at.In(domain.KST).Hour())
	return utils.Clamp01(current + trend + uniform(noise, -forecastJitter, forecastJitter))
}

// ForecastParking approximates the 30 minute parking pressure from the current
// value. This is a damped copy of the current reading, not a real forecast.
func ForecastParking(current float64, noise NoiseSource) float64 {
	return utils.Clamp01(current*parkingForecastRatio + uniform(noise, 0, parkingForecastJitter))
}

func trafficTrend(hour int) float64 {
	switch {
	case hour >= 11 && hour < 13: // lunch peak building
		return 0.10
	case hour >= 14 && hour < 17:
		return 0.05
	case hour >= 17 && hour < 19: // evening decline
		return -0.10
	default:
		return 0
	}
}
