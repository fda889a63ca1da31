package service

import (
	"time"

	"github.com/smartcity/tourdifficulty/internal/domain"
)

// constNoise always draws the same value
type constNoise float64

func (n constNoise) Float64() float64 { return float64(n) }

func constNoiseFactory(v float64) NoiseFactory {
	return func(string, time.Time) NoiseSource { return constNoise(v) }
}

// kst builds an instant in the fixed civil zone
func kst(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, domain.KST)
}

var (
	saturdayAfternoon = kst(2026, time.October, 17, 15, 0)
	wednesdayNight    = kst(2026, time.October, 14, 3, 0)
)

var hanok = domain.Area{
	ID:             "jeonju-hanok",
	Name:           "Jeonju Hanok Village",
	NameKR:         "전주 한옥마을",
	Region:         "전주시",
	Category:       "전통마을",
	BasePopularity: 0.85,
	Emoji:          "🏘️",
}
