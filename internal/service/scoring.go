package service

import (
	"fmt"
	"math"

	"github.com/smartcity/tourdifficulty/internal/domain"
)

const (
	trafficWeight  = 0.6
	parkingWeight  = 0.4
	logisticCenter = 0.5
	logisticSlope  = 8.0
)

// Score maps a feature pair in [0, 1] to a difficulty in [0, 100].
// A combined value of 0.5 scores exactly 50. Rounding is half away from zero.
func Score(trafficIndex, parkingPressure float64) int {
	combined := trafficWeight*trafficIndex + parkingWeight*parkingPressure
	x := (combined - logisticCenter) * logisticSlope
	return int(math.Round(100 / (1 + math.Exp(-x))))
}

// LevelFromScore buckets a score. Each boundary belongs to the upper tier.
func LevelFromScore(score int) domain.Level {
	switch {
	case score < 30:
		return domain.LevelEasy
	case score < 55:
		return domain.LevelModerate
	case score < 75:
		return domain.LevelHard
	default:
		return domain.LevelVeryHard
	}
}

const unknownLevelMessage = "정보를 확인할 수 없습니다."

// Message renders the Korean advisory for level at the named area
func Message(level domain.Level, areaName string, forecast bool) string {
	prefix := "현재 "
	if forecast {
		prefix = "30분 뒤 "
	}

	switch level {
	case domain.LevelEasy:
		return fmt.Sprintf("%s%s은(는) 여유롭습니다. 방문하기 좋은 시간입니다! 🟢", prefix, areaName)
	case domain.LevelModerate:
		return fmt.Sprintf("%s%s은(는) 적당히 붐빕니다. 주차 공간을 미리 확인하세요. 🟡", prefix, areaName)
	case domain.LevelHard:
		return fmt.Sprintf("%s%s이(가) 혼잡합니다. 대중교통 이용을 권장합니다. 🟠", prefix, areaName)
	case domain.LevelVeryHard:
		return fmt.Sprintf("%s%s이(가) 매우 혼잡합니다. 방문 시간 조정을 권장합니다. 🔴", prefix, areaName)
	default:
		return unknownLevelMessage
	}
}

// Assess scores a feature pair and renders its level and message
func Assess(f domain.Features, areaName string, forecast bool) domain.Assessment {
	score := Score(f.TrafficIndex, f.ParkingPressure)
	level := LevelFromScore(score)
	return domain.Assessment{
		Score:   score,
		Level:   level,
		Message: Message(level, areaName, forecast),
	}
}
