package domain

// Level is one of four ordered severity tiers bucketed from a difficulty score
type Level string

const (
	LevelEasy     Level = "EASY"
	LevelModerate Level = "MODERATE"
	LevelHard     Level = "HARD"
	LevelVeryHard Level = "VERY_HARD"
)

// Assessment is a score, its level and the advisory rendered for it.
// One is computed for "now" and one for the 30 minute forecast on every request.
type Assessment struct {
	Score   int    `json:"score"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// SyntheticDataNote is attached to every status response.
const SyntheticDataNote = "현재 더미(룰 기반) 데이터로 동작 중입니다. 추후 실시간 교통/주차 API 연동 예정."

// StatusResponse is the current + 30 minute bundle for one area
type StatusResponse struct {
	AreaID                  string  `json:"area_id"`
	Area                    string  `json:"area"`
	AreaKR                  string  `json:"area_kr"`
	Region                  string  `json:"region"`
	Category                string  `json:"category"`
	Emoji                   string  `json:"emoji"`
	NowKST                  string  `json:"now_kst"`
	TrafficIndexNow         float64 `json:"traffic_index_now"`
	TrafficIndexForecast30m float64 `json:"traffic_index_forecast_30m"`
	ParkingPressureNow      float64 `json:"parking_pressure_now"`
	DifficultyNow           int     `json:"difficulty_now_0_100"`
	Difficulty30m           int     `json:"difficulty_30m_0_100"`
	LevelNow                Level   `json:"level_now"`
	Level30m                Level   `json:"level_30m"`
	Message                 string  `json:"message"`
	Message30m              string  `json:"message_30m"`
	Notes                   string  `json:"notes"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
