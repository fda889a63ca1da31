package domain

// Features is the point-in-time input of the difficulty pipeline.
// Both values are kept within [0, 1].
type Features struct {
	TrafficIndex    float64 `json:"traffic_index"`    // 0 = empty, 1 = saturated
	ParkingPressure float64 `json:"parking_pressure"` // 0 = ample, 1 = full
}
