package models

// CrowdData is a density reading for one named location. CrowdCount,
// Capacity, OccupancyRate, DensityLevel, WaitTime and Status are
// mutually derived; the simulation rewrites the whole record on every
// refresh instead of patching individual fields.
type CrowdData struct {
	Meta
	LocationName  string  `json:"locationName"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	CrowdCount    int     `json:"crowdCount"`
	Capacity      int     `json:"capacity"`
	OccupancyRate int     `json:"occupancyRate"`
	DensityLevel  string  `json:"densityLevel"` // low, medium, high, critical
	WaitTime      string  `json:"waitTime"`
	Status        string  `json:"status"` // clear, normal, moderate, busy, overcrowded
}

// Density levels derived from occupancy rate.
const (
	DensityLow      = "low"
	DensityMedium   = "medium"
	DensityHigh     = "high"
	DensityCritical = "critical"
)
