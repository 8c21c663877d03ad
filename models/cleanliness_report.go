package models

import "time"

// CleanlinessReport is pilgrim feedback about a facility. The star
// rating is validated at submission time only; updates are not
// re-validated. Setting IsResolved stamps ResolvedAt.
type CleanlinessReport struct {
	Meta
	Location      string     `json:"location"`
	FacilityType  string     `json:"facilityType"` // toilet, ghat, road, dustbin, water_station
	Rating        int        `json:"rating"`       // 1-5 stars
	Feedback      string     `json:"feedback,omitempty"`
	IsResolved    bool       `json:"isResolved"`
	AssignedStaff string     `json:"assignedStaff,omitempty"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
}
