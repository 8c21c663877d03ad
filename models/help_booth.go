package models

// HelpBooth is a staffed assistance point on the mela grounds. The
// Staff and Services lists are replaced wholesale on update, never
// appended to.
type HelpBooth struct {
	Meta
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Latitude      float64  `json:"latitude,omitempty"`
	Longitude     float64  `json:"longitude,omitempty"`
	Staff         []string `json:"staff,omitempty"`
	Services      []string `json:"services"`
	ContactNumber string   `json:"contactNumber,omitempty"`
	IsActive      bool     `json:"isActive"`
}
