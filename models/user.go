package models

// User represents a registered pilgrim or administrator.
type User struct {
	Meta
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"` // pilgrim or admin
	QRID       string `json:"qrId"` // public QR identifier, assigned once at creation
	IsVerified bool   `json:"isVerified"`
	// IsBlocked and IsVerified are independent: a blocked user may
	// well have been verified earlier.
	IsBlocked bool `json:"isBlocked"`
}

// User roles.
const (
	RolePilgrim = "pilgrim"
	RoleAdmin   = "admin"
)
