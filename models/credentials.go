package models

// GeoPoint is a device location captured at login time. The server does not
// track positions beyond this single grant; it only refuses sessions that
// were opened without one.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Credentials is the login request payload. Location must be present: a
// session without a geolocation grant is rejected regardless of the
// credential check.
type Credentials struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Location *GeoPoint `json:"location,omitempty"`
}

// Principal is the authenticated actor attached to every scoped operation.
// It pairs the user's identity with the admin flag of the resolved role so
// policy decisions need no further lookups.
type Principal struct {
	// UserID is the id of the authenticated user, compared against record
	// ownership fields.
	UserID string `json:"user_id"`

	// IsAdmin mirrors the resolved role's unrestricted-access flag.
	// Administrators bypass ownership checks but not self-protection.
	IsAdmin bool `json:"is_admin"`
}
