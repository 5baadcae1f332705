package models

import "time"

// Farmer is a producer account with transactional attributes on top of the
// base contact fields.
type Farmer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Village string `json:"village,omitempty"`

	// CropType and LandAcres describe the farmer's production profile.
	CropType  string  `json:"crop_type,omitempty"`
	LandAcres float64 `json:"land_acres,omitempty"`

	// TotalPurchases accumulates the value of recorded purchases.
	TotalPurchases float64 `json:"total_purchases,omitempty"`

	Status RecordStatus `json:"status"`

	Ownership

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectionKey returns the storage key of the farmers collection.
func (f Farmer) CollectionKey() string {
	return "farmers"
}

// Owner returns the record's ownership relation.
func (f Farmer) Owner() Ownership {
	return f.Ownership
}
