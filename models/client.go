package models

import "time"

// ClientType distinguishes private individuals from corporate accounts.
type ClientType string

const (
	ClientIndividual ClientType = "individual"
	ClientCorporate  ClientType = "corporate"
)

// RecordStatus is the generic active/inactive lifecycle flag shared by
// clients and farmers.
type RecordStatus string

const (
	RecordActive   RecordStatus = "active"
	RecordInactive RecordStatus = "inactive"
)

// Client is a customer account managed by field agents.
type Client struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email,omitempty"`
	Phone   string     `json:"phone,omitempty"`
	Address string     `json:"address,omitempty"`
	Type    ClientType `json:"type"`

	Status RecordStatus `json:"status"`

	Ownership

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectionKey returns the storage key of the clients collection.
func (c Client) CollectionKey() string {
	return "clients"
}

// Owner returns the record's ownership relation.
func (c Client) Owner() Ownership {
	return c.Ownership
}
