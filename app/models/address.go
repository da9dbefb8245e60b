package models

// Address is a saved shipping address. At most one address per user
// is expected to carry IsDefault=true; the backend owns that
// invariant, this client only mirrors it.
type Address struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"isDefault"`
}
