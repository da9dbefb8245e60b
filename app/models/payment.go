package models

const (
	PaymentTypeCard   = "card"
	PaymentTypePaypal = "paypal"
)

// PaymentMethod holds only derived card data. The full card number
// and CVV never leave CardFormData and are never persisted.
type PaymentMethod struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	LastFour   string `json:"lastFour,omitempty"`
	CardBrand  string `json:"cardBrand,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	IsDefault  bool   `json:"isDefault"`
}

type CardData struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4"`
	ExpMonth  int    `json:"expMonth"`
	ExpYear   int    `json:"expYear"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

// CardFormData is the add-card form draft. Sensitive fields stay in
// memory for the duration of the submission only.
type CardFormData struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CVV            string `json:"cvv"`
	MakeDefault    bool   `json:"makeDefault"`
}
