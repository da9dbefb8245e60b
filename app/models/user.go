package models

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// ProfileUpdate is the partial profile payload for PUT /user/profile.
type ProfileUpdate struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// AuthResponse is the body of successful login/register calls.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
