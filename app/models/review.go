package models

import "time"

type ReviewMedia struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Review struct {
	ID                 string        `json:"id"`
	Rating             int           `json:"rating"`
	Comment            string        `json:"comment"`
	Title              string        `json:"title,omitempty"`
	IsVerifiedPurchase bool          `json:"isVerifiedPurchase"`
	HelpfulVotes       int           `json:"helpfulVotes"`
	Media              []ReviewMedia `json:"media,omitempty"`
	User               User          `json:"user"`
	ProductID          string        `json:"product_id"`
	UserID             string        `json:"user_id"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

type ReviewsResponse struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int      `json:"totalReviews"`
}

// ReviewPayload is the submit-review request body.
type ReviewPayload struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
