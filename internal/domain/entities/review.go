package entities

import "time"

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review is a customer testimonial. Reviews are never updated after creation.
type Review struct {
	ID        DocumentID `json:"id"`
	Nome      string     `json:"nome"`
	Rating    int        `json:"rating"`
	Commento  string     `json:"commento"`
	Fonte     *string    `json:"fonte,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ValidRating(rating int) bool {
	return rating >= MinReviewRating && rating <= MaxReviewRating
}
