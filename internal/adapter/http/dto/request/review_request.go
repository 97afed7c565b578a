package request

import "fmrental_prestige/internal/usecase"

type ReviewCreateRequest struct {
	Nome     string  `json:"nome" validate:"required"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Commento string  `json:"commento" validate:"required"`
	Fonte    *string `json:"fonte,omitempty"`
}

func (r ReviewCreateRequest) Validate() error {
	return validateStruct(r)
}

func (r ReviewCreateRequest) ToInput() usecase.CreateReviewInput {
	return usecase.CreateReviewInput{
		Nome:     r.Nome,
		Rating:   r.Rating,
		Commento: r.Commento,
		Fonte:    r.Fonte,
	}
}
