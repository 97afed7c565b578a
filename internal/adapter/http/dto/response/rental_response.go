package response

import (
	"time"

	"fmrental_prestige/internal/domain/entities"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ReservationCreatedResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	ID      string `json:"id"`
}

type ReviewCreatedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ItemsResponse wraps list endpoints as {"items": [...]}.
type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

type ReservationResponse struct {
	ID              string     `json:"id"`
	Code            string     `json:"code"`
	Nome            string     `json:"nome"`
	Cognome         string     `json:"cognome"`
	Email           string     `json:"email"`
	Telefono        string     `json:"telefono"`
	Auto            string     `json:"auto"`
	RitiroData      string     `json:"ritiro_data"`
	RiconsegnaData  string     `json:"riconsegna_data"`
	RitiroLuogo     string     `json:"ritiro_luogo"`
	RiconsegnaLuogo string     `json:"riconsegna_luogo"`
	Messaggio       *string    `json:"messaggio,omitempty"`
	Sorgente        *string    `json:"sorgente,omitempty"`
	Stato           string     `json:"stato"`
	CheckInStatus   string     `json:"check_in_status"`
	CheckInAt       *time.Time `json:"check_in_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Rating    int       `json:"rating"`
	Commento  string    `json:"commento"`
	Fonte     *string   `json:"fonte,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReservation(r entities.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID.String(),
		Code:            r.Code,
		Nome:            r.Nome,
		Cognome:         r.Cognome,
		Email:           r.Email,
		Telefono:        r.Telefono,
		Auto:            r.Auto,
		RitiroData:      r.RitiroData,
		RiconsegnaData:  r.RiconsegnaData,
		RitiroLuogo:     r.RitiroLuogo,
		RiconsegnaLuogo: r.RiconsegnaLuogo,
		Messaggio:       r.Messaggio,
		Sorgente:        r.Sorgente,
		Stato:           string(r.Stato),
		CheckInStatus:   string(r.CheckInStatus),
		CheckInAt:       r.CheckInAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromReservations(items []entities.Reservation) ItemsResponse[ReservationResponse] {
	out := make([]ReservationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromReservation(r))
	}
	return ItemsResponse[ReservationResponse]{Items: out}
}

func FromReview(rv entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:        rv.ID.String(),
		Nome:      rv.Nome,
		Rating:    rv.Rating,
		Commento:  rv.Commento,
		Fonte:     rv.Fonte,
		CreatedAt: rv.CreatedAt,
	}
}

func FromReviews(items []entities.Review) ItemsResponse[ReviewResponse] {
	out := make([]ReviewResponse, 0, len(items))
	for _, rv := range items {
		out = append(out, FromReview(rv))
	}
	return ItemsResponse[ReviewResponse]{Items: out}
}
