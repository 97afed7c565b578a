package request

import "fmrental_prestige/internal/usecase"

// ReservationCreateRequest is the public booking form payload.
type ReservationCreateRequest struct {
	Nome            string  `json:"nome" validate:"required"`
	Cognome         string  `json:"cognome" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Telefono        string  `json:"telefono" validate:"required"`
	Auto            string  `json:"auto" validate:"required"`
	RitiroData      string  `json:"ritiro_data" validate:"required"`
	RiconsegnaData  string  `json:"riconsegna_data" validate:"required"`
	RitiroLuogo     string  `json:"ritiro_luogo" validate:"required"`
	RiconsegnaLuogo string  `json:"riconsegna_luogo" validate:"required"`
	Messaggio       *string `json:"messaggio,omitempty"`
	Sorgente        *string `json:"sorgente,omitempty"`
}

func (r ReservationCreateRequest) Validate() error {
	return validateStruct(r)
}

func (r ReservationCreateRequest) ToInput() usecase.CreateReservationInput {
	return usecase.CreateReservationInput{
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
	}
}
