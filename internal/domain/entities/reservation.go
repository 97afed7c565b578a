package entities

import (
	"errors"
	"time"
)

var ErrInvalidCheckInTransition = errors.New("invalid check-in transition")

// ReservationStatus represents the review outcome of a rental request.
//
// New reservations always start in review. Confirmation and refusal are decided
// by the back office outside this service.
type ReservationStatus string

const (
	ReservationStatusInReview   ReservationStatus = "in_review"
	ReservationStatusConfermata ReservationStatus = "confermata"
	ReservationStatusRifiutata  ReservationStatus = "rifiutata"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusInReview, ReservationStatusConfermata, ReservationStatusRifiutata:
		return true
	}
	return false
}

// CheckInStatus tracks whether the customer picked up the car.
type CheckInStatus string

const (
	CheckInStatusNotCheckedIn CheckInStatus = "not_checked_in"
	CheckInStatusCheckedIn    CheckInStatus = "checked_in"
)

func (s CheckInStatus) Valid() bool {
	return s == CheckInStatusNotCheckedIn || s == CheckInStatusCheckedIn
}

// CheckIn returns the status that follows a check-in.
//
// The only forward move is not_checked_in -> checked_in. A reservation that is
// already checked in stays checked in; there is no way back.
func (s CheckInStatus) CheckIn() (CheckInStatus, error) {
	switch s {
	case CheckInStatusNotCheckedIn, CheckInStatusCheckedIn:
		return CheckInStatusCheckedIn, nil
	}
	return s, ErrInvalidCheckInTransition
}

// Reservation is a rental request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (code-index): code
//
// Code is the business identifier shown to customers; ID is the store identifier.
type Reservation struct {
	ID              DocumentID        `json:"id"`
	Code            string            `json:"code"`
	Nome            string            `json:"nome"`
	Cognome         string            `json:"cognome"`
	Email           string            `json:"email"`
	Telefono        string            `json:"telefono"`
	Auto            string            `json:"auto"`
	RitiroData      string            `json:"ritiro_data"`
	RiconsegnaData  string            `json:"riconsegna_data"`
	RitiroLuogo     string            `json:"ritiro_luogo"`
	RiconsegnaLuogo string            `json:"riconsegna_luogo"`
	Messaggio       *string           `json:"messaggio,omitempty"`
	Sorgente        *string           `json:"sorgente,omitempty"`
	Stato           ReservationStatus `json:"stato"`
	CheckInStatus   CheckInStatus     `json:"check_in_status"`
	CheckInAt       *time.Time        `json:"check_in_at"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// CheckIn marks the reservation as checked in at the given instant.
func (r *Reservation) CheckIn(at time.Time) error {
	next, err := r.CheckInStatus.CheckIn()
	if err != nil {
		return err
	}
	at = at.UTC()
	r.CheckInStatus = next
	r.CheckInAt = &at
	r.UpdatedAt = at
	return nil
}
