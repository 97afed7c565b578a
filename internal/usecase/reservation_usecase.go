package usecase

import (
	"context"
	"errors"
	"fmrental_prestige/internal/domain/entities"
	"fmrental_prestige/internal/infrastructure/observability"
	"fmrental_prestige/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ReservationCodePrefix       = "FM-"
	reservationCodeLayout       = "20060102150405"
	DefaultReservationListLimit = 50
)

var (
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrInvalidReservationCode  = errors.New("invalid reservation code")
	ErrInvalidReservationInput = errors.New("invalid reservation input")
)

// CreateReservationInput carries the customer-provided reservation fields.
// Code, status, check-in fields and timestamps are assigned by the service.
type CreateReservationInput struct {
	Nome            string
	Cognome         string
	Email           string
	Telefono        string
	Auto            string
	RitiroData      string
	RiconsegnaData  string
	RitiroLuogo     string
	RiconsegnaLuogo string
	Messaggio       *string
	Sorgente        *string
}

// IReservationUseCase exposes the reservation lifecycle:
//   - POST /api/reservations => Create()
//   - GET /api/reservations => List()
//   - POST /api/checkin/{code} => CheckIn()

type IReservationUseCase interface {
	Create(ctx context.Context, in CreateReservationInput) (entities.Reservation, error)
	List(ctx context.Context, limit int) ([]entities.Reservation, error)
	CheckIn(ctx context.Context, code string) (entities.Reservation, error)
}

type ReservationUseCase struct {
	repo interfaces.IReservationRepository
	now  func() time.Time
}

var _ IReservationUseCase = (*ReservationUseCase)(nil)

func NewReservationUseCase(repo interfaces.IReservationRepository) *ReservationUseCase {
	return &ReservationUseCase{repo: repo, now: time.Now}
}

// WithClock replaces the time source used for codes and check-in timestamps.
func (u *ReservationUseCase) WithClock(now func() time.Time) *ReservationUseCase {
	u.now = now
	return u
}

// GenerateReservationCode derives the reservation code from t at second granularity.
// Two reservations created within the same UTC second get the same code.
func GenerateReservationCode(t time.Time) string {
	return ReservationCodePrefix + t.UTC().Format(reservationCodeLayout)
}

func (u *ReservationUseCase) Create(ctx context.Context, in CreateReservationInput) (entities.Reservation, error) {
	if !in.complete() {
		return entities.Reservation{}, ErrInvalidReservationInput
	}
	if u.repo == nil {
		log.Error().Msg("reservation repository not configured")
		return entities.Reservation{}, ErrStoreUnavailable
	}

	now := u.now().UTC()
	r := entities.Reservation{
		ID:              entities.NewDocumentID(),
		Code:            GenerateReservationCode(now),
		Nome:            in.Nome,
		Cognome:         in.Cognome,
		Email:           in.Email,
		Telefono:        in.Telefono,
		Auto:            in.Auto,
		RitiroData:      in.RitiroData,
		RiconsegnaData:  in.RiconsegnaData,
		RitiroLuogo:     in.RitiroLuogo,
		RiconsegnaLuogo: in.RiconsegnaLuogo,
		Messaggio:       in.Messaggio,
		Sorgente:        in.Sorgente,
		Stato:           entities.ReservationStatusInReview,
		CheckInStatus:   entities.CheckInStatusNotCheckedIn,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Error().Err(err).Str("code", r.Code).Msg("reservation create failed")
		return entities.Reservation{}, storeError("create reservation", err)
	}
	observability.ObserveReservation("created")
	log.Info().Str("code", created.Code).Str("id", created.ID.String()).Str("auto", created.Auto).Msg("reservation created")
	return created, nil
}

func (u *ReservationUseCase) List(ctx context.Context, limit int) ([]entities.Reservation, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if u.repo == nil {
		return nil, ErrStoreUnavailable
	}

	items, err := u.repo.List(ctx, limit)
	if err != nil {
		return nil, storeError("list reservations", err)
	}
	return items, nil
}

func (u *ReservationUseCase) CheckIn(ctx context.Context, code string) (entities.Reservation, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Reservation{}, ErrInvalidReservationCode
	}
	if u.repo == nil {
		log.Error().Str("code", code).Msg("reservation repository not configured")
		return entities.Reservation{}, ErrStoreUnavailable
	}

	r, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Reservation{}, storeError("find reservation", err)
	}
	if r.ID.IsZero() {
		log.Info().Str("code", code).Msg("check-in for unknown reservation")
		return entities.Reservation{}, ErrReservationNotFound
	}

	// Repeated check-ins are accepted and move check_in_at forward.
	if err := r.CheckIn(u.now()); err != nil {
		log.Warn().Str("code", code).Str("check_in_status", string(r.CheckInStatus)).Msg("reservation has unknown check-in status")
		return entities.Reservation{}, err
	}

	updated, err := u.repo.UpdateCheckIn(ctx, r.ID, r.CheckInStatus, *r.CheckInAt)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("reservation check-in failed")
		return entities.Reservation{}, storeError("update reservation", err)
	}
	if updated.ID.IsZero() {
		return entities.Reservation{}, ErrReservationNotFound
	}
	observability.ObserveReservation("checked_in")
	log.Info().Str("code", code).Str("id", updated.ID.String()).Time("check_in_at", *r.CheckInAt).Msg("reservation checked in")
	return updated, nil
}

func (in CreateReservationInput) complete() bool {
	for _, v := range []string{
		in.Nome, in.Cognome, in.Email, in.Telefono, in.Auto,
		in.RitiroData, in.RiconsegnaData, in.RitiroLuogo, in.RiconsegnaLuogo,
	} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
