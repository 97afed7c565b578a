package interfaces

import (
	"context"
	"fmrental_prestige/internal/domain/entities"
	"time"
)

// IReservationRepository abstracts DynamoDB persistence for Reservation.
//
// The rental service must be able to:
//   - insert a reservation under a freshly generated store id
//   - list up to N reservations in store order
//   - find a reservation by its business code
//   - stamp the check-in fields of a reservation by store id
//
// Lookups return a zero Reservation (empty ID) when nothing matches.

type IReservationRepository interface {
	Create(ctx context.Context, r entities.Reservation) (entities.Reservation, error)
	List(ctx context.Context, limit int) ([]entities.Reservation, error)
	GetByCode(ctx context.Context, code string) (entities.Reservation, error)
	UpdateCheckIn(ctx context.Context, id entities.DocumentID, status entities.CheckInStatus, at time.Time) (entities.Reservation, error)
}
