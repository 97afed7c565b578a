package entities

import (
	"errors"
	"testing"
	"time"
)

func TestCheckInStatus_CheckIn(t *testing.T) {
	cases := []struct {
		from    CheckInStatus
		want    CheckInStatus
		wantErr error
	}{
		{from: CheckInStatusNotCheckedIn, want: CheckInStatusCheckedIn},
		{from: CheckInStatusCheckedIn, want: CheckInStatusCheckedIn},
		{from: CheckInStatus("lost"), want: CheckInStatus("lost"), wantErr: ErrInvalidCheckInTransition},
	}

	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			got, err := tc.from.CheckIn()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestReservation_CheckIn(t *testing.T) {
	r := Reservation{Code: "FM-20240701100000", CheckInStatus: CheckInStatusNotCheckedIn}
	if r.CheckInAt != nil {
		t.Fatalf("check_in_at must be nil before check-in")
	}

	first := time.Date(2024, 7, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	if err := r.CheckIn(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.CheckInStatus != CheckInStatusCheckedIn {
		t.Fatalf("expected checked_in, got %s", r.CheckInStatus)
	}
	if r.CheckInAt == nil || r.CheckInAt.Location() != time.UTC || !r.CheckInAt.Equal(first) {
		t.Fatalf("unexpected check_in_at: %v", r.CheckInAt)
	}

	second := first.Add(time.Minute)
	if err := r.CheckIn(second); err != nil {
		t.Fatalf("repeated check-in must not fail: %v", err)
	}
	if !r.CheckInAt.Equal(second) {
		t.Fatalf("expected check_in_at moved to %v, got %v", second, r.CheckInAt)
	}
}

func TestReservation_CheckInRejectsUnknownStatus(t *testing.T) {
	r := Reservation{CheckInStatus: CheckInStatus("")}
	if err := r.CheckIn(time.Now()); !errors.Is(err, ErrInvalidCheckInTransition) {
		t.Fatalf("expected ErrInvalidCheckInTransition, got %v", err)
	}
	if r.CheckInAt != nil {
		t.Fatalf("failed transition must not stamp check_in_at")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []ReservationStatus{ReservationStatusInReview, ReservationStatusConfermata, ReservationStatusRifiutata} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ReservationStatus("pending").Valid() {
		t.Fatalf("unexpected valid status")
	}
	if CheckInStatus("checked_out").Valid() {
		t.Fatalf("unexpected valid check-in status")
	}
}

func TestDocumentID(t *testing.T) {
	id := NewDocumentID()
	if id.IsZero() {
		t.Fatalf("expected generated id")
	}
	parsed, err := ParseDocumentID(" " + id.String() + " ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != id {
		t.Fatalf("expected %s, got %s", id, parsed)
	}
	if _, err := ParseDocumentID("not-a-uuid"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidRating(t *testing.T) {
	for r := MinReviewRating; r <= MaxReviewRating; r++ {
		if !ValidRating(r) {
			t.Fatalf("expected %d valid", r)
		}
	}
	if ValidRating(0) || ValidRating(6) {
		t.Fatalf("expected out of range ratings to be invalid")
	}
}
