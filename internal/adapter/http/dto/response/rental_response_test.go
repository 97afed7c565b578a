package response

import (
	"encoding/json"
	"testing"
	"time"

	"fmrental_prestige/internal/domain/entities"
)

func TestFromReservation(t *testing.T) {
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	r := entities.Reservation{
		ID:            "2f1c7c1e-8d43-4c4b-9d8a-1b1c2a9f0e11",
		Code:          "FM-20240701100000",
		Auto:          "Porsche 911",
		Stato:         entities.ReservationStatusInReview,
		CheckInStatus: entities.CheckInStatusNotCheckedIn,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res := FromReservation(r)
	if res.ID != "2f1c7c1e-8d43-4c4b-9d8a-1b1c2a9f0e11" || res.Code != "FM-20240701100000" {
		t.Fatalf("unexpected identifiers: %+v", res)
	}
	if res.Stato != "in_review" || res.CheckInStatus != "not_checked_in" {
		t.Fatalf("unexpected statuses: %+v", res)
	}

	raw, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if _, ok := body["_id"]; ok {
		t.Fatalf("raw store identifier leaked: %s", raw)
	}
	if v, ok := body["check_in_at"]; !ok || v != nil {
		t.Fatalf("check_in_at must be present and null: %s", raw)
	}
	if _, ok := body["messaggio"]; ok {
		t.Fatalf("absent optional field must be omitted: %s", raw)
	}
}

func TestFromLists(t *testing.T) {
	raw, _ := json.Marshal(FromReservations(nil))
	if string(raw) != `{"items":[]}` {
		t.Fatalf("empty list must serialize as items array, got %s", raw)
	}

	fonte := "Google"
	reviews := FromReviews([]entities.Review{{ID: "id-1", Nome: "Anna", Rating: 5, Fonte: &fonte}})
	if len(reviews.Items) != 1 || reviews.Items[0].ID != "id-1" || *reviews.Items[0].Fonte != "Google" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}
