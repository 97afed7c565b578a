package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fmrental_prestige/internal/domain/entities"
	"fmrental_prestige/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReservation(code string) entities.Reservation {
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	note := "Consegna in hotel"
	return entities.Reservation{
		ID:              entities.NewDocumentID(),
		Code:            code,
		Nome:            "Mario",
		Cognome:         "Rossi",
		Email:           "mario@example.com",
		Telefono:        "+391234567",
		Auto:            "Lamborghini Huracan",
		RitiroData:      "2024-07-01 10:00",
		RiconsegnaData:  "2024-07-03 10:00",
		RitiroLuogo:     "Milano",
		RiconsegnaLuogo: "Milano",
		Messaggio:       &note,
		Stato:           entities.ReservationStatusInReview,
		CheckInStatus:   entities.CheckInStatusNotCheckedIn,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestReservationDynamoRepository_CreateAndGetByCode(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewReservationDynamoRepository(ddb, "reservation")
	in := sampleReservation("FM-20240701100000")

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, created)

	require.Len(t, ddb.puts, 1)
	put := ddb.puts[0]
	assert.Equal(t, "reservation", aws.ToString(put.TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(put.ConditionExpression))
	assert.Equal(t, "in_review", attrS(put.Item, "stato"))
	assert.Equal(t, "not_checked_in", attrS(put.Item, "check_in_status"))
	assert.NotContains(t, put.Item, "check_in_at")
	assert.NotContains(t, put.Item, "sorgente")

	got, err := repo.GetByCode(context.Background(), "FM-20240701100000")
	require.NoError(t, err)
	assert.Equal(t, in, got)

	require.Len(t, ddb.queries, 1)
	assert.Equal(t, database.ReservationCodeIndex, aws.ToString(ddb.queries[0].IndexName))
	assert.Equal(t, int32(1), aws.ToInt32(ddb.queries[0].Limit))
}

func TestReservationDynamoRepository_GetByCodeMissing(t *testing.T) {
	repo := NewReservationDynamoRepository(&fakeDynamo{}, "reservation")
	got, err := repo.GetByCode(context.Background(), "FM-00000000000000")
	require.NoError(t, err)
	assert.True(t, got.ID.IsZero())
}

func TestReservationDynamoRepository_GetByCodeIndexLag(t *testing.T) {
	ddb := &fakeDynamo{pageSize: 2}
	repo := NewReservationDynamoRepository(ddb, "reservation")
	for i := 0; i < 4; i++ {
		_, err := repo.Create(context.Background(), sampleReservation(fmt.Sprintf("FM-2024070110000%d", i)))
		require.NoError(t, err)
	}
	created, err := repo.Create(context.Background(), sampleReservation("FM-20240701100500"))
	require.NoError(t, err)
	ddb.indexLag = true

	got, err := repo.GetByCode(context.Background(), "FM-20240701100500")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.Len(t, ddb.queries, 1)
	require.Len(t, ddb.scans, 3)
	for _, in := range ddb.scans {
		assert.True(t, aws.ToBool(in.ConsistentRead))
		assert.Equal(t, "#code = :code", aws.ToString(in.FilterExpression))
	}

	missing, err := repo.GetByCode(context.Background(), "FM-00000000000000")
	require.NoError(t, err)
	assert.True(t, missing.ID.IsZero())
}

func TestReservationDynamoRepository_CreateDuplicateID(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewReservationDynamoRepository(ddb, "reservation")
	in := sampleReservation("FM-20240701100000")

	_, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), in)
	assert.Error(t, err)
}

func TestReservationDynamoRepository_ListHonorsLimitAcrossPages(t *testing.T) {
	ddb := &fakeDynamo{pageSize: 2}
	repo := NewReservationDynamoRepository(ddb, "reservation")
	for i := 0; i < 7; i++ {
		_, err := repo.Create(context.Background(), sampleReservation(fmt.Sprintf("FM-2024070110000%d", i)))
		require.NoError(t, err)
	}

	got, err := repo.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "FM-20240701100000", got[0].Code)
	assert.Equal(t, "FM-20240701100004", got[4].Code)
	assert.Len(t, ddb.scans, 3)

	all, err := repo.List(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	none, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReservationDynamoRepository_UpdateCheckIn(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewReservationDynamoRepository(ddb, "reservation")
	in := sampleReservation("FM-20240701100000")
	_, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	at := time.Date(2024, 7, 1, 10, 5, 0, 0, time.UTC)
	updated, err := repo.UpdateCheckIn(context.Background(), in.ID, entities.CheckInStatusCheckedIn, at)
	require.NoError(t, err)
	assert.Equal(t, entities.CheckInStatusCheckedIn, updated.CheckInStatus)
	require.NotNil(t, updated.CheckInAt)
	assert.True(t, updated.CheckInAt.Equal(at))
	assert.True(t, updated.UpdatedAt.Equal(at))
	assert.Equal(t, in.Code, updated.Code)

	require.Len(t, ddb.updates, 1)
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.updates[0].ConditionExpression))
	assert.Equal(t, "id", ddb.updates[0].ExpressionAttributeNames["#id"])
}

func TestReservationDynamoRepository_UpdateCheckInMissing(t *testing.T) {
	repo := NewReservationDynamoRepository(&fakeDynamo{}, "reservation")
	got, err := repo.UpdateCheckIn(context.Background(), entities.NewDocumentID(), entities.CheckInStatusCheckedIn, time.Now())
	require.NoError(t, err)
	assert.True(t, got.ID.IsZero())
}

func TestReservationDynamoRepository_StoreErrors(t *testing.T) {
	boom := errors.New("RequestError: send request failed")
	repo := NewReservationDynamoRepository(&fakeDynamo{err: boom}, "reservation")
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleReservation("FM-1"))
	assert.ErrorIs(t, err, boom)
	_, err = repo.List(ctx, 10)
	assert.ErrorIs(t, err, boom)
	_, err = repo.GetByCode(ctx, "FM-1")
	assert.ErrorIs(t, err, boom)
	_, err = repo.UpdateCheckIn(ctx, entities.NewDocumentID(), entities.CheckInStatusCheckedIn, time.Now())
	assert.ErrorIs(t, err, boom)
}

func TestReservationItemMapping(t *testing.T) {
	in := sampleReservation("FM-20240701100000")
	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	in.CheckInAt = &at
	in.CheckInStatus = entities.CheckInStatusCheckedIn

	it := toReservationItem(in)
	assert.Equal(t, "2024-07-01T12:00:00Z", it.CheckInAt)
	assert.Equal(t, in, fromReservationItem(it))

	legacy := fromReservationItem(reservationItem{ID: "legacy-id", CheckInAt: "garbage"})
	assert.Equal(t, entities.DocumentID("legacy-id"), legacy.ID)
	assert.Nil(t, legacy.CheckInAt)
}
