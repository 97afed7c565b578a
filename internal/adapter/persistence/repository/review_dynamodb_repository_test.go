package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fmrental_prestige/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewDynamoRepository_CreateAndList(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewReviewDynamoRepository(ddb, "review")
	fonte := "Google"
	now := time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC)

	for rating := 1; rating <= 5; rating++ {
		rv := entities.Review{ID: entities.NewDocumentID(), Nome: "Anna", Rating: rating, Commento: "Ottimo servizio", Fonte: &fonte, CreatedAt: now}
		created, err := repo.Create(context.Background(), rv)
		require.NoError(t, err)
		assert.Equal(t, rv, created)
	}

	rating, ok := ddb.puts[0].Item["rating"].(*types.AttributeValueMemberN)
	require.True(t, ok, "rating must be stored as a number")
	assert.Equal(t, "1", rating.Value)
	assert.Equal(t, "review", aws.ToString(ddb.puts[0].TableName))

	got, err := repo.List(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, rv := range got {
		assert.Equal(t, i+1, rv.Rating)
		assert.Equal(t, "Google", *rv.Fonte)
		assert.True(t, rv.CreatedAt.Equal(now))
	}

	limited, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestReviewDynamoRepository_StoreErrors(t *testing.T) {
	boom := errors.New("ResourceNotFoundException")
	repo := NewReviewDynamoRepository(&fakeDynamo{err: boom}, "review")

	_, err := repo.Create(context.Background(), entities.Review{ID: entities.NewDocumentID(), Rating: 3})
	assert.ErrorIs(t, err, boom)
	_, err = repo.List(context.Background(), 12)
	assert.ErrorIs(t, err, boom)
}
