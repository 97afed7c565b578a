package repository

import (
	"context"
	"time"

	"fmrental_prestige/internal/domain/entities"
	"fmrental_prestige/internal/infrastructure/database"
	"fmrental_prestige/internal/infrastructure/observability"
	"fmrental_prestige/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type reviewItem struct {
	ID        string  `dynamodbav:"id"`
	Nome      string  `dynamodbav:"nome"`
	Rating    int     `dynamodbav:"rating"`
	Commento  string  `dynamodbav:"commento"`
	Fonte     *string `dynamodbav:"fonte,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ReviewDynamoRepository struct {
	ddb       database.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb database.Client, tableName string) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(reviewItem{
		ID:        rv.ID.String(),
		Nome:      rv.Nome,
		Rating:    rv.Rating,
		Commento:  rv.Commento,
		Fonte:     rv.Fonte,
		CreatedAt: formatTime(rv.CreatedAt),
	})
	if err != nil {
		return entities.Review{}, err
	}

	start := time.Now()
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	observability.ObserveStore(r.tableName, "put_item", err, time.Since(start))
	if err != nil {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) List(ctx context.Context, limit int) ([]entities.Review, error) {
	if limit <= 0 {
		return []entities.Review{}, nil
	}
	items := make([]entities.Review, 0, min(limit, maxScanPage))
	err := scanUpTo(ctx, r.ddb, r.tableName, limit, func(raw map[string]types.AttributeValue) error {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, entities.Review{
			ID:        documentID(it.ID),
			Nome:      it.Nome,
			Rating:    it.Rating,
			Commento:  it.Commento,
			Fonte:     it.Fonte,
			CreatedAt: parseTime(it.CreatedAt),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
