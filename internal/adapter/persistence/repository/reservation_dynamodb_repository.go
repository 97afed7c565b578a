package repository

import (
	"context"
	"errors"
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

type reservationItem struct {
	ID              string  `dynamodbav:"id"`
	Code            string  `dynamodbav:"code"`
	Nome            string  `dynamodbav:"nome"`
	Cognome         string  `dynamodbav:"cognome"`
	Email           string  `dynamodbav:"email"`
	Telefono        string  `dynamodbav:"telefono"`
	Auto            string  `dynamodbav:"auto"`
	RitiroData      string  `dynamodbav:"ritiro_data"`
	RiconsegnaData  string  `dynamodbav:"riconsegna_data"`
	RitiroLuogo     string  `dynamodbav:"ritiro_luogo"`
	RiconsegnaLuogo string  `dynamodbav:"riconsegna_luogo"`
	Messaggio       *string `dynamodbav:"messaggio,omitempty"`
	Sorgente        *string `dynamodbav:"sorgente,omitempty"`
	Stato           string  `dynamodbav:"stato"`
	CheckInStatus   string  `dynamodbav:"check_in_status"`
	CheckInAt       string  `dynamodbav:"check_in_at,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// ReservationDynamoRepository persists Reservation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// Codes are not unique at the table level; GetByCode returns the first match,
// falling back to a consistent Scan when the index has not caught up yet.

type ReservationDynamoRepository struct {
	ddb       database.Client
	tableName string
}

var _ interfaces.IReservationRepository = (*ReservationDynamoRepository)(nil)

func NewReservationDynamoRepository(ddb database.Client, tableName string) *ReservationDynamoRepository {
	return &ReservationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReservationDynamoRepository) Create(ctx context.Context, res entities.Reservation) (entities.Reservation, error) {
	av, err := attributevalue.MarshalMap(toReservationItem(res))
	if err != nil {
		return entities.Reservation{}, err
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
		return entities.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationDynamoRepository) List(ctx context.Context, limit int) ([]entities.Reservation, error) {
	if limit <= 0 {
		return []entities.Reservation{}, nil
	}
	items := make([]entities.Reservation, 0, min(limit, maxScanPage))
	err := scanUpTo(ctx, r.ddb, r.tableName, limit, func(raw map[string]types.AttributeValue) error {
		var it reservationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, fromReservationItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ReservationDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Reservation, error) {
	start := time.Now()
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.ReservationCodeIndex),
		KeyConditionExpression: aws.String("#code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	observability.ObserveStore(r.tableName, "query", err, time.Since(start))
	if err != nil {
		return entities.Reservation{}, err
	}
	if len(out.Items) == 0 {
		return r.scanByCode(ctx, code)
	}

	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it), nil
}

// scanByCode reads the base table with strong consistency. GSI reads are
// eventually consistent and can miss a reservation created moments ago.
func (r *ReservationDynamoRepository) scanByCode(ctx context.Context, code string) (entities.Reservation, error) {
	var startKey map[string]types.AttributeValue
	for {
		start := time.Now()
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			ConsistentRead:   aws.Bool(true),
			FilterExpression: aws.String("#code = :code"),
			ExpressionAttributeNames: map[string]string{
				"#code": "code",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":code": &types.AttributeValueMemberS{Value: code},
			},
			ExclusiveStartKey: startKey,
		})
		observability.ObserveStore(r.tableName, "scan", err, time.Since(start))
		if err != nil {
			return entities.Reservation{}, err
		}
		if len(out.Items) > 0 {
			var it reservationItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.Reservation{}, err
			}
			return fromReservationItem(it), nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.Reservation{}, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ReservationDynamoRepository) UpdateCheckIn(ctx context.Context, id entities.DocumentID, status entities.CheckInStatus, at time.Time) (entities.Reservation, error) {
	ts := formatTime(at)
	start := time.Now()
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #check_in_status = :status, #check_in_at = :at, #updated_at = :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":at":     &types.AttributeValueMemberS{Value: ts},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#check_in_status": "check_in_status",
			"#check_in_at":     "check_in_at",
			"#updated_at":      "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	observability.ObserveStore(r.tableName, "update_item", err, time.Since(start))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Reservation{}, nil
		}
		return entities.Reservation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Reservation{}, nil
	}
	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it), nil
}

func toReservationItem(r entities.Reservation) reservationItem {
	it := reservationItem{
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
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
	}
	if r.CheckInAt != nil {
		it.CheckInAt = formatTime(*r.CheckInAt)
	}
	return it
}

func fromReservationItem(it reservationItem) entities.Reservation {
	return entities.Reservation{
		ID:              documentID(it.ID),
		Code:            it.Code,
		Nome:            it.Nome,
		Cognome:         it.Cognome,
		Email:           it.Email,
		Telefono:        it.Telefono,
		Auto:            it.Auto,
		RitiroData:      it.RitiroData,
		RiconsegnaData:  it.RiconsegnaData,
		RitiroLuogo:     it.RitiroLuogo,
		RiconsegnaLuogo: it.RiconsegnaLuogo,
		Messaggio:       it.Messaggio,
		Sorgente:        it.Sorgente,
		Stato:           entities.ReservationStatus(it.Stato),
		CheckInStatus:   entities.CheckInStatus(it.CheckInStatus),
		CheckInAt:       parseOptionalTime(it.CheckInAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
