package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// ReservationCodeIndex is the GSI used to resolve reservations by code.
const ReservationCodeIndex = "code-index"

// TableSpec describes a table keyed by "id" with optional string GSIs.
type TableSpec struct {
	Name string
	// GSIs maps index name to its partition key attribute.
	GSIs map[string]string
}

// RentalTables returns the tables backing the reservation and review collections.
func RentalTables(reservations, reviews string) []TableSpec {
	return []TableSpec{
		{Name: reservations, GSIs: map[string]string{ReservationCodeIndex: "code"}},
		{Name: reviews},
	}
}

// EnsureTables creates the missing tables. Existing tables are not modified.
func EnsureTables(ctx context.Context, ddb Client, specs []TableSpec) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			log.Debug().Str("table", spec.Name).Msg("table exists")
			continue
		}
		var rnf *types.ResourceNotFoundException
		if !errors.As(err, &rnf) {
			return fmt.Errorf("describe table %s: %w", spec.Name, err)
		}

		if _, err := ddb.CreateTable(ctx, createTableInput(spec)); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Info().Str("table", spec.Name).Msg("table created")
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for index, key := range spec.GSIs {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(index),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(spec.Name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
