package database

import (
	"context"

	"fmrental_prestige/internal/infrastructure/config"
	"fmrental_prestige/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// StoreInspector answers diagnostics questions about the DynamoDB backend.
type StoreInspector struct {
	ddb      Client
	endpoint string
	region   string
}

var _ interfaces.IStoreInspector = (*StoreInspector)(nil)

func NewStoreInspector(ddb Client, cfg config.DynamoDB) *StoreInspector {
	return &StoreInspector{ddb: ddb, endpoint: cfg.Endpoint, region: cfg.Region}
}

func (s *StoreInspector) Endpoint() string { return s.endpoint }

func (s *StoreInspector) Region() string { return s.region }

// ListCollections returns up to limit table names.
func (s *StoreInspector) ListCollections(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	out, err := s.ddb.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(int32(limit))})
	if err != nil {
		return nil, err
	}
	if len(out.TableNames) > limit {
		return out.TableNames[:limit], nil
	}
	return out.TableNames, nil
}
