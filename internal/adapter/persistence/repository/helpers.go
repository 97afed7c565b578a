package repository

import (
	"context"
	"time"

	"fmrental_prestige/internal/domain/entities"
	"fmrental_prestige/internal/infrastructure/database"
	"fmrental_prestige/internal/infrastructure/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxScanPage caps a single Scan request; larger limits are served over several pages.
const maxScanPage = 1000

// scanUpTo walks the table in store order and hands at most limit raw items to visit.
func scanUpTo(
	ctx context.Context,
	ddb database.Client,
	table string,
	limit int,
	visit func(map[string]types.AttributeValue) error,
) error {
	var startKey map[string]types.AttributeValue
	remaining := limit
	for remaining > 0 {
		page := remaining
		if page > maxScanPage {
			page = maxScanPage
		}

		start := time.Now()
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			Limit:             aws.Int32(int32(page)),
			ExclusiveStartKey: startKey,
		})
		observability.ObserveStore(table, "scan", err, time.Since(start))
		if err != nil {
			return err
		}

		for _, raw := range out.Items {
			if remaining == 0 {
				break
			}
			if err := visit(raw); err != nil {
				return err
			}
			remaining--
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func documentID(raw string) entities.DocumentID {
	if id, err := entities.ParseDocumentID(raw); err == nil {
		return id
	}
	return entities.DocumentID(raw)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
