package repository

import (
	"context"
	"maps"

	"fmrental_prestige/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps a single table in insertion order and understands only the
// requests the repositories issue.
type fakeDynamo struct {
	database.Client

	items    []map[string]types.AttributeValue
	pageSize int
	err      error
	// indexLag makes index queries return nothing, as a GSI that has not
	// propagated a fresh write yet.
	indexLag bool

	puts    []*dynamodb.PutItemInput
	scans   []*dynamodb.ScanInput
	queries []*dynamodb.QueryInput
	updates []*dynamodb.UpdateItemInput
}

func attrS(m map[string]types.AttributeValue, k string) string {
	if v, ok := m[k].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) indexOf(id string) int {
	for i, it := range f.items {
		if attrS(it, "id") == id {
			return i
		}
	}
	return -1
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.err != nil {
		return nil, f.err
	}
	if f.indexOf(attrS(in.Item, "id")) >= 0 {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	f.items = append(f.items, maps.Clone(in.Item))
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	if f.err != nil {
		return nil, f.err
	}
	start := 0
	if in.ExclusiveStartKey != nil {
		start = f.indexOf(attrS(in.ExclusiveStartKey, "id")) + 1
	}
	n := int(aws.ToInt32(in.Limit))
	if n == 0 {
		n = len(f.items)
	}
	if f.pageSize > 0 && f.pageSize < n {
		n = f.pageSize
	}
	end := min(start+n, len(f.items))

	// Limit applies before the filter, as in DynamoDB.
	out := &dynamodb.ScanOutput{}
	code := attrS(in.ExpressionAttributeValues, ":code")
	for _, it := range f.items[start:end] {
		if in.FilterExpression == nil || attrS(it, "code") == code {
			out.Items = append(out.Items, it)
		}
	}
	if end < len(f.items) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": f.items[end-1]["id"]}
	}
	return out, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.err != nil {
		return nil, f.err
	}
	code := attrS(in.ExpressionAttributeValues, ":code")
	out := &dynamodb.QueryOutput{}
	if f.indexLag {
		return out, nil
	}
	for _, it := range f.items {
		if attrS(it, "code") == code {
			out.Items = append(out.Items, it)
			if len(out.Items) == int(aws.ToInt32(in.Limit)) {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.err != nil {
		return nil, f.err
	}
	i := f.indexOf(attrS(in.Key, "id"))
	if i < 0 {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	f.items[i]["check_in_status"] = in.ExpressionAttributeValues[":status"]
	f.items[i]["check_in_at"] = in.ExpressionAttributeValues[":at"]
	f.items[i]["updated_at"] = in.ExpressionAttributeValues[":at"]
	return &dynamodb.UpdateItemOutput{Attributes: maps.Clone(f.items[i])}, nil
}
