package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// table wraps the item-level calls shared by every repository. I is the
// dynamodbav-tagged record stored in the table; its key attribute is "id".
type table[I any] struct {
	api  DynamoAPI
	name string
}

func newTable[I any](api DynamoAPI, name, def string) table[I] {
	if name == "" {
		name = def
	}
	return table[I]{api: api, name: name}
}

// put writes it. With a non-empty condition, a failed check reports
// ok=false and a nil error.
func (t table[I]) put(ctx context.Context, it I, condition string, names map[string]string, values map[string]types.AttributeValue) (bool, error) {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}
	in := &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	}
	if condition != "" {
		in.ConditionExpression = aws.String(condition)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}
	if _, err := t.api.PutItem(ctx, in); err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (t table[I]) create(ctx context.Context, it I) (bool, error) {
	return t.put(ctx, it, "attribute_not_exists(#id)", map[string]string{"#id": "id"}, nil)
}

func (t table[I]) replace(ctx context.Context, it I) (bool, error) {
	return t.put(ctx, it, "attribute_exists(#id)", map[string]string{"#id": "id"}, nil)
}

func (t table[I]) get(ctx context.Context, id string) (I, bool, error) {
	var it I
	out, err := t.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func (t table[I]) delete(ctx context.Context, id string) error {
	_, err := t.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       idKey(id),
	})
	return err
}

func (t table[I]) scan(ctx context.Context) ([]I, error) {
	p := dynamodb.NewScanPaginator(t.api, &dynamodb.ScanInput{TableName: aws.String(t.name)})
	var items []I
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalItems[I](page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// queryIndex reads every item of a GSI partition. filter is optional.
func (t table[I]) queryIndex(ctx context.Context, index, keyAttr, keyValue, filter string, names map[string]string, values map[string]types.AttributeValue) ([]I, error) {
	exprValues := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: keyValue},
	}
	for k, v := range values {
		exprValues[k] = v
	}
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#pk = :pk"),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": keyAttr}),
		ExpressionAttributeValues: exprValues,
	}
	if filter != "" {
		in.FilterExpression = aws.String(filter)
	}

	p := dynamodb.NewQueryPaginator(t.api, in)
	var items []I
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalItems[I](page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

func unmarshalItems[I any](raw []map[string]types.AttributeValue) ([]I, error) {
	items := make([]I, 0, len(raw))
	for _, r := range raw {
		var it I
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// timeFields parses the RFC3339 attributes of one item and keeps the first
// failure. An empty attribute is the zero time.
type timeFields struct {
	err error
}

func (p *timeFields) parse(name, s string) time.Time {
	if s == "" || p.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		p.err = fmt.Errorf("attribute %s: %w", name, err)
		return time.Time{}
	}
	return t
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
