package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/persistence"
)

const (
	dynamoBackend   = "dynamodb"
	skProfile       = "PROFILE"
	skPrefixTxn     = "TXN#"
	entityTypeTxn   = "TXN"
	entityTypeUser  = "PROFILE"
	attrTransaction = "transactionId"
)

// dynamodbAPI is the minimal DynamoDB interface required by DynamoRecordStore.
// *dynamodb.Client satisfies it.
type dynamodbAPI interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoRecordStore keeps profiles and purchases in a single DynamoDB table.
// Items share PK=USER#<id>; SK is PROFILE or TXN#<timestamp>#<transaction id>.
// A GSI keyed on transactionId serves uniqueness checks.
type DynamoRecordStore struct {
	api              dynamodbAPI
	tableName        string
	transactionIndex string
	logger           coreport.Logger
	errorClassifier  *ErrorClassifier
}

// NewDynamoRecordStore creates a store over the given table and transaction index
func NewDynamoRecordStore(api dynamodbAPI, tableName, transactionIndex string, logger coreport.Logger) (*DynamoRecordStore, error) {
	if api == nil {
		return nil, errors.New("dynamodb store: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("dynamodb store: table name must not be empty")
	}
	if strings.TrimSpace(transactionIndex) == "" {
		return nil, errors.New("dynamodb store: transaction index must not be empty")
	}

	return &DynamoRecordStore{
		api:              api,
		tableName:        tableName,
		transactionIndex: transactionIndex,
		logger:           logger,
		errorClassifier:  NewErrorClassifier(),
	}, nil
}

func userPK(userID string) string {
	return "USER#" + userID
}

func transactionSK(ts time.Time, transactionID string) string {
	return skPrefixTxn + ts.UTC().Format(time.RFC3339Nano) + "#" + transactionID
}

// Name identifies the store in logs
func (s *DynamoRecordStore) Name() string {
	return dynamoBackend
}

func (s *DynamoRecordStore) fail(operation string, err error) error {
	s.logger.Error("DynamoDB request failed", map[string]any{
		"operation": operation,
		"table":     s.tableName,
		"error":     err.Error(),
	})
	return s.errorClassifier.Wrap(dynamoBackend, operation, err)
}

// Ping describes the table to confirm it is reachable
func (s *DynamoRecordStore) Ping(ctx context.Context) error {
	_, err := s.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)})
	if err != nil {
		return s.errorClassifier.Wrap(dynamoBackend, "ping", err)
	}
	return nil
}

// UpsertUserProfile writes or replaces the profile item
func (s *DynamoRecordStore) UpsertUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil || strings.TrimSpace(profile.UserID) == "" {
		return errs.ErrInvalidUserID
	}

	_, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      profileItem(profile),
	})
	if err != nil {
		return s.fail("upsert_user_profile", err)
	}
	return nil
}

// GetUserProfile reads the profile item
func (s *DynamoRecordStore) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(userID)},
			"SK": &types.AttributeValueMemberS{Value: skProfile},
		},
	})
	if err != nil {
		return nil, s.fail("get_user_profile", err)
	}
	if out == nil || len(out.Item) == 0 {
		return nil, errs.ErrUserNotFound
	}

	profile, err := itemToProfile(out.Item)
	if err != nil {
		return nil, s.fail("get_user_profile", err)
	}
	return profile, nil
}

// AppendTransaction writes a new purchase item; an existing key is rejected
func (s *DynamoRecordStore) AppendTransaction(ctx context.Context, record *entity.TransactionRecord) error {
	if record == nil || record.TransactionID == "" {
		return errs.ErrInvalidRequest
	}

	_, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                transactionItem(record),
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		return s.fail("append_transaction", err)
	}
	return nil
}

// ListTransactionsByUser queries the user's TXN# items in sort key order
func (s *DynamoRecordStore) ListTransactionsByUser(ctx context.Context, userID string) ([]*entity.TransactionRecord, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: userPK(userID)},
			":prefix": &types.AttributeValueMemberS{Value: skPrefixTxn},
		},
		ScanIndexForward: aws.Bool(true),
	}

	var records []*entity.TransactionRecord
	for {
		out, err := s.api.Query(ctx, in)
		if err != nil {
			return nil, s.fail("list_transactions_by_user", err)
		}
		for _, item := range out.Items {
			record, err := itemToTransaction(item)
			if err != nil {
				return nil, s.fail("list_transactions_by_user", err)
			}
			records = append(records, record)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	if len(records) == 0 {
		return nil, errs.ErrUserNotFound
	}
	return records, nil
}

// ListAllTransactions scans every TXN item and orders the result by time
func (s *DynamoRecordStore) ListAllTransactions(ctx context.Context) ([]*entity.TransactionRecord, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(s.tableName),
		FilterExpression: aws.String("entityType = :type"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type": &types.AttributeValueMemberS{Value: entityTypeTxn},
		},
	}

	records := make([]*entity.TransactionRecord, 0)
	for {
		out, err := s.api.Scan(ctx, in)
		if err != nil {
			return nil, s.fail("list_all_transactions", err)
		}
		for _, item := range out.Items {
			record, err := itemToTransaction(item)
			if err != nil {
				return nil, s.fail("list_all_transactions", err)
			}
			records = append(records, record)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sortByTimestamp(records)
	return records, nil
}

// TransactionExists counts matches on the transaction ID index
func (s *DynamoRecordStore) TransactionExists(ctx context.Context, transactionID string) (bool, error) {
	out, err := s.api.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(s.transactionIndex),
		KeyConditionExpression: aws.String("transactionId = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: transactionID},
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, s.fail("transaction_exists", err)
	}
	return out.Count > 0, nil
}

func profileItem(p *entity.UserProfile) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":          &types.AttributeValueMemberS{Value: userPK(p.UserID)},
		"SK":          &types.AttributeValueMemberS{Value: skProfile},
		"entityType":  &types.AttributeValueMemberS{Value: entityTypeUser},
		"userId":      &types.AttributeValueMemberS{Value: p.UserID},
		"displayName": &types.AttributeValueMemberS{Value: p.DisplayName},
		"email":       &types.AttributeValueMemberS{Value: p.Email},
		"lastUpdated": &types.AttributeValueMemberS{Value: p.LastUpdated.UTC().Format(time.RFC3339Nano)},
	}
}

func transactionItem(r *entity.TransactionRecord) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":                       &types.AttributeValueMemberS{Value: userPK(r.UserID)},
		"SK":                       &types.AttributeValueMemberS{Value: transactionSK(r.Timestamp, r.TransactionID)},
		"entityType":               &types.AttributeValueMemberS{Value: entityTypeTxn},
		attrTransaction:            &types.AttributeValueMemberS{Value: r.TransactionID},
		"userId":                   &types.AttributeValueMemberS{Value: r.UserID},
		"displayName":              &types.AttributeValueMemberS{Value: r.DisplayName},
		"email":                    &types.AttributeValueMemberS{Value: r.Email},
		"goldWeightGrams":          &types.AttributeValueMemberN{Value: r.GoldWeightGrams.String()},
		"amountPaidBase":           &types.AttributeValueMemberN{Value: r.AmountPaidBase.String()},
		"amountPaidLocal":          &types.AttributeValueMemberN{Value: r.AmountPaidLocal.String()},
		"taxAmount":                &types.AttributeValueMemberN{Value: r.TaxAmount.String()},
		"totalWithTax":             &types.AttributeValueMemberN{Value: r.TotalWithTax.String()},
		"unitPriceLocalAtPurchase": &types.AttributeValueMemberN{Value: r.UnitPriceLocalAtPurchase.String()},
		"taxRate":                  &types.AttributeValueMemberN{Value: r.TaxRate.String()},
		"currency":                 &types.AttributeValueMemberS{Value: r.Currency},
		"status":                   &types.AttributeValueMemberS{Value: string(r.Status)},
		"timestamp":                &types.AttributeValueMemberS{Value: r.Timestamp.UTC().Format(time.RFC3339Nano)},
	}
}

func itemToProfile(item map[string]types.AttributeValue) (*entity.UserProfile, error) {
	lastUpdated, err := timeAttr(item, "lastUpdated")
	if err != nil {
		return nil, err
	}
	return &entity.UserProfile{
		UserID:      stringAttr(item, "userId"),
		DisplayName: stringAttr(item, "displayName"),
		Email:       stringAttr(item, "email"),
		LastUpdated: lastUpdated,
	}, nil
}

func itemToTransaction(item map[string]types.AttributeValue) (*entity.TransactionRecord, error) {
	ts, err := timeAttr(item, "timestamp")
	if err != nil {
		return nil, err
	}

	record := &entity.TransactionRecord{
		UserID:        stringAttr(item, "userId"),
		DisplayName:   stringAttr(item, "displayName"),
		Email:         stringAttr(item, "email"),
		TransactionID: stringAttr(item, attrTransaction),
		Currency:      stringAttr(item, "currency"),
		Status:        entity.TransactionStatus(stringAttr(item, "status")),
		Timestamp:     ts,
	}

	numbers := []struct {
		name   string
		target *decimal.Decimal
	}{
		{"goldWeightGrams", &record.GoldWeightGrams},
		{"amountPaidBase", &record.AmountPaidBase},
		{"amountPaidLocal", &record.AmountPaidLocal},
		{"taxAmount", &record.TaxAmount},
		{"totalWithTax", &record.TotalWithTax},
		{"unitPriceLocalAtPurchase", &record.UnitPriceLocalAtPurchase},
		{"taxRate", &record.TaxRate},
	}
	for _, n := range numbers {
		value, err := decimalAttr(item, n.name)
		if err != nil {
			return nil, err
		}
		*n.target = value
	}

	return record, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func decimalAttr(item map[string]types.AttributeValue, name string) (decimal.Decimal, error) {
	v, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return decimal.Zero, fmt.Errorf("attribute %s is not a number", name)
	}
	d, err := decimal.NewFromString(v.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("attribute %s: %w", name, err)
	}
	return d, nil
}

func timeAttr(item map[string]types.AttributeValue, name string) (time.Time, error) {
	raw := stringAttr(item, name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("attribute %s is missing", name)
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("attribute %s: %w", name, err)
	}
	return ts, nil
}

var _ persistence.RecordStore = (*DynamoRecordStore)(nil)
