package repository

import (
	"context"
	"fmt"
	"time"

	"skip_selector/internal/domain/entities"
	"skip_selector/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultSessionsTableName = "skip_sessions"

type offeringItem struct {
	ID               int64  `dynamodbav:"id"`
	Size             int    `dynamodbav:"size"`
	HirePeriodDays   int    `dynamodbav:"hire_period_days"`
	TransportCost    string `dynamodbav:"transport_cost,omitempty"`
	PerTonneCost     string `dynamodbav:"per_tonne_cost,omitempty"`
	PriceBeforeVAT   string `dynamodbav:"price_before_vat"`
	VAT              string `dynamodbav:"vat"`
	Postcode         string `dynamodbav:"postcode"`
	Area             string `dynamodbav:"area"`
	Forbidden        bool   `dynamodbav:"forbidden"`
	AllowedOnRoad    bool   `dynamodbav:"allowed_on_road"`
	AllowsHeavyWaste bool   `dynamodbav:"allows_heavy_waste"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

type sessionItem struct {
	ID                 string         `dynamodbav:"id"`
	Postcode           string         `dynamodbav:"postcode"`
	Area               string         `dynamodbav:"area"`
	Status             string         `dynamodbav:"status"`
	FailureReason      string         `dynamodbav:"failure_reason,omitempty"`
	Offerings          []offeringItem `dynamodbav:"offerings"`
	TaxMode            string         `dynamodbav:"tax_mode"`
	MinPrice           string         `dynamodbav:"min_price,omitempty"`
	MaxPrice           string         `dynamodbav:"max_price,omitempty"`
	SelectedOfferingID *int64         `dynamodbav:"selected_offering_id,omitempty"`
	CreatedAt          string         `dynamodbav:"created_at"`
	UpdatedAt          string         `dynamodbav:"updated_at"`
	ExpiresAt          int64          `dynamodbav:"expires_at"`
}

// SessionDynamoRepository persists booking sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so reads also check expires_at.

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client, tableName string, ttl time.Duration) *SessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.BookingSession) error {
	it := toSessionItem(s, r.now().Add(r.ttl))
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookingSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookingSession{}, err
	}
	if it.ExpiresAt <= r.now().Unix() {
		return entities.BookingSession{}, nil
	}
	return fromSessionItem(it)
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSessionItem(s entities.BookingSession, expiresAt time.Time) sessionItem {
	offerings := make([]offeringItem, 0, len(s.Offerings))
	for _, o := range s.Offerings {
		offerings = append(offerings, offeringItem{
			ID:               o.ID,
			Size:             o.Size,
			HirePeriodDays:   o.HirePeriodDays,
			TransportCost:    decimalToString(o.TransportCost),
			PerTonneCost:     decimalToString(o.PerTonneCost),
			PriceBeforeVAT:   o.PriceBeforeVAT.String(),
			VAT:              o.VAT.String(),
			Postcode:         o.Postcode,
			Area:             o.Area,
			Forbidden:        o.Forbidden,
			AllowedOnRoad:    o.AllowedOnRoad,
			AllowsHeavyWaste: o.AllowsHeavyWaste,
			CreatedAt:        formatTime(o.CreatedAt),
			UpdatedAt:        formatTime(o.UpdatedAt),
		})
	}
	return sessionItem{
		ID:                 s.ID,
		Postcode:           s.Location.Postcode,
		Area:               s.Location.Area,
		Status:             string(s.Status),
		FailureReason:      s.FailureReason,
		Offerings:          offerings,
		TaxMode:            string(s.TaxMode),
		MinPrice:           decimalToString(s.AppliedMinPrice),
		MaxPrice:           decimalToString(s.AppliedMaxPrice),
		SelectedOfferingID: s.SelectedOfferingID,
		CreatedAt:          formatTime(s.CreatedAt),
		UpdatedAt:          formatTime(s.UpdatedAt),
		ExpiresAt:          expiresAt.Unix(),
	}
}

func fromSessionItem(it sessionItem) (entities.BookingSession, error) {
	offerings := make([]entities.Offering, 0, len(it.Offerings))
	for _, o := range it.Offerings {
		price, err := decimal.NewFromString(o.PriceBeforeVAT)
		if err != nil {
			return entities.BookingSession{}, fmt.Errorf("decode offering %d price: %w", o.ID, err)
		}
		vat, err := decimal.NewFromString(o.VAT)
		if err != nil {
			return entities.BookingSession{}, fmt.Errorf("decode offering %d vat: %w", o.ID, err)
		}
		offerings = append(offerings, entities.Offering{
			ID:               o.ID,
			Size:             o.Size,
			HirePeriodDays:   o.HirePeriodDays,
			TransportCost:    stringToDecimal(o.TransportCost),
			PerTonneCost:     stringToDecimal(o.PerTonneCost),
			PriceBeforeVAT:   price,
			VAT:              vat,
			Postcode:         o.Postcode,
			Area:             o.Area,
			Forbidden:        o.Forbidden,
			AllowedOnRoad:    o.AllowedOnRoad,
			AllowsHeavyWaste: o.AllowsHeavyWaste,
			CreatedAt:        parseTime(o.CreatedAt),
			UpdatedAt:        parseTime(o.UpdatedAt),
		})
	}

	taxMode := entities.TaxMode(it.TaxMode)
	if taxMode != entities.TaxModeExcludeVAT {
		taxMode = entities.TaxModeIncludeVAT
	}
	return entities.BookingSession{
		ID:                 it.ID,
		Location:           entities.Location{Postcode: it.Postcode, Area: it.Area},
		Status:             entities.FetchStatus(it.Status),
		FailureReason:      it.FailureReason,
		Offerings:          offerings,
		TaxMode:            taxMode,
		AppliedMinPrice:    stringToDecimal(it.MinPrice),
		AppliedMaxPrice:    stringToDecimal(it.MaxPrice),
		SelectedOfferingID: it.SelectedOfferingID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}, nil
}
