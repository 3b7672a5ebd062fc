package repository

import (
	"context"
	"time"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	quotesOwnerIndex  = "owner_id-index"
	quotesOriginIndex = "origin-index"
	maxIDAttempts     = 3
)

type quoteLineItem struct {
	Category  string `dynamodbav:"category"`
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice int64  `dynamodbav:"unit_price"`
	Subtotal  int64  `dynamodbav:"subtotal"`
}

type quoteItem struct {
	ID            string          `dynamodbav:"id"`
	OwnerID       string          `dynamodbav:"owner_id"`
	Kind          string          `dynamodbav:"kind"`
	CustomerName  string          `dynamodbav:"customer_name"`
	Email         string          `dynamodbav:"email"`
	Phone         string          `dynamodbav:"phone"`
	Items         []quoteLineItem `dynamodbav:"items"`
	Total         int64           `dynamodbav:"total"`
	Status        string          `dynamodbav:"status"`
	Origin        string          `dynamodbav:"origin"`
	EventType     string          `dynamodbav:"event_type"`
	EventDate     string          `dynamodbav:"event_date"`
	StartTime     string          `dynamodbav:"start_time,omitempty"`
	EndTime       string          `dynamodbav:"end_time,omitempty"`
	Theme         string          `dynamodbav:"theme,omitempty"`
	VenueAddress  string          `dynamodbav:"venue_address,omitempty"`
	StreetAddress string          `dynamodbav:"street_address,omitempty"`
	Neighborhood  string          `dynamodbav:"neighborhood,omitempty"`
	Notes         string          `dynamodbav:"notes,omitempty"`
	PeopleCount   int             `dynamodbav:"people_count,omitempty"`
	IncludeVenue  *bool           `dynamodbav:"include_venue,omitempty"`
	CreatedAt     string          `dynamodbav:"created_at"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
}

type trackingItem struct {
	QuoteID         string `dynamodbav:"quote_id"`
	Status          string `dynamodbav:"status"`
	ContactAttempts int    `dynamodbav:"contact_attempts"`
	LastContactAt   string `dynamodbav:"last_contact_at,omitempty"`
	Notes           string `dynamodbav:"notes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists quotes and their tracking records in DynamoDB.
//
// Table requirements:
//   - quotes: PK id (string); GSIs owner_id-index (PK owner_id), origin-index (PK origin)
//   - tracking: PK quote_id (string)
//
// The quote and its tracking record are written in a single transaction so a
// quote never exists without its follow-up record.
type QuoteDynamoRepository struct {
	ddb           dynamoAPI
	tableName     string
	trackingTable string
	now           func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb dynamoAPI, tableName, trackingTable string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:           ddb,
		tableName:     tableName,
		trackingTable: trackingTable,
		now:           time.Now,
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	now := r.now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now
	if q.Status == "" {
		q.Status = entities.QuoteStatusPending
	}

	// Short random suffixes can collide; retry with a fresh id when the condition trips.
	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		q.ID = NewQuoteID(now)
		err = r.createOnce(ctx, q)
		if err == nil {
			return q, nil
		}
		if !conditionFailed(err) {
			return entities.Quote{}, err
		}
	}
	return entities.Quote{}, err
}

func (r *QuoteDynamoRepository) createOnce(ctx context.Context, q entities.Quote) error {
	input, err := r.buildCreateInput(q)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, input)
	return err
}

func (r *QuoteDynamoRepository) buildCreateInput(q entities.Quote) (*dynamodb.TransactWriteItemsInput, error) {
	quoteAV, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return nil, err
	}
	trackingAV, err := attributevalue.MarshalMap(trackingItem{
		QuoteID:   q.ID,
		Status:    string(q.Status),
		CreatedAt: formatTime(q.CreatedAt),
	})
	if err != nil {
		return nil, err
	}

	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     quoteAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.trackingTable),
				Item:                     trackingAV,
				ConditionExpression:      aws.String("attribute_not_exists(#qid)"),
				ExpressionAttributeNames: map[string]string{"#qid": "quote_id"},
			}},
		},
	}, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesOwnerIndex, "owner_id", ownerID)
}

func (r *QuoteDynamoRepository) ListByOrigin(ctx context.Context, origin string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesOriginIndex, "origin", origin)
}

func (r *QuoteDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Quote, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	quotes := make([]entities.Quote, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
	}
	return quotes, nil
}

// UpdateStatus changes the quote status and mirrors it on the tracking record.
// It returns a zero Quote when the id does not exist.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := formatTime(r.now())
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: id},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
				ExpressionAttributeNames: mergeNames(
					map[string]string{"#status": "status", "#updated_at": "updated_at"},
					map[string]string{"#id": "id"},
				),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status":     &types.AttributeValueMemberS{Value: string(status)},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			}},
			{Update: &types.Update{
				TableName: aws.String(r.trackingTable),
				Key: map[string]types.AttributeValue{
					"quote_id": &types.AttributeValueMemberS{Value: id},
				},
				UpdateExpression:         aws.String("SET #status = :status"),
				ExpressionAttributeNames: map[string]string{"#status": "status"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status": &types.AttributeValueMemberS{Value: string(status)},
				},
			}},
		},
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return r.GetByID(ctx, id)
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, len(q.Items))
	for i, it := range q.Items {
		lines[i] = quoteLineItem{
			Category:  it.Category,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		}
	}
	return quoteItem{
		ID:            q.ID,
		OwnerID:       q.OwnerID,
		Kind:          string(q.Kind),
		CustomerName:  q.CustomerName,
		Email:         q.Email,
		Phone:         q.Phone,
		Items:         lines,
		Total:         q.Total,
		Status:        string(q.Status),
		Origin:        q.Origin,
		EventType:     q.EventType,
		EventDate:     q.EventDate,
		StartTime:     q.StartTime,
		EndTime:       q.EndTime,
		Theme:         q.Theme,
		VenueAddress:  q.VenueAddress,
		StreetAddress: q.StreetAddress,
		Neighborhood:  q.Neighborhood,
		Notes:         q.Notes,
		PeopleCount:   q.PeopleCount,
		IncludeVenue:  q.IncludeVenue,
		CreatedAt:     formatTime(q.CreatedAt),
		UpdatedAt:     formatTime(q.UpdatedAt),
	}
}

// fromQuoteItem rebuilds line items through NewQuoteItem so subtotals are
// always derived, whatever was stored.
func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, len(it.Items))
	for i, l := range it.Items {
		items[i] = entities.NewQuoteItem(l.Category, l.Name, l.Quantity, l.UnitPrice)
	}
	return entities.Quote{
		ID:            it.ID,
		OwnerID:       it.OwnerID,
		Kind:          entities.QuoteKind(it.Kind),
		CustomerName:  it.CustomerName,
		Email:         it.Email,
		Phone:         it.Phone,
		Items:         items,
		Total:         it.Total,
		Status:        entities.QuoteStatus(it.Status),
		Origin:        it.Origin,
		EventType:     it.EventType,
		EventDate:     it.EventDate,
		StartTime:     it.StartTime,
		EndTime:       it.EndTime,
		Theme:         it.Theme,
		VenueAddress:  it.VenueAddress,
		StreetAddress: it.StreetAddress,
		Neighborhood:  it.Neighborhood,
		Notes:         it.Notes,
		PeopleCount:   it.PeopleCount,
		IncludeVenue:  it.IncludeVenue,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
