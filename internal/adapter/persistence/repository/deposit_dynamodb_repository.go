package repository

import (
	"context"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const depositsQuoteIDIndex = "quote_id-index"

type depositItem struct {
	ID                 string `dynamodbav:"id"`
	QuoteID            string `dynamodbav:"quote_id"`
	Amount             int64  `dynamodbav:"amount"`
	Date               string `dynamodbav:"date"`
	Status             string `dynamodbav:"status"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// DepositDynamoRepository persists Deposit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type DepositDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb dynamoAPI, tableName string) *DepositDynamoRepository {
	return &DepositDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	av, err := attributevalue.MarshalMap(toDepositItem(d))
	if err != nil {
		return entities.Deposit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Deposit{}, conflictOr(err)
	}
	return d, nil
}

func (r *DepositDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Deposit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositItem(it))
	}
	return items, nil
}

func toDepositItem(d entities.Deposit) depositItem {
	return depositItem{
		ID:                 d.ID,
		QuoteID:            d.QuoteID,
		Amount:             d.Amount,
		Date:               formatTime(d.Date),
		Status:             string(d.Status),
		ProviderPaymentID:  d.ProviderPaymentID,
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
	}
}

func fromDepositItem(it depositItem) entities.Deposit {
	d := entities.Deposit{
		ID:                it.ID,
		QuoteID:           it.QuoteID,
		Amount:            it.Amount,
		Date:              parseTime(it.Date),
		Status:            entities.DepositStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.ProviderPayloadRaw != "" {
		d.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return d
}
