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
	affiliatesCodeIndex = "code-index"
	affiliateCodePrefix = "code#"
)

type affiliateItem struct {
	UserID            string `dynamodbav:"user_id"`
	Code              string `dynamodbav:"code"`
	FullName          string `dynamodbav:"full_name"`
	Email             string `dynamodbav:"email"`
	Phone             string `dynamodbav:"phone"`
	DocumentID        string `dynamodbav:"document_id"`
	City              string `dynamodbav:"city"`
	PayoutMethod      string `dynamodbav:"payout_method"`
	PayoutAccount     string `dynamodbav:"payout_account"`
	CommissionPercent int    `dynamodbav:"commission_percent"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// AffiliateDynamoRepository persists Affiliate entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//   - GSI: code-index (PK: code)
//
// Each affiliate also owns a "code#<code>" item that reserves its code.
type AffiliateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IAffiliateRepository = (*AffiliateDynamoRepository)(nil)

func NewAffiliateDynamoRepository(ddb dynamoAPI, tableName string) *AffiliateDynamoRepository {
	return &AffiliateDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

// Create registers an affiliate once per user and claims its code in the same
// transaction. A taken user id or code is reported as interfaces.ErrConflict.
func (r *AffiliateDynamoRepository) Create(ctx context.Context, a entities.Affiliate) (entities.Affiliate, error) {
	a.CreatedAt = r.now().UTC()

	av, err := attributevalue.MarshalMap(toAffiliateItem(a))
	if err != nil {
		return entities.Affiliate{}, err
	}
	names := map[string]string{"#user_id": "user_id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#user_id)"),
				ExpressionAttributeNames: names,
			}},
			{Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item: map[string]types.AttributeValue{
					"user_id":    &types.AttributeValueMemberS{Value: affiliateCodeKey(a.Code)},
					"owner_id":   &types.AttributeValueMemberS{Value: a.UserID},
					"created_at": &types.AttributeValueMemberS{Value: formatTime(a.CreatedAt)},
				},
				ConditionExpression:      aws.String("attribute_not_exists(#user_id)"),
				ExpressionAttributeNames: names,
			}},
		},
	})
	if err != nil {
		return entities.Affiliate{}, conflictOr(err)
	}
	return a, nil
}

// affiliateCodeKey is the partition key of the item reserving an affiliate code.
// It carries no code attribute, so it stays out of the code index.
func affiliateCodeKey(code string) string {
	return affiliateCodePrefix + code
}

func (r *AffiliateDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Affiliate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Affiliate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Affiliate{}, nil
	}

	var it affiliateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Affiliate{}, err
	}
	return fromAffiliateItem(it), nil
}

func (r *AffiliateDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Affiliate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(affiliatesCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Affiliate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Affiliate{}, nil
	}

	var it affiliateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Affiliate{}, err
	}
	return fromAffiliateItem(it), nil
}

func toAffiliateItem(a entities.Affiliate) affiliateItem {
	return affiliateItem{
		UserID:            a.UserID,
		Code:              a.Code,
		FullName:          a.FullName,
		Email:             a.Email,
		Phone:             a.Phone,
		DocumentID:        a.DocumentID,
		City:              a.City,
		PayoutMethod:      string(a.PayoutMethod),
		PayoutAccount:     a.PayoutAccount,
		CommissionPercent: a.CommissionPercent,
		CreatedAt:         formatTime(a.CreatedAt),
	}
}

func fromAffiliateItem(it affiliateItem) entities.Affiliate {
	return entities.Affiliate{
		UserID:            it.UserID,
		Code:              it.Code,
		FullName:          it.FullName,
		Email:             it.Email,
		Phone:             it.Phone,
		DocumentID:        it.DocumentID,
		City:              it.City,
		PayoutMethod:      entities.PayoutMethod(it.PayoutMethod),
		PayoutAccount:     it.PayoutAccount,
		CommissionPercent: it.CommissionPercent,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
