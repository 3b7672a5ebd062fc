package repository

import (
	"context"
	"strings"
	"time"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const usersIDIndex = "id-index"

type userItem struct {
	Email        string `dynamodbav:"email"`
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Phone        string `dynamodbav:"phone"`
	Role         string `dynamodbav:"role"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists UserProfile entities in DynamoDB.
//
// Table requirements:
//   - PK: email (string, lower-cased)
//   - GSI: id-index (PK: id)
type UserDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb dynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error) {
	now := r.now().UTC()
	u.Email = normalizeEmail(u.Email)
	u.CreatedAt = now
	u.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.UserProfile{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		return entities.UserProfile{}, conflictOr(err)
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: normalizeEmail(email)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Items) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) UpdateProfile(ctx context.Context, email, name, phone string) (entities.UserProfile, error) {
	return r.update(ctx, email, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #phone = :phone, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: name},
			":phone":      &types.AttributeValueMemberS{Value: phone},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":       "name",
			"#phone":      "phone",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *UserDynamoRepository) UpdateRole(ctx context.Context, email string, role entities.Role) error {
	_, err := r.update(ctx, email, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #role = :role, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":role":       &types.AttributeValueMemberS{Value: string(role)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#role":       "role",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *UserDynamoRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	_, err := r.update(ctx, email, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #password_hash = :password_hash, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":password_hash": &types.AttributeValueMemberS{Value: hash},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#password_hash": "password_hash",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
	return err
}

// update applies an update expression to an existing user and returns the new
// state, or a zero UserProfile when the e-mail is not registered.
func (r *UserDynamoRepository) update(
	ctx context.Context,
	email string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.UserProfile, error) {
	now := formatTime(r.now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: normalizeEmail(email)},
		},
		ConditionExpression:       aws.String("attribute_exists(#email)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#email": "email"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.UserProfile{}, nil
		}
		return entities.UserProfile{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.UserProfile{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.UserProfile) userItem {
	return userItem{
		Email:        u.Email,
		ID:           u.ID,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.UserProfile {
	return entities.UserProfile{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		Phone:        it.Phone,
		Role:         entities.Role(it.Role),
		PasswordHash: it.PasswordHash,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
