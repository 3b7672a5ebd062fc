package repository

import (
	"context"
	"errors"
	"testing"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestUserDynamoRepository_Create(t *testing.T) {
	t.Run("lower-cases the e-mail key", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewUserDynamoRepository(fake, "users")
		repo.now = fixedNow

		got, err := repo.Create(context.Background(), entities.UserProfile{ID: "u1", Email: " Ana@Example.COM ", Role: entities.RoleCustomer})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Email != "ana@example.com" {
			t.Fatalf("expected normalized email, got %q", got.Email)
		}
		var it userItem
		if err := attributevalue.UnmarshalMap(fake.puts[0].Item, &it); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if it.Email != "ana@example.com" || it.CreatedAt == "" {
			t.Fatalf("unexpected stored item: %+v", it)
		}
	})

	t.Run("duplicate e-mail is a conflict", func(t *testing.T) {
		fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
		repo := NewUserDynamoRepository(fake, "users")

		_, err := repo.Create(context.Background(), entities.UserProfile{ID: "u1", Email: "ana@example.com"})
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestUserDynamoRepository_GetByID(t *testing.T) {
	av, _ := attributevalue.MarshalMap(userItem{ID: "u1", Email: "ana@example.com", Name: "Ana", Role: "customer"})
	fake := &fakeDynamo{queryOut: &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}}
	repo := NewUserDynamoRepository(fake, "users")

	got, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Email != "ana@example.com" || got.Role != entities.RoleCustomer {
		t.Fatalf("unexpected user: %+v", got)
	}
	if aws.ToString(fake.queries[0].IndexName) != usersIDIndex {
		t.Fatalf("expected id index, got %s", aws.ToString(fake.queries[0].IndexName))
	}
}

func TestUserDynamoRepository_UpdateProfile(t *testing.T) {
	t.Run("unknown user returns zero", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewUserDynamoRepository(fake, "users")

		got, err := repo.UpdateProfile(context.Background(), "nobody@example.com", "N", "1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero user, got %+v", got)
		}
	})

	t.Run("returns updated attributes", func(t *testing.T) {
		av, _ := attributevalue.MarshalMap(userItem{ID: "u1", Email: "ana@example.com", Name: "Ana Maria", Phone: "300"})
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: av}}
		repo := NewUserDynamoRepository(fake, "users")

		got, err := repo.UpdateProfile(context.Background(), "ANA@example.com", "Ana Maria", "300")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Name != "Ana Maria" {
			t.Fatalf("unexpected user: %+v", got)
		}
		key := fake.updates[0].Key["email"].(*types.AttributeValueMemberS).Value
		if key != "ana@example.com" {
			t.Fatalf("expected normalized key, got %q", key)
		}
		if fake.updates[0].ExpressionAttributeNames["#email"] != "email" {
			t.Fatalf("condition name missing: %+v", fake.updates[0].ExpressionAttributeNames)
		}
	})
}
