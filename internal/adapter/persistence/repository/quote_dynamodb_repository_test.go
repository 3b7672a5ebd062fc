package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"eventos_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var quoteIDPattern = regexp.MustCompile(`^EV-\d{6}-[0-9A-F]{6}$`)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func sampleQuote() entities.Quote {
	items := []entities.QuoteItem{
		entities.NewQuoteItem("Food", "Dinner", 10, 2000),
		entities.NewQuoteItem("Entertainment", "DJ", 1, 5000),
	}
	return entities.Quote{
		OwnerID:      "user-1",
		Kind:         entities.QuoteKindModular,
		CustomerName: "Ana",
		Email:        "ana@example.com",
		Phone:        "3001234567",
		Items:        items,
		Total:        entities.SumItems(items),
		Origin:       entities.OriginWeb,
		EventType:    "Wedding",
		EventDate:    "2026-12-01",
	}
}

func TestNewQuoteID(t *testing.T) {
	id := NewQuoteID(fixedNow())
	if !quoteIDPattern.MatchString(id) {
		t.Fatalf("unexpected id format: %s", id)
	}
	if id[3:9] != "260314" {
		t.Fatalf("expected date segment 260314, got %s", id[3:9])
	}
}

func TestQuoteDynamoRepository_Create(t *testing.T) {
	t.Run("writes quote and tracking in one transaction", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewQuoteDynamoRepository(fake, "quotes", "quote_tracking")
		repo.now = fixedNow

		got, err := repo.Create(context.Background(), sampleQuote())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !quoteIDPattern.MatchString(got.ID) {
			t.Fatalf("unexpected id: %s", got.ID)
		}
		if got.Status != entities.QuoteStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
		if !got.CreatedAt.Equal(fixedNow()) || !got.UpdatedAt.Equal(fixedNow()) {
			t.Fatalf("timestamps not set: %v %v", got.CreatedAt, got.UpdatedAt)
		}
		if len(fake.transacts) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(fake.transacts))
		}
		items := fake.transacts[0].TransactItems
		if len(items) != 2 {
			t.Fatalf("expected 2 transact items, got %d", len(items))
		}
		if aws.ToString(items[0].Put.TableName) != "quotes" || aws.ToString(items[1].Put.TableName) != "quote_tracking" {
			t.Fatalf("unexpected tables: %s %s", aws.ToString(items[0].Put.TableName), aws.ToString(items[1].Put.TableName))
		}

		var tr trackingItem
		if err := attributevalue.UnmarshalMap(items[1].Put.Item, &tr); err != nil {
			t.Fatalf("unmarshal tracking: %v", err)
		}
		if tr.QuoteID != got.ID || tr.Status != "pending" || tr.ContactAttempts != 0 {
			t.Fatalf("unexpected tracking record: %+v", tr)
		}
	})

	t.Run("retries with a new id when the condition fails", func(t *testing.T) {
		canceled := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}},
		}
		fake := &fakeDynamo{transactErr: []error{canceled}}
		repo := NewQuoteDynamoRepository(fake, "quotes", "quote_tracking")

		if _, err := repo.Create(context.Background(), sampleQuote()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(fake.transacts) != 2 {
			t.Fatalf("expected 2 attempts, got %d", len(fake.transacts))
		}
	})

	t.Run("returns other errors without retrying", func(t *testing.T) {
		boom := errors.New("boom")
		fake := &fakeDynamo{transactErr: []error{boom}}
		repo := NewQuoteDynamoRepository(fake, "quotes", "quote_tracking")

		if _, err := repo.Create(context.Background(), sampleQuote()); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if len(fake.transacts) != 1 {
			t.Fatalf("expected 1 attempt, got %d", len(fake.transacts))
		}
	})
}

func TestQuoteDynamoRepository_GetByID(t *testing.T) {
	t.Run("not found returns zero quote", func(t *testing.T) {
		repo := NewQuoteDynamoRepository(&fakeDynamo{}, "quotes", "quote_tracking")
		got, err := repo.GetByID(context.Background(), "EV-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero quote, got %+v", got)
		}
	})

	t.Run("found", func(t *testing.T) {
		q := sampleQuote()
		q.ID = "EV-260314-ABCDEF"
		q.Status = entities.QuoteStatusSent
		q.CreatedAt = fixedNow()
		av, err := attributevalue.MarshalMap(toQuoteItem(q))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		fake := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: av}}
		repo := NewQuoteDynamoRepository(fake, "quotes", "quote_tracking")

		got, err := repo.GetByID(context.Background(), q.ID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != q.ID || got.Status != entities.QuoteStatusSent || got.Total != 25000 {
			t.Fatalf("unexpected quote: %+v", got)
		}
		if len(got.Items) != 2 || got.Items[0].Subtotal != 20000 {
			t.Fatalf("unexpected items: %+v", got.Items)
		}
		if !got.CreatedAt.Equal(fixedNow()) {
			t.Fatalf("unexpected created_at: %v", got.CreatedAt)
		}
	})
}

func TestQuoteDynamoRepository_ListByOwnerAndOrigin(t *testing.T) {
	q := sampleQuote()
	q.ID = "EV-260314-000001"
	av, _ := attributevalue.MarshalMap(toQuoteItem(q))
	fake := &fakeDynamo{queryOut: &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}}
	repo := NewQuoteDynamoRepository(fake, "quotes", "quote_tracking")

	got, err := repo.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != q.ID {
		t.Fatalf("unexpected list: %+v", got)
	}
	if aws.ToString(fake.queries[0].IndexName) != quotesOwnerIndex {
		t.Fatalf("expected owner index, got %s", aws.ToString(fake.queries[0].IndexName))
	}

	if _, err := repo.ListByOrigin(context.Background(), "affiliate:AF-ABC123"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if aws.ToString(fake.queries[1].IndexName) != quotesOriginIndex {
		t.Fatalf("expected origin index, got %s", aws.ToString(fake.queries[1].IndexName))
	}
}

func TestQuoteDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("missing quote returns zero", func(t *testing.T) {
		canceled := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}, {Code: aws.String("None")}},
		}
		fake := &fakeDynamo{transactErr: []error{canceled}}
		repo := NewQuoteDynamoRepository(fake, "quotes", "quote_tracking")

		got, err := repo.UpdateStatus(context.Background(), "EV-404", entities.QuoteStatusClosed)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero quote, got %+v", got)
		}
	})

	t.Run("updates quote and tracking", func(t *testing.T) {
		q := sampleQuote()
		q.ID = "EV-260314-000002"
		q.Status = entities.QuoteStatusClosed
		av, _ := attributevalue.MarshalMap(toQuoteItem(q))
		fake := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: av}}
		repo := NewQuoteDynamoRepository(fake, "quotes", "quote_tracking")

		got, err := repo.UpdateStatus(context.Background(), q.ID, entities.QuoteStatusClosed)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.QuoteStatusClosed {
			t.Fatalf("expected closed, got %s", got.Status)
		}
		items := fake.transacts[0].TransactItems
		if len(items) != 2 || aws.ToString(items[1].Update.TableName) != "quote_tracking" {
			t.Fatalf("expected tracking update, got %+v", items)
		}
	})
}
