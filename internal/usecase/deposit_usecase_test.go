package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"eventos_api/internal/domain/entities"
	mock_interfaces "eventos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDepositAmount(t *testing.T) {
	if got := DepositAmount(4_500_000, 30); got != 1_350_000 {
		t.Fatalf("expected 1350000, got %d", got)
	}
	if got := DepositAmount(999, 30); got != 299 {
		t.Fatalf("expected rounding down to 299, got %d", got)
	}
}

func TestDepositUseCase_CreateDeposit(t *testing.T) {
	owner := Actor{UserID: "u1"}
	closed := entities.Quote{ID: "EV-1", OwnerID: "u1", Email: "ana@example.com", Status: entities.QuoteStatusClosed, Total: 4_500_000}
	payload := json.RawMessage(`{"payment_method_id":"pse","token":"tok"}`)

	t.Run("invalid payload outside sandbox", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil, nil, DepositSettings{Percent: 30}, nil)
		if _, err := uc.CreateDeposit(context.Background(), owner, "EV-1", json.RawMessage(`{`)); !errors.Is(err, ErrInvalidDepositPayload) {
			t.Fatalf("expected ErrInvalidDepositPayload, got %v", err)
		}
	})

	t.Run("quote not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(nil, NewQuoteUseCase(quotes, nil, nil, "", nil), gateway, DepositSettings{Percent: 30}, nil)

		pending := closed
		pending.Status = entities.QuoteStatusPending
		quotes.EXPECT().GetByID(gomock.Any(), "EV-1").Return(pending, nil)

		if _, err := uc.CreateDeposit(context.Background(), owner, "EV-1", payload); !errors.Is(err, ErrQuoteNotPayable) {
			t.Fatalf("expected ErrQuoteNotPayable, got %v", err)
		}
	})

	t.Run("charges the deposit share of the stored total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIDepositRepository(ctrl)
		uc := NewDepositUseCase(repo, NewQuoteUseCase(quotes, nil, nil, "", nil), gateway, DepositSettings{Percent: 30}, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "EV-1").Return(closed, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(body, &req); err != nil {
					t.Fatalf("payload: %v", err)
				}
				if req["transaction_amount"] != float64(1_350_000) || req["external_reference"] != "EV-1" {
					t.Fatalf("unexpected payload: %v", req)
				}
				payer, _ := req["payer"].(map[string]any)
				if payer["email"] != "ana@example.com" {
					t.Fatalf("expected payer email from quote, got %v", payer)
				}
				return "98765", "approved", json.RawMessage(`{"id":98765,"status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Deposit) (entities.Deposit, error) { return d, nil },
		)

		got, err := uc.CreateDeposit(context.Background(), owner, "EV-1", payload)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "98765" || got.Amount != 1_350_000 || got.Status != entities.DepositStatusApproved {
			t.Fatalf("unexpected deposit: %+v", got)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(nil, NewQuoteUseCase(quotes, nil, nil, "", nil), gateway, DepositSettings{Percent: 30}, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "EV-1").Return(closed, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"message":"unauthorized","error":"unauthorized","status":401}`))

		if _, err := uc.CreateDeposit(context.Background(), owner, "EV-1", payload); !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("sandbox accepts an empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIDepositRepository(ctrl)
		uc := NewDepositUseCase(repo, NewQuoteUseCase(quotes, nil, nil, "", nil), gateway, DepositSettings{Percent: 30, Sandbox: true}, nil)

		negotiating := closed
		negotiating.Status = entities.QuoteStatusNegotiating
		quotes.EXPECT().GetByID(gomock.Any(), "EV-1").Return(negotiating, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "in_process", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Deposit) (entities.Deposit, error) { return d, nil },
		)

		got, err := uc.CreateDeposit(context.Background(), owner, "EV-1", nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.DepositStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
	})
}

func TestDepositUseCase_ListByQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	repo := mock_interfaces.NewMockIDepositRepository(ctrl)
	uc := NewDepositUseCase(repo, NewQuoteUseCase(quotes, nil, nil, "", nil), nil, DepositSettings{Percent: 30}, nil)

	quotes.EXPECT().GetByID(gomock.Any(), "EV-1").Return(entities.Quote{ID: "EV-1", OwnerID: "u1"}, nil)
	repo.EXPECT().ListByQuoteID(gomock.Any(), "EV-1").Return([]entities.Deposit{{ID: "1"}}, nil)

	got, err := uc.ListByQuote(context.Background(), Actor{UserID: "u1"}, "EV-1")
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %+v %v", got, err)
	}
}
