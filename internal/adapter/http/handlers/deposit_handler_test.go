package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventos_api/internal/adapter/http/dto/response"
	"eventos_api/internal/adapter/http/handlers/mocks"
	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func depositRouter(h *DepositHandler) *gin.Engine {
	r := newRouter(customerClaims)
	r.POST("/v1/quotes/:id/deposits", h.CreateDeposit)
	r.GET("/v1/quotes/:id/deposits", h.ListDeposits)
	return r
}

func TestDepositHandler_CreateDeposit(t *testing.T) {
	t.Run("invalid json reaches use case without payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := depositRouter(NewDepositHandler(uc))

		uc.EXPECT().CreateDeposit(gomock.Any(), gomock.Any(), "EV-1", gomock.Nil()).Return(entities.Deposit{}, usecase.ErrInvalidDepositPayload)

		w := perform(r, http.MethodPost, "/v1/quotes/EV-1/deposits", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := depositRouter(NewDepositHandler(uc))

		uc.EXPECT().CreateDeposit(gomock.Any(), gomock.Any(), "EV-1", gomock.Any()).Return(entities.Deposit{}, usecase.ErrQuoteNotPayable)

		w := perform(r, http.MethodPost, "/v1/quotes/EV-1/deposits", `{"payment_method_id":"pse","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "QUOTE_NOT_PAYABLE" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("gateway errors", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrPaymentGatewayUnauthorized:     http.StatusUnauthorized,
			usecase.ErrPaymentGatewayCustomerNotFound: http.StatusBadRequest,
			usecase.ErrPaymentGatewayInvalidUsers:     http.StatusBadRequest,
			usecase.ErrQuoteForbidden:                 http.StatusForbidden,
		}
		for err, status := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIDepositUseCase(ctrl)
			r := depositRouter(NewDepositHandler(uc))
			uc.EXPECT().CreateDeposit(gomock.Any(), gomock.Any(), "EV-1", gomock.Any()).Return(entities.Deposit{}, err)

			w := perform(r, http.MethodPost, "/v1/quotes/EV-1/deposits", `{}`)
			if w.Code != status {
				t.Fatalf("%v: expected %d, got %d", err, status, w.Code)
			}
		}
	})

	t.Run("success unwraps envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := depositRouter(NewDepositHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().CreateDeposit(gomock.Any(), gomock.Any(), "EV-1", gomock.Any()).
			DoAndReturn(func(_ any, _ usecase.Actor, _ string, payload json.RawMessage) (entities.Deposit, error) {
				if string(payload) != `{"payment_method_id":"pse"}` {
					t.Fatalf("unexpected payload %s", string(payload))
				}
				return entities.Deposit{ID: "123", QuoteID: "EV-1", Amount: 450000, Date: now, Status: entities.DepositStatusApproved}, nil
			})

		w := perform(r, http.MethodPost, "/v1/quotes/EV-1/deposits", `{"mp_payload":{"payment_method_id":"pse"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got response.DepositResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got.ID != "123" || got.Status != "approved" {
			t.Fatalf("unexpected response %+v", got)
		}
	})
}

func TestDepositHandler_ListDeposits(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDepositUseCase(ctrl)
	r := depositRouter(NewDepositHandler(uc))

	uc.EXPECT().ListByQuote(gomock.Any(), gomock.Any(), "EV-1").Return([]entities.Deposit{{ID: "d1"}}, nil)
	w := perform(r, http.MethodGet, "/v1/quotes/EV-1/deposits", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().ListByQuote(gomock.Any(), gomock.Any(), "EV-2").Return(nil, usecase.ErrQuoteNotFound)
	w = perform(r, http.MethodGet, "/v1/quotes/EV-2/deposits", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "empty body", body: "", want: "{}"},
		{name: "bare payload", body: `{"payment_method_id":"pse"}`, want: `{"payment_method_id":"pse"}`},
		{name: "envelope", body: `{"mp_payload":{"a":1}}`, want: `{"a":1}`},
		{name: "null envelope", body: `{"mp_payload":null}`, wantErr: true},
		{name: "invalid json", body: `{`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.body != "" {
				c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			}

			got, err := readMPPayload(c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, string(got))
			}
		})
	}

	t.Run("read error", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		c.Request.Body = failingReadCloser{}
		if _, err := readMPPayload(c); err == nil {
			t.Fatalf("expected error")
		}
	})
}
