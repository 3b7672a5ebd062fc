package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"eventos_api/internal/adapter/http/handlers/mocks"
	"eventos_api/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestExportHandler_ExportPDF(t *testing.T) {
	t.Run("streams attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExportUseCase(ctrl)
		r := newRouter(customerClaims)
		r.GET("/v1/quotes/:id/pdf", NewExportHandler(uc).ExportPDF)

		uc.EXPECT().Export(gomock.Any(), gomock.Any(), "EV-1").Return(usecase.ExportedDocument{
			FileName:    "Quote-EV-1.pdf",
			ContentType: "application/pdf",
			Body:        []byte("%PDF-1.3"),
			Location:    "https://bucket.example.com/quotes/Quote-EV-1.pdf",
		}, nil)

		w := perform(r, http.MethodGet, "/v1/quotes/EV-1/pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="Quote-EV-1.pdf"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected content type %q", got)
		}
		if w.Header().Get("X-Document-Location") == "" {
			t.Fatalf("expected document location header")
		}
		if w.Body.String() != "%PDF-1.3" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: usecase.ErrQuoteNotFound, status: http.StatusNotFound},
		{name: "forbidden", err: usecase.ErrQuoteForbidden, status: http.StatusForbidden},
		{name: "render failure", err: fmt.Errorf("%w: font", usecase.ErrExportFailed), status: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIExportUseCase(ctrl)
			r := newRouter(customerClaims)
			r.GET("/v1/quotes/:id/pdf", NewExportHandler(uc).ExportPDF)

			uc.EXPECT().Export(gomock.Any(), gomock.Any(), "EV-1").Return(usecase.ExportedDocument{}, tt.err)

			w := perform(r, http.MethodGet, "/v1/quotes/EV-1/pdf", "")
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}
