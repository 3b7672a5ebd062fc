package usecase

import (
	"context"
	"errors"
	"testing"

	"eventos_api/internal/domain/entities"
	mock_interfaces "eventos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExportUseCase_Export(t *testing.T) {
	owner := Actor{UserID: "u1"}
	stored := entities.Quote{ID: "EV-1", OwnerID: "u1"}

	t.Run("renders and archives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewExportUseCase(NewQuoteUseCase(repo, nil, nil, "", nil), renderer, store, nil)

		repo.EXPECT().GetByID(gomock.Any(), "EV-1").Return(stored, nil)
		renderer.EXPECT().RenderQuote(stored).Return([]byte("%PDF-1.3"), nil)
		store.EXPECT().Put(gomock.Any(), "quotes/Quote-EV-1.pdf", "application/pdf", []byte("%PDF-1.3")).
			Return("https://cdn.example.com/quotes/Quote-EV-1.pdf", nil)

		doc, err := uc.Export(context.Background(), owner, "EV-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if doc.FileName != "Quote-EV-1.pdf" || doc.Location == "" || string(doc.Body) != "%PDF-1.3" {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})

	t.Run("archive failure still returns the document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewExportUseCase(NewQuoteUseCase(repo, nil, nil, "", nil), renderer, store, nil)

		repo.EXPECT().GetByID(gomock.Any(), "EV-1").Return(stored, nil)
		renderer.EXPECT().RenderQuote(stored).Return([]byte("pdf"), nil)
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))

		doc, err := uc.Export(context.Background(), owner, "EV-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if doc.Location != "" || len(doc.Body) == 0 {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})

	t.Run("render failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewExportUseCase(NewQuoteUseCase(repo, nil, nil, "", nil), renderer, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "EV-1").Return(stored, nil)
		renderer.EXPECT().RenderQuote(stored).Return(nil, errors.New("font"))

		_, err := uc.Export(context.Background(), owner, "EV-1")
		if !errors.Is(err, ErrExportFailed) {
			t.Fatalf("expected ErrExportFailed, got %v", err)
		}
	})

	t.Run("stranger cannot export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewExportUseCase(NewQuoteUseCase(repo, nil, nil, "", nil), renderer, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "EV-1").Return(stored, nil)

		_, err := uc.Export(context.Background(), Actor{UserID: "u2"}, "EV-1")
		if !errors.Is(err, ErrQuoteForbidden) {
			t.Fatalf("expected ErrQuoteForbidden, got %v", err)
		}
	})
}
