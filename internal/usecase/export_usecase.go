package usecase

import (
	"context"
	"errors"
	"fmt"

	"eventos_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrExportFailed = errors.New("quote export failed")

// ExportedDocument is a rendered quote ready to be downloaded.
// Location is empty when no document store is configured.
type ExportedDocument struct {
	FileName    string
	ContentType string
	Body        []byte
	Location    string
}

type IExportUseCase interface {
	Export(ctx context.Context, requester Actor, quoteID string) (ExportedDocument, error)
}

type ExportUseCase struct {
	quotes   IQuoteUseCase
	renderer interfaces.IDocumentRenderer
	store    interfaces.IDocumentStore
	log      *zap.Logger
}

var _ IExportUseCase = (*ExportUseCase)(nil)

// NewExportUseCase builds the export flow. store may be nil to skip archiving.
func NewExportUseCase(quotes IQuoteUseCase, renderer interfaces.IDocumentRenderer, store interfaces.IDocumentStore, log *zap.Logger) *ExportUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportUseCase{quotes: quotes, renderer: renderer, store: store, log: log.Named("export")}
}

func QuoteFileName(quoteID string) string {
	return fmt.Sprintf("Quote-%s.pdf", quoteID)
}

func (u *ExportUseCase) Export(ctx context.Context, requester Actor, quoteID string) (ExportedDocument, error) {
	q, err := u.quotes.GetByID(ctx, requester, quoteID)
	if err != nil {
		return ExportedDocument{}, err
	}

	body, err := u.renderer.RenderQuote(q)
	if err != nil {
		u.log.Error("render failed", zap.String("quote_id", q.ID), zap.Error(err))
		return ExportedDocument{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	doc := ExportedDocument{
		FileName:    QuoteFileName(q.ID),
		ContentType: "application/pdf",
		Body:        body,
	}
	if u.store == nil {
		return doc, nil
	}

	// Archiving is best effort; the caller still gets the document.
	loc, err := u.store.Put(ctx, "quotes/"+doc.FileName, doc.ContentType, body)
	if err != nil {
		u.log.Warn("archive failed", zap.String("quote_id", q.ID), zap.Error(err))
		return doc, nil
	}
	doc.Location = loc
	return doc, nil
}
