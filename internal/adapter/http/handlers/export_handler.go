package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"eventos_api/internal/adapter/http/middleware"
	"eventos_api/internal/usecase"
	"eventos_api/pkg"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportPDF godoc
// @Summary      Download a quote as PDF
// @Tags         quotes
// @Produce      application/pdf
// @Security     Bearer
// @Param        id  path  string  true  "Quote id"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/pdf [get]
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	doc, err := h.usecase.Export(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapExportError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	if doc.Location != "" {
		c.Header("X-Document-Location", doc.Location)
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

func mapExportError(err error) *pkg.AppError {
	if appErr, ok := mapQuoteAccessError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrExportFailed) {
		return pkg.NewDomainError("EXPORT_FAILED", "The quote document could not be generated", err, http.StatusInternalServerError)
	}
	return internalError(err)
}
