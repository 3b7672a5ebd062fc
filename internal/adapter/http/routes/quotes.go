package routes

import (
	"eventos_api/internal/adapter/http/handlers"
	"eventos_api/internal/adapter/http/middleware"
	"eventos_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPackages = "/packages"
)

func addQuoteRoutes(rg *gin.RouterGroup, authenticated gin.HandlerFunc, quoteHandler *handlers.QuoteHandler, exportHandler *handlers.ExportHandler, depositHandler *handlers.DepositHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.PreviewModular)
		quotes.POST("", authenticated, quoteHandler.SubmitModular)
		quotes.GET("", authenticated, quoteHandler.ListMine)
		quotes.GET("/:id", authenticated, quoteHandler.GetQuote)
		quotes.PATCH("/:id/status", authenticated, middleware.RequireRole(entities.RoleAdmin), quoteHandler.UpdateStatus)
		quotes.GET("/:id/pdf", authenticated, exportHandler.ExportPDF)
		quotes.POST("/:id/deposits", authenticated, depositHandler.CreateDeposit)
		quotes.GET("/:id/deposits", authenticated, depositHandler.ListDeposits)
	}

	packages := rg.Group(PathPackages)
	{
		packages.POST("/preview", quoteHandler.PreviewPackaged)
		packages.POST("", authenticated, quoteHandler.SubmitPackaged)
	}
}
