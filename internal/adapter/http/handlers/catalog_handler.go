package handlers

import (
	"net/http"
	"slices"
	"strings"

	"eventos_api/internal/adapter/http/dto/response"
	"eventos_api/internal/domain/catalog"
	"eventos_api/internal/domain/entities"
	"eventos_api/pkg"

	"github.com/gin-gonic/gin"
)

var errUnknownEventCategory = pkg.NewDomainErrorSimple("EVENT_CATEGORY_NOT_FOUND", "Event category not found", http.StatusNotFound)

// CatalogHandler serves the static catalog. It has no use case: the data is read-only and in memory.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListEvents godoc
// @Summary      Event categories and events
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Event category id"
// @Success      200  {object}  response.EventCatalogResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /catalog/events [get]
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusOK, response.EventCatalogResponse{Categories: catalog.EventCategories(), Events: catalog.Events()})
		return
	}

	cat, ok := catalog.EventCategoryByID(category)
	if !ok {
		writeError(c, errUnknownEventCategory)
		return
	}
	c.JSON(http.StatusOK, response.EventCatalogResponse{
		Categories: []entities.EventCategory{cat},
		Events:     catalog.EventsByCategory(category),
	})
}

// ListThemes godoc
// @Summary      Decoration themes
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Only themes offered for this event category"
// @Success      200  {object}  response.ThemesResponse
// @Router       /catalog/themes [get]
func (h *CatalogHandler) ListThemes(c *gin.Context) {
	themes := catalog.Themes()
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		themes = slices.DeleteFunc(themes, func(t entities.Theme) bool {
			return !slices.Contains(t.Categories, category)
		})
	}
	c.JSON(http.StatusOK, response.ThemesResponse{Themes: themes})
}

// ListServices godoc
// @Summary      Services available for modular quotes
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.ServiceCatalogResponse
// @Router       /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.ServiceCatalogResponse{Categories: catalog.ServiceCategories()})
}

// ListPackages godoc
// @Summary      Packaged plan tiers
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.PackagedPlansResponse
// @Router       /catalog/packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, response.PackagedPlansResponse{
		Plans:            catalog.PackagedPlans(),
		IncludedServices: catalog.IncludedServices(),
	})
}
