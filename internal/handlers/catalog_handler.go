package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/services"
	"github.com/kamasanicharan/BoldScholars/internal/utils"
)

// CatalogHandler serves the public browse surface from the live-synced
// catalog snapshots. All routes accept anonymous viewers.
type CatalogHandler struct {
	BaseHandler
	catalogService services.CatalogService
	updateService  services.UpdateService
}

func NewCatalogHandler(catalogService services.CatalogService, updateService services.UpdateService, logger utils.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    NewBaseHandler(logger),
		catalogService: catalogService,
		updateService:  updateService,
	}
}

// BrowseVault serves one Knowledge Vault section.
func (h *CatalogHandler) BrowseVault(c *gin.Context) {
	h.browseSection(c, models.CategoryVault)
}

// BrowseMastery serves one SET/NET section.
func (h *CatalogHandler) BrowseMastery(c *gin.Context) {
	h.browseSection(c, models.CategoryMastery)
}

func (h *CatalogHandler) browseSection(c *gin.Context, category models.ContentCategory) {
	subCategory := c.Query("sub_category")
	if subCategory == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "query parameter 'sub_category' is required",
		})
		return
	}

	if !models.ValidSubCategory(category, subCategory) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "unknown sub-category for this category",
		})
		return
	}

	items := h.catalogService.BrowseSection(category, subCategory, IsAuthenticated(c))

	c.JSON(http.StatusOK, gin.H{
		"category":     category,
		"sub_category": subCategory,
		"items":        items,
		"total":        len(items),
	})
}

// ListUpdates serves the announcements feed, newest first.
func (h *CatalogHandler) ListUpdates(c *gin.Context) {
	posts := h.catalogService.Updates()
	c.JSON(http.StatusOK, gin.H{
		"updates": posts,
		"total":   len(posts),
	})
}
