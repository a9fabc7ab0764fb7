package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/services"
	"github.com/kamasanicharan/BoldScholars/internal/utils"
)

// UpdateHandler covers the admin announcement surface. The public read
// side lives on CatalogHandler.
type UpdateHandler struct {
	BaseHandler
	updateService services.UpdateService
}

func NewUpdateHandler(updateService services.UpdateService, logger utils.Logger) *UpdateHandler {
	return &UpdateHandler{
		BaseHandler:   NewBaseHandler(logger),
		updateService: updateService,
	}
}

func (h *UpdateHandler) Post(c *gin.Context) {
	profile, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "user not authenticated",
		})
		return
	}

	var req services.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}

	post, err := h.updateService.Post(c.Request.Context(), &req, profile.Name)
	if err != nil {
		h.RespondError(c, err, "Failed to post update")
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *UpdateHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.updateService.Delete(c.Request.Context(), id); err != nil {
		h.RespondError(c, err, "Failed to delete update")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "update deleted"})
}
