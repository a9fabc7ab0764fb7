package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/services"
	"github.com/kamasanicharan/BoldScholars/internal/utils"
)

// UserHandler covers the profile surface and the admin team roster.
type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// GetProfile serves the viewer's own profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid, err := GetUserUIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "user not authenticated",
		})
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		h.RespondError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the viewer's own profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid, err := GetUserUIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "user not authenticated",
		})
		return
	}

	var req services.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), uid, &req)
	if err != nil {
		h.RespondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Promote grants the admin role to the profile with the given email.
func (h *UserHandler) Promote(c *gin.Context) {
	var req services.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Promoting user", "email", req.Email)

	profile, err := h.userService.Promote(c.Request.Context(), req.Email)
	if err != nil {
		h.RespondError(c, err, "Failed to promote user")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Team serves the member roster to admins.
func (h *UserHandler) Team(c *gin.Context) {
	filters := repositories.UserFilters{Limit: 50}

	filters.Query = c.Query("q")
	if v := c.Query("role"); v != "" {
		role := models.UserRole(v)
		filters.Role = &role
	}
	if v := c.Query("size"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 && size <= 200 {
			filters.Limit = size
		}
	}
	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 1 {
			filters.Offset = (page - 1) * filters.Limit
		}
	}

	resp, err := h.userService.Team(c.Request.Context(), filters)
	if err != nil {
		h.RespondError(c, err, "Failed to list team")
		return
	}

	c.JSON(http.StatusOK, resp)
}
