package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/services"
	"github.com/kamasanicharan/BoldScholars/internal/utils"
)

type FeedbackHandler struct {
	BaseHandler
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService, logger utils.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     NewBaseHandler(logger),
		feedbackService: feedbackService,
	}
}

// Submit accepts feedback from any visitor. Signed-in visitors are
// attributed by profile name; everyone else is recorded as Guest.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req services.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}

	author := ""
	if profile, err := GetUserFromContext(c); err == nil {
		author = profile.Name
	}

	fb, err := h.feedbackService.Submit(c.Request.Context(), &req, author)
	if err != nil {
		h.RespondError(c, err, "Failed to submit feedback")
		return
	}

	c.JSON(http.StatusCreated, fb)
}

// List serves the feedback log to admins.
func (h *FeedbackHandler) List(c *gin.Context) {
	filters := repositories.FeedbackFilters{Limit: 50}

	if v := c.Query("from"); v != "" {
		if from, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DateFrom = &from
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DateTo = &to
		}
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

	resp, err := h.feedbackService.List(c.Request.Context(), filters)
	if err != nil {
		h.RespondError(c, err, "Failed to list feedback")
		return
	}

	c.JSON(http.StatusOK, resp)
}
