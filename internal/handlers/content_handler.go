package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/services"
	"github.com/kamasanicharan/BoldScholars/internal/utils"
)

// maxUploadSize bounds the multipart file part.
const maxUploadSize = 100 << 20 // 100 MB

// ContentHandler covers the admin content management surface.
type ContentHandler struct {
	BaseHandler
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService, logger utils.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    NewBaseHandler(logger),
		contentService: contentService,
	}
}

// Upload accepts a multipart form: metadata fields plus an optional
// "file" part. Articles may omit the file.
func (h *ContentHandler) Upload(c *gin.Context) {
	uid, err := GetUserUIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "user not authenticated",
		})
		return
	}

	var req services.UploadContentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid form data",
			Details: err.Error(),
		})
		return
	}

	var file services.UploadFile
	fileHeader, err := c.FormFile("file")
	if err == nil {
		if fileHeader.Size > maxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   "too_large",
				Message: "file exceeds the upload size limit",
			})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			h.RespondError(c, err, "Failed to read uploaded file")
			return
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			h.RespondError(c, err, "Failed to read uploaded file")
			return
		}

		file = services.UploadFile{
			Content:     content,
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	h.LogRequest(c, "Uploading content", "title", req.Title, "category", req.Category)

	item, err := h.contentService.Upload(c.Request.Context(), &req, file, uid)
	if err != nil {
		h.RespondError(c, err, "Failed to upload content")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	h.LogRequest(c, "Deleting content", "content_id", id)

	if err := h.contentService.Delete(c.Request.Context(), id); err != nil {
		h.RespondError(c, err, "Failed to delete content")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "content deleted"})
}

// List serves the admin content listing with filters and pagination.
func (h *ContentHandler) List(c *gin.Context) {
	filters := h.parseContentFilters(c)

	resp, err := h.contentService.List(c.Request.Context(), filters)
	if err != nil {
		h.RespondError(c, err, "Failed to list content")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ContentHandler) parseContentFilters(c *gin.Context) repositories.ContentFilters {
	filters := repositories.ContentFilters{Limit: 20}

	if v := c.Query("category"); v != "" {
		category := models.ContentCategory(v)
		filters.Category = &category
	}
	if v := c.Query("sub_category"); v != "" {
		filters.SubCategory = &v
	}
	if v := c.Query("type"); v != "" {
		contentType := models.ContentType(v)
		filters.Type = &contentType
	}
	if v := c.Query("created_by"); v != "" {
		filters.CreatedBy = &v
	}
	if v := c.Query("size"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 && size <= 100 {
			filters.Limit = size
		}
	}
	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 1 {
			filters.Offset = (page - 1) * filters.Limit
		}
	}

	return filters
}
