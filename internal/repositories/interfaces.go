package repositories

import (
	"time"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type ContentFilters struct {
	Category    *models.ContentCategory `json:"category"`
	SubCategory *string                 `json:"sub_category"`
	Type        *models.ContentType     `json:"type"`
	CreatedBy   *string                 `json:"created_by"`
	Limit       int                     `json:"limit"`
	Offset      int                     `json:"offset"`
}

type UserFilters struct {
	Query  string           // Search query for name or email
	Role   *models.UserRole // Filter by persisted role
	Limit  int              // Page size
	Offset int              // Offset for pagination
}

type FeedbackFilters struct {
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}
