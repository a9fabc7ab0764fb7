package models

import (
	"time"

	"gorm.io/gorm"
)

type ContentType string

const (
	ContentTypePDF     ContentType = "pdf"
	ContentTypeVideo   ContentType = "video"
	ContentTypeArticle ContentType = "article"
)

type ContentCategory string

const (
	CategoryVault   ContentCategory = "Knowledge Vault"
	CategoryMastery ContentCategory = "SET/NET"
)

// Sub-category enumerations. Which set is valid depends on the category;
// the business validator enforces the pairing since the schema cannot.
const (
	SubCourseMaterials = "Course Materials"
	SubStudyGuides     = "Study Guides"
	SubEbooks          = "E-Books & PDFs"
	SubFAQs            = "FAQs"
	SubExamOverview    = "Exam Overview"
	SubPracticePapers  = "Practice Papers"
	SubTipsStrategy    = "Tips & Strategy"
)

// VaultSubCategories lists the sub-categories valid under Knowledge Vault.
var VaultSubCategories = []string{SubCourseMaterials, SubStudyGuides, SubEbooks, SubFAQs}

// MasterySubCategories lists the sub-categories valid under SET/NET.
var MasterySubCategories = []string{SubCourseMaterials, SubExamOverview, SubPracticePapers, SubTipsStrategy}

// ValidSubCategory reports whether sub is a member of the sub-category
// enumeration determined by category.
func ValidSubCategory(category ContentCategory, sub string) bool {
	var valid []string
	switch category {
	case CategoryVault:
		valid = VaultSubCategories
	case CategoryMastery:
		valid = MasterySubCategories
	default:
		return false
	}
	for _, s := range valid {
		if s == sub {
			return true
		}
	}
	return false
}

// ContentItem is created by an admin upload and deleted by an admin delete;
// it is never mutated in place. The metadata row only exists once the blob
// upload has completed, so FileURL never dangles.
type ContentItem struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Title       string          `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Description string          `json:"description" gorm:"type:text" validate:"max=1000"`
	FileURL     *string         `json:"file_url" gorm:"size:500"`
	Type        ContentType     `json:"type" gorm:"not null;size:20" validate:"required,oneof=pdf video article"`
	Category    ContentCategory `json:"category" gorm:"not null;size:50;index:idx_content_section" validate:"required"`
	SubCategory string          `json:"sub_category" gorm:"not null;size:50;index:idx_content_section" validate:"required"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
	Locked      bool            `json:"locked" gorm:"not null;default:false"`

	// Metadata
	CreatedBy string         `json:"created_by" gorm:"not null;size:255"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (ContentItem) TableName() string {
	return "content_items"
}
