package validator

import (
	"testing"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

func validUpload() *UploadContentRequest {
	return &UploadContentRequest{
		Title:       "Algebra Notes",
		Type:        models.ContentTypePDF,
		Category:    models.CategoryVault,
		SubCategory: models.SubCourseMaterials,
	}
}

func TestValidateContentUpload(t *testing.T) {
	bv := New().GetBusinessValidator()

	tests := []struct {
		name    string
		mutate  func(*UploadContentRequest)
		wantErr bool
	}{
		{
			name:   "valid vault upload",
			mutate: func(r *UploadContentRequest) {},
		},
		{
			name: "valid mastery upload",
			mutate: func(r *UploadContentRequest) {
				r.Category = models.CategoryMastery
				r.SubCategory = models.SubPracticePapers
			},
		},
		{
			name: "course materials exists in both categories",
			mutate: func(r *UploadContentRequest) {
				r.Category = models.CategoryMastery
				r.SubCategory = models.SubCourseMaterials
			},
		},
		{
			name: "vault sub-category under mastery",
			mutate: func(r *UploadContentRequest) {
				r.Category = models.CategoryMastery
				r.SubCategory = models.SubStudyGuides
			},
			wantErr: true,
		},
		{
			name: "mastery sub-category under vault",
			mutate: func(r *UploadContentRequest) {
				r.SubCategory = models.SubExamOverview
			},
			wantErr: true,
		},
		{
			name: "unknown category",
			mutate: func(r *UploadContentRequest) {
				r.Category = "Archive"
			},
			wantErr: true,
		},
		{
			name: "unknown content type",
			mutate: func(r *UploadContentRequest) {
				r.Type = "audio"
			},
			wantErr: true,
		},
		{
			name: "missing title",
			mutate: func(r *UploadContentRequest) {
				r.Title = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpload()
			tt.mutate(req)
			errs := bv.ValidateContentUpload(req)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("ValidateContentUpload() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidatePromotion(t *testing.T) {
	bv := New().GetBusinessValidator()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "student1@x.com", false},
		{"leading whitespace", " student1@x.com", true},
		{"trailing whitespace", "student1@x.com ", true},
		{"not an email", "not-an-email", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidatePromotion(&PromoteRequest{Email: tt.email})
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("ValidatePromotion(%q) errors = %v, wantErr %v", tt.email, errs, tt.wantErr)
			}
		})
	}
}
