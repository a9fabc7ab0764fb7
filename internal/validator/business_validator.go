package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

// BusinessValidator handles cross-field rules the struct tags cannot
// express, mainly the category / sub-category pairing.
type BusinessValidator struct {
	validate *validator.Validate
}

func NewBusinessValidator(validate *validator.Validate) *BusinessValidator {
	return &BusinessValidator{validate: validate}
}

// Validate runs plain struct validation.
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	if err := bv.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateContentUpload validates an upload request, including the rule
// that the category determines which sub-category enumeration applies.
func (bv *BusinessValidator) ValidateContentUpload(req *UploadContentRequest) ValidationErrors {
	errors := bv.Validate(req)

	switch req.Category {
	case models.CategoryVault, models.CategoryMastery:
		if !models.ValidSubCategory(req.Category, req.SubCategory) {
			errors = append(errors, ValidationError{
				Field:   "sub_category",
				Message: "not valid for category " + string(req.Category),
				Value:   req.SubCategory,
				Rule:    "business_logic",
			})
		}
	case "":
		// struct validation already reported the missing category
	default:
		errors = append(errors, ValidationError{
			Field:   "category",
			Message: "unknown category",
			Value:   req.Category,
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidatePromotion checks the promotion target address. The exact-match
// lookup downstream is case-sensitive, so reject addresses that are not
// already normalized.
func (bv *BusinessValidator) ValidatePromotion(req *PromoteRequest) ValidationErrors {
	errors := bv.Validate(req)

	if req.Email != strings.TrimSpace(req.Email) {
		errors = append(errors, ValidationError{
			Field:   "email",
			Message: "must not contain leading or trailing whitespace",
			Value:   req.Email,
			Rule:    "business_logic",
		})
	}

	return errors
}
