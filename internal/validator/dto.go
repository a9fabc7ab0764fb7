package validator

import "github.com/kamasanicharan/BoldScholars/internal/models"

// SignInRequest carries the OAuth authorization code handed back by the
// identity provider after the interactive sign-in.
type SignInRequest struct {
	Code  string `json:"code" validate:"required"`
	State string `json:"state" validate:"required"`
}

// ProfileUpdateRequest covers the student-editable profile fields. UID,
// email and role are deliberately absent.
type ProfileUpdateRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=30"`
	Education  *string `json:"education" validate:"omitempty,max=200"`
	Profession *string `json:"profession" validate:"omitempty,max=200"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url,max=500"`
}

// UploadContentRequest is the metadata half of an admin content upload; the
// binary half arrives as the multipart "file" part.
type UploadContentRequest struct {
	Title       string                 `form:"title" validate:"required,min=1,max=200"`
	Description string                 `form:"description" validate:"max=1000"`
	Type        models.ContentType     `form:"type" validate:"required,oneof=pdf video article"`
	Category    models.ContentCategory `form:"category" validate:"required"`
	SubCategory string                 `form:"sub_category" validate:"required,max=50"`
	Locked      bool                   `form:"locked"`
}

// PromoteRequest names the user an admin wants to grant the admin role to.
type PromoteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePostRequest creates an announcement.
type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,max=5000"`
}

// FeedbackRequest is accepted from any visitor, authenticated or not.
type FeedbackRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}
