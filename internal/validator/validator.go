package validator

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jstamb/california-breaking-news/internal/domain"
)

// IsValidationError reports whether err came from input validation, as
// opposed to an infrastructure failure.
func IsValidationError(err error) bool {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return true
	}
	var ruleErr validation.ErrorObject
	return errors.As(err, &ruleErr)
}

// Validator provides validation methods for inbound payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePostInput validates the payload for creating a post.
func (v *Validator) ValidatePostInput(in *domain.PostInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 300).Error("title_too_long"),
		),
		validation.Field(&in.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&in.Excerpt,
			validation.Required.Error("excerpt_required"),
			validation.Length(1, 1000).Error("excerpt_too_long"),
		),
		validation.Field(&in.Category,
			validation.Required.Error("category_required"),
		),
	)
}

// ValidateSubscribeEmail validates the email on a subscribe request.
func (v *Validator) ValidateSubscribeEmail(email string) error {
	return validation.Validate(email,
		validation.Required.Error("email_required"),
		is.Email.Error("invalid_email_format"),
	)
}

// ValidateContactMessage validates a contact-form submission.
func (v *Validator) ValidateContactMessage(msg *domain.ContactMessage) error {
	return validation.ValidateStruct(msg,
		validation.Field(&msg.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&msg.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&msg.Subject,
			validation.Required.Error("subject_required"),
		),
		validation.Field(&msg.Message,
			validation.Required.Error("message_required"),
		),
	)
}

// ValidateDuplicateCheck validates the parameters of a duplicate-title check.
func (v *Validator) ValidateDuplicateCheck(title string, hours int, threshold float64) error {
	if err := validation.Validate(title,
		validation.Required.Error("title_required"),
	); err != nil {
		return validation.Errors{"title": validation.NewError("title_required", "title is required")}
	}
	if hours < 1 {
		return validation.Errors{"hours": validation.NewError("invalid_hours", "hours must be at least 1")}
	}
	if threshold < 0 || threshold > 1 {
		return validation.Errors{"threshold": validation.NewError("invalid_threshold", "threshold must be between 0 and 1")}
	}
	return nil
}
