package validator

import (
	"strings"
	"testing"

	"github.com/jstamb/california-breaking-news/internal/domain"
)

func TestValidatePostInput(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   *domain.PostInput
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid payload",
			input: &domain.PostInput{
				Title:    "City Council Approves Transit Plan",
				Content:  "Full story body.",
				Excerpt:  "Council vote passes.",
				Category: "politics",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			input: &domain.PostInput{
				Content:  "Full story body.",
				Excerpt:  "Council vote passes.",
				Category: "politics",
			},
			wantErr: true,
			errMsg:  "title",
		},
		{
			name: "missing content",
			input: &domain.PostInput{
				Title:    "Headline",
				Excerpt:  "Excerpt.",
				Category: "politics",
			},
			wantErr: true,
			errMsg:  "content",
		},
		{
			name: "missing excerpt",
			input: &domain.PostInput{
				Title:    "Headline",
				Content:  "Body.",
				Category: "politics",
			},
			wantErr: true,
			errMsg:  "excerpt",
		},
		{
			name: "missing category",
			input: &domain.PostInput{
				Title:   "Headline",
				Content: "Body.",
				Excerpt: "Excerpt.",
			},
			wantErr: true,
			errMsg:  "category",
		},
		{
			name: "title too long",
			input: &domain.PostInput{
				Title:    strings.Repeat("a", 301),
				Content:  "Body.",
				Excerpt:  "Excerpt.",
				Category: "politics",
			},
			wantErr: true,
			errMsg:  "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePostInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePostInput() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && tt.errMsg != "" && !strings.Contains(strings.ToLower(err.Error()), tt.errMsg) {
				t.Errorf("ValidatePostInput() error = %v, want message containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateSubscribeEmail(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "reader@example.com", false},
		{"empty email", "", true},
		{"missing domain", "reader@", true},
		{"missing at-sign", "reader.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSubscribeEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSubscribeEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContactMessage(t *testing.T) {
	v := NewValidator()

	valid := domain.ContactMessage{
		Name:    "Pat Reader",
		Email:   "pat@example.com",
		Subject: "Correction",
		Message: "The vote count is wrong.",
	}

	t.Run("valid message", func(t *testing.T) {
		if err := v.ValidateContactMessage(&valid); err != nil {
			t.Errorf("ValidateContactMessage() error = %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		msg := valid
		msg.Subject = ""
		msg.Message = ""
		if err := v.ValidateContactMessage(&msg); err == nil {
			t.Error("ValidateContactMessage() expected error for missing fields")
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		msg := valid
		msg.Email = "nope"
		if err := v.ValidateContactMessage(&msg); err == nil {
			t.Error("ValidateContactMessage() expected error for invalid email")
		}
	})
}

func TestValidateDuplicateCheck(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		title     string
		hours     int
		threshold float64
		wantErr   bool
	}{
		{"valid parameters", "Storm Hits Coast", 168, 0.4, false},
		{"threshold lower bound", "Storm Hits Coast", 168, 0, false},
		{"threshold upper bound", "Storm Hits Coast", 168, 1, false},
		{"empty title", "", 168, 0.4, true},
		{"zero hours", "Storm Hits Coast", 0, 0.4, true},
		{"negative hours", "Storm Hits Coast", -5, 0.4, true},
		{"threshold above one", "Storm Hits Coast", 168, 1.1, true},
		{"negative threshold", "Storm Hits Coast", 168, -0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDuplicateCheck(tt.title, tt.hours, tt.threshold)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDuplicateCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	v := NewValidator()

	if err := v.ValidatePostInput(&domain.PostInput{}); !IsValidationError(err) {
		t.Errorf("IsValidationError() = false for struct validation error %v", err)
	}
	if err := v.ValidateSubscribeEmail("nope"); !IsValidationError(err) {
		t.Errorf("IsValidationError() = false for field validation error %v", err)
	}
	if IsValidationError(nil) {
		t.Error("IsValidationError(nil) = true")
	}
}
