package domain

import "time"

// Post represents a published or draft news article.
type Post struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags,omitempty"`
	Author          string     `json:"author"`
	FeaturedImage   *string    `json:"featured_image,omitempty"`
	ImageAlt        *string    `json:"image_alt,omitempty"`
	IsBreaking      bool       `json:"is_breaking"`
	IsPublished     bool       `json:"is_published"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	ViewCount       int        `json:"view_count"`
	PublishedAt     time.Time `json:"published_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PostRef is the subset of a post consulted during duplicate-title checks.
type PostRef struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
}

// PostFilter narrows post listings.
type PostFilter struct {
	Category   string
	IsBreaking *bool
	Page       int
	Limit      int
}

// DefaultAuthor is used when the ingestion payload does not name one.
const DefaultAuthor = "Staff Reporter"

// PostInput is the ingestion payload for creating or updating a post. Pointer
// fields distinguish "absent" from zero values on partial updates.
type PostInput struct {
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Author          string     `json:"author"`
	FeaturedImage   *string    `json:"featured_image"`
	ImageAlt        *string    `json:"image_alt"`
	IsBreaking      *bool      `json:"is_breaking"`
	IsPublished     *bool      `json:"is_published"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	PublishedAt     *time.Time `json:"published_at"`
}
