package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/logger"
	"github.com/jstamb/california-breaking-news/internal/metrics"
	"github.com/jstamb/california-breaking-news/internal/repository"
	"github.com/jstamb/california-breaking-news/internal/similarity"
	"github.com/jstamb/california-breaking-news/internal/validator"
)

const (
	// DefaultPageLimit caps listings when the caller supplies no limit.
	DefaultPageLimit = 10
	// MaxPageLimit bounds the per-page size a caller may request.
	MaxPageLimit = 100
)

// PostService implements post creation, retrieval, and duplicate detection.
type PostService struct {
	posts     repository.PostRepository
	validator *validator.Validator
}

// NewPostService creates a new PostService.
func NewPostService(posts repository.PostRepository, v *validator.Validator) *PostService {
	return &PostService{posts: posts, validator: v}
}

// CreatePost validates the input, assigns a unique slug, applies defaults,
// and persists a new post.
func (s *PostService) CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	if err := s.validator.ValidatePostInput(&in); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, slugify(in.Title))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &domain.Post{
		ID:              uuid.New().String(),
		Slug:            slug,
		Title:           in.Title,
		Excerpt:         in.Excerpt,
		Content:         in.Content,
		Category:        strings.ToLower(in.Category),
		Tags:            in.Tags,
		Author:          in.Author,
		FeaturedImage:   in.FeaturedImage,
		ImageAlt:        in.ImageAlt,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		IsPublished:     true,
		PublishedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if post.Author == "" {
		post.Author = domain.DefaultAuthor
	}
	if post.ImageAlt == nil {
		post.ImageAlt = &in.Title
	}
	if post.MetaTitle == "" {
		post.MetaTitle = in.Title
	}
	if post.MetaDescription == "" {
		post.MetaDescription = in.Excerpt
	}
	if in.IsBreaking != nil {
		post.IsBreaking = *in.IsBreaking
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}
	if in.PublishedAt != nil {
		post.PublishedAt = *in.PublishedAt
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	logger.Info("Post created",
		slog.String("slug", post.Slug),
		slog.String("category", post.Category),
		slog.Bool("breaking", post.IsBreaking))
	return post, nil
}

// uniqueSlug probes the base slug and suffixes -1, -2, ... until it finds one
// not yet taken. Slugs are immutable once assigned, so probing is safe.
func (s *PostService) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		exists, err := s.posts.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("probe slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// GetPost returns a post by slug, or nil if none exists. A hit bumps the view
// counter in a detached goroutine; that update is best effort and its failure
// is swallowed.
func (s *PostService) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, nil
	}

	go func(slug string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.posts.IncrementViews(ctx, slug); err != nil {
			logger.Warn("Failed to increment view count",
				slog.String("slug", slug),
				slog.String("error", err.Error()))
		}
	}(slug)

	return post, nil
}

// ListPosts returns published posts matching the filter plus the total count.
func (s *PostService) ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Limit > MaxPageLimit {
		filter.Limit = MaxPageLimit
	}
	filter.Category = strings.ToLower(filter.Category)

	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}
	return posts, total, nil
}

// UpdatePost applies a partial update to the post with the given slug. The
// slug itself is immutable. Returns nil when no such post exists.
func (s *PostService) UpdatePost(ctx context.Context, slug string, in domain.PostInput) (*domain.Post, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, nil
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.Excerpt != "" {
		post.Excerpt = in.Excerpt
	}
	if in.Category != "" {
		post.Category = strings.ToLower(in.Category)
	}
	if in.Tags != nil {
		post.Tags = in.Tags
	}
	if in.Author != "" {
		post.Author = in.Author
	}
	if in.FeaturedImage != nil {
		post.FeaturedImage = in.FeaturedImage
	}
	if in.ImageAlt != nil {
		post.ImageAlt = in.ImageAlt
	}
	if in.IsBreaking != nil {
		post.IsBreaking = *in.IsBreaking
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}
	if in.MetaTitle != "" {
		post.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		post.MetaDescription = in.MetaDescription
	}
	post.UpdatedAt = time.Now()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post. Returns false when no such post exists.
func (s *PostService) DeletePost(ctx context.Context, slug string) (bool, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return false, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return false, nil
	}
	if err := s.posts.Delete(ctx, slug); err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	logger.Info("Post deleted", slog.String("slug", slug))
	return true, nil
}

// CheckDuplicate compares a candidate title against posts published within
// the lookback window.
func (s *PostService) CheckDuplicate(ctx context.Context, title string, hours int, threshold float64) (*similarity.Result, error) {
	if err := s.validator.ValidateDuplicateCheck(title, hours, threshold); err != nil {
		return nil, err
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	candidates, err := s.posts.PublishedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load candidate posts: %w", err)
	}

	result := similarity.Detect(title, candidates, threshold)
	metrics.ObserveDuplicateCheck(result.IsDuplicate)

	logger.Info("Duplicate check completed",
		slog.Bool("is_duplicate", result.IsDuplicate),
		slog.Int("checked", result.CheckedCount),
		slog.Int("matches", len(result.SimilarPosts)))
	return &result, nil
}
