package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/mocks"
	"github.com/jstamb/california-breaking-news/internal/service"
	"github.com/jstamb/california-breaking-news/internal/validator"
)

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()
	v := validator.NewValidator()

	t.Run("creates post with defaults applied", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		mockRepo.EXPECT().
			SlugExists(mock.Anything, "city-council-approves-transit-plan").
			Return(false, nil)
		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Return(nil)

		svc := service.NewPostService(mockRepo, v)

		post, err := svc.CreatePost(ctx, domain.PostInput{
			Title:    "City Council Approves Transit Plan",
			Content:  "Full story body.",
			Excerpt:  "Council vote passes.",
			Category: "Politics",
		})

		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "city-council-approves-transit-plan", post.Slug)
		assert.Equal(t, "politics", post.Category)
		assert.Equal(t, domain.DefaultAuthor, post.Author)
		assert.Equal(t, "City Council Approves Transit Plan", post.MetaTitle)
		assert.Equal(t, "Council vote passes.", post.MetaDescription)
		require.NotNil(t, post.ImageAlt)
		assert.Equal(t, post.Title, *post.ImageAlt)
		assert.True(t, post.IsPublished)
		assert.False(t, post.IsBreaking)
		assert.NotEmpty(t, post.ID)
	})

	t.Run("probes suffixes until slug is free", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		mockRepo.EXPECT().
			SlugExists(mock.Anything, "wildfire-update").
			Return(true, nil)
		mockRepo.EXPECT().
			SlugExists(mock.Anything, "wildfire-update-1").
			Return(true, nil)
		mockRepo.EXPECT().
			SlugExists(mock.Anything, "wildfire-update-2").
			Return(false, nil)
		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Return(nil)

		svc := service.NewPostService(mockRepo, v)

		post, err := svc.CreatePost(ctx, domain.PostInput{
			Title:    "Wildfire Update",
			Content:  "Body.",
			Excerpt:  "Excerpt.",
			Category: "weather",
		})

		require.NoError(t, err)
		assert.Equal(t, "wildfire-update-2", post.Slug)
	})

	t.Run("honors explicit flags and author", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		mockRepo.EXPECT().
			SlugExists(mock.Anything, mock.AnythingOfType("string")).
			Return(false, nil)
		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Return(nil)

		svc := service.NewPostService(mockRepo, v)

		isBreaking := true
		isPublished := false
		publishedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		post, err := svc.CreatePost(ctx, domain.PostInput{
			Title:       "Earthquake Strikes Near Ridgecrest",
			Content:     "Body.",
			Excerpt:     "Excerpt.",
			Category:    "breaking",
			Author:      "Jane Field",
			IsBreaking:  &isBreaking,
			IsPublished: &isPublished,
			PublishedAt: &publishedAt,
		})

		require.NoError(t, err)
		assert.Equal(t, "Jane Field", post.Author)
		assert.True(t, post.IsBreaking)
		assert.False(t, post.IsPublished)
		assert.Equal(t, publishedAt, post.PublishedAt)
	})

	t.Run("rejects payload missing required fields", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)
		svc := service.NewPostService(mockRepo, v)

		post, err := svc.CreatePost(ctx, domain.PostInput{Title: "Only a title"})

		require.Error(t, err)
		assert.Nil(t, post)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		mockRepo.EXPECT().
			SlugExists(mock.Anything, mock.AnythingOfType("string")).
			Return(false, nil)
		mockRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(errors.New("connection lost"))

		svc := service.NewPostService(mockRepo, v)

		_, err := svc.CreatePost(ctx, domain.PostInput{
			Title:    "Harbor Expansion",
			Content:  "Body.",
			Excerpt:  "Excerpt.",
			Category: "business",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create post")
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.Background()
	v := validator.NewValidator()

	t.Run("returns post and bumps views asynchronously", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		existing := &domain.Post{
			ID:    uuid.New().String(),
			Slug:  "transit-plan",
			Title: "Transit Plan",
		}
		mockRepo.EXPECT().
			GetBySlug(mock.Anything, "transit-plan").
			Return(existing, nil)
		mockRepo.EXPECT().
			IncrementViews(mock.Anything, "transit-plan").
			Return(nil).
			Maybe()

		svc := service.NewPostService(mockRepo, v)

		post, err := svc.GetPost(ctx, "transit-plan")

		require.NoError(t, err)
		assert.Equal(t, existing, post)

		// Let the detached view-count goroutine run before the mock asserts.
		time.Sleep(50 * time.Millisecond)
	})

	t.Run("returns nil for unknown slug", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		mockRepo.EXPECT().
			GetBySlug(mock.Anything, "missing").
			Return(nil, nil)

		svc := service.NewPostService(mockRepo, v)

		post, err := svc.GetPost(ctx, "missing")

		require.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()
	v := validator.NewValidator()

	t.Run("normalizes paging and category", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		expected := domain.PostFilter{Category: "politics", Page: 1, Limit: service.DefaultPageLimit}
		mockRepo.EXPECT().
			List(mock.Anything, expected).
			Return([]domain.Post{}, nil)
		mockRepo.EXPECT().
			Count(mock.Anything, expected).
			Return(0, nil)

		svc := service.NewPostService(mockRepo, v)

		_, total, err := svc.ListPosts(ctx, domain.PostFilter{Category: "Politics", Page: 0, Limit: 0})

		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("caps oversized limit", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		expected := domain.PostFilter{Page: 2, Limit: service.MaxPageLimit}
		mockRepo.EXPECT().
			List(mock.Anything, expected).
			Return([]domain.Post{}, nil)
		mockRepo.EXPECT().
			Count(mock.Anything, expected).
			Return(250, nil)

		svc := service.NewPostService(mockRepo, v)

		_, total, err := svc.ListPosts(ctx, domain.PostFilter{Page: 2, Limit: 5000})

		require.NoError(t, err)
		assert.Equal(t, 250, total)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctx := context.Background()
	v := validator.NewValidator()

	t.Run("applies partial update and keeps slug", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		existing := &domain.Post{
			ID:       uuid.New().String(),
			Slug:     "transit-plan",
			Title:    "Transit Plan",
			Content:  "Old body.",
			Excerpt:  "Old excerpt.",
			Category: "politics",
			Author:   "Jane Field",
		}
		mockRepo.EXPECT().
			GetBySlug(mock.Anything, "transit-plan").
			Return(existing, nil)
		mockRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Return(nil)

		svc := service.NewPostService(mockRepo, v)

		isBreaking := true
		post, err := svc.UpdatePost(ctx, "transit-plan", domain.PostInput{
			Title:      "Transit Plan Revised",
			IsBreaking: &isBreaking,
		})

		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "transit-plan", post.Slug)
		assert.Equal(t, "Transit Plan Revised", post.Title)
		assert.Equal(t, "Old body.", post.Content)
		assert.Equal(t, "Jane Field", post.Author)
		assert.True(t, post.IsBreaking)
	})

	t.Run("returns nil for unknown slug", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		mockRepo.EXPECT().
			GetBySlug(mock.Anything, "missing").
			Return(nil, nil)

		svc := service.NewPostService(mockRepo, v)

		post, err := svc.UpdatePost(ctx, "missing", domain.PostInput{Title: "New"})

		require.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()
	v := validator.NewValidator()

	t.Run("deletes existing post", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		mockRepo.EXPECT().
			GetBySlug(mock.Anything, "transit-plan").
			Return(&domain.Post{Slug: "transit-plan"}, nil)
		mockRepo.EXPECT().
			Delete(mock.Anything, "transit-plan").
			Return(nil)

		svc := service.NewPostService(mockRepo, v)

		deleted, err := svc.DeletePost(ctx, "transit-plan")

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("reports false for unknown slug", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		mockRepo.EXPECT().
			GetBySlug(mock.Anything, "missing").
			Return(nil, nil)

		svc := service.NewPostService(mockRepo, v)

		deleted, err := svc.DeletePost(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestPostService_CheckDuplicate(t *testing.T) {
	ctx := context.Background()
	v := validator.NewValidator()

	t.Run("flags duplicate among recent posts", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		candidates := []domain.PostRef{
			{ID: uuid.New().String(), Slug: "storm-hits-coast", Title: "Severe Storm Hits California Coast"},
			{ID: uuid.New().String(), Slug: "tech-layoffs", Title: "Tech Layoffs Continue in Bay Area"},
		}
		mockRepo.EXPECT().
			PublishedSince(mock.Anything, mock.AnythingOfType("time.Time")).
			Return(candidates, nil)

		svc := service.NewPostService(mockRepo, v)

		result, err := svc.CheckDuplicate(ctx, "Severe Storm Hits California Coast", 168, 0.4)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsDuplicate)
		assert.Equal(t, 2, result.CheckedCount)
		require.NotNil(t, result.BestMatch)
		assert.Equal(t, "storm-hits-coast", result.BestMatch.Slug)
	})

	t.Run("uses the lookback window for the candidate query", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)

		var gotSince time.Time
		mockRepo.EXPECT().
			PublishedSince(mock.Anything, mock.AnythingOfType("time.Time")).
			Run(func(ctx context.Context, since time.Time) {
				gotSince = since
			}).
			Return([]domain.PostRef{}, nil)

		svc := service.NewPostService(mockRepo, v)

		_, err := svc.CheckDuplicate(ctx, "Fresh Headline", 24, 0.4)

		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(-24*time.Hour), gotSince, 5*time.Second)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		mockRepo := mocks.NewMockPostRepository(t)
		svc := service.NewPostService(mockRepo, v)

		_, err := svc.CheckDuplicate(ctx, "", 168, 0.4)
		require.Error(t, err)

		_, err = svc.CheckDuplicate(ctx, "Title", 0, 0.4)
		require.Error(t, err)

		_, err = svc.CheckDuplicate(ctx, "Title", 168, 1.5)
		require.Error(t, err)
	})
}
