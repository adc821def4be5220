package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/repository"
)

func newTestPost(slug string) *domain.Post {
	now := time.Now().UTC()
	return &domain.Post{
		ID:          uuid.New().String(),
		Slug:        slug,
		Title:       "Test Article",
		Excerpt:     "A short excerpt.",
		Content:     "The full article body.",
		Category:    "politics",
		Tags:        []string{"california", "news"},
		Author:      "Staff Reporter",
		IsPublished: true,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPostgresPostRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPostRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create then fetch by slug", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		post := newTestPost("wildfire-update")
		require.NoError(t, repo.Create(ctx, post))

		got, err := repo.GetBySlug(ctx, "wildfire-update")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, post.ID, got.ID)
		assert.Equal(t, post.Title, got.Title)
		assert.Equal(t, post.Tags, got.Tags)
		assert.Equal(t, 0, got.ViewCount)
		assert.WithinDuration(t, post.PublishedAt, got.PublishedAt, time.Second)
	})

	t.Run("unknown slug returns nil without error", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		got, err := repo.GetBySlug(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate slug fails", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		require.NoError(t, repo.Create(ctx, newTestPost("taken")))
		err := repo.Create(ctx, newTestPost("taken"))
		assert.Error(t, err)
	})

	t.Run("slug exists", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		require.NoError(t, repo.Create(ctx, newTestPost("present")))

		exists, err := repo.SlugExists(ctx, "present")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.SlugExists(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestPostgresPostRepository_ListAndCount(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPostRepository(testDB.Pool)
	ctx := context.Background()

	seed := func(t *testing.T) {
		testDB.TruncateTables(t, "posts")
		for i := 0; i < 5; i++ {
			post := newTestPost(fmt.Sprintf("politics-%d", i))
			post.Category = "politics"
			post.PublishedAt = time.Now().UTC().Add(-time.Duration(i) * time.Hour)
			require.NoError(t, repo.Create(ctx, post))
		}
		breaking := newTestPost("breaking-story")
		breaking.Category = "environment"
		breaking.IsBreaking = true
		require.NoError(t, repo.Create(ctx, breaking))

		draft := newTestPost("unpublished-draft")
		draft.IsPublished = false
		require.NoError(t, repo.Create(ctx, draft))
	}

	t.Run("lists published posts newest first", func(t *testing.T) {
		seed(t)

		posts, err := repo.List(ctx, domain.PostFilter{Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, posts, 6)
		for i := 1; i < len(posts); i++ {
			assert.False(t, posts[i].PublishedAt.After(posts[i-1].PublishedAt))
		}
		for _, post := range posts {
			assert.NotEqual(t, "unpublished-draft", post.Slug)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		seed(t)

		posts, err := repo.List(ctx, domain.PostFilter{Category: "politics", Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, posts, 5)

		count, err := repo.Count(ctx, domain.PostFilter{Category: "politics"})
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("filters by breaking flag", func(t *testing.T) {
		seed(t)
		isBreaking := true

		posts, err := repo.List(ctx, domain.PostFilter{IsBreaking: &isBreaking, Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "breaking-story", posts[0].Slug)
	})

	t.Run("paginates", func(t *testing.T) {
		seed(t)

		page1, err := repo.List(ctx, domain.PostFilter{Page: 1, Limit: 4})
		require.NoError(t, err)
		assert.Len(t, page1, 4)

		page2, err := repo.List(ctx, domain.PostFilter{Page: 2, Limit: 4})
		require.NoError(t, err)
		assert.Len(t, page2, 2)
	})
}

func TestPostgresPostRepository_UpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPostRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("update persists changed fields", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		post := newTestPost("editable")
		require.NoError(t, repo.Create(ctx, post))

		post.Title = "Revised Title"
		post.Category = "business"
		post.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(ctx, post))

		got, err := repo.GetBySlug(ctx, "editable")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Revised Title", got.Title)
		assert.Equal(t, "business", got.Category)
	})

	t.Run("update of unknown slug errors", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		err := repo.Update(ctx, newTestPost("ghost"))
		assert.Error(t, err)
	})

	t.Run("delete removes the post", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		require.NoError(t, repo.Create(ctx, newTestPost("doomed")))
		require.NoError(t, repo.Delete(ctx, "doomed"))

		got, err := repo.GetBySlug(ctx, "doomed")
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.Error(t, repo.Delete(ctx, "doomed"))
	})
}

func TestPostgresPostRepository_DigestQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPostRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("published since honors the cutoff", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		recent := newTestPost("recent-story")
		recent.PublishedAt = time.Now().UTC().Add(-2 * time.Hour)
		require.NoError(t, repo.Create(ctx, recent))

		old := newTestPost("old-story")
		old.PublishedAt = time.Now().UTC().Add(-10 * 24 * time.Hour)
		require.NoError(t, repo.Create(ctx, old))

		draft := newTestPost("recent-draft")
		draft.IsPublished = false
		require.NoError(t, repo.Create(ctx, draft))

		refs, err := repo.PublishedSince(ctx, time.Now().UTC().Add(-7*24*time.Hour))
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "recent-story", refs[0].Slug)
		assert.Equal(t, recent.Title, refs[0].Title)
	})

	t.Run("top for digest ranks breaking then views", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		popular := newTestPost("popular-story")
		require.NoError(t, repo.Create(ctx, popular))
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.IncrementViews(ctx, "popular-story"))
		}

		breaking := newTestPost("breaking-story")
		breaking.IsBreaking = true
		require.NoError(t, repo.Create(ctx, breaking))

		quiet := newTestPost("quiet-story")
		require.NoError(t, repo.Create(ctx, quiet))

		posts, err := repo.TopForDigest(ctx, time.Now().UTC().Add(-7*24*time.Hour), 2)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "breaking-story", posts[0].Slug)
		assert.Equal(t, "popular-story", posts[1].Slug)
		assert.Equal(t, 5, posts[1].ViewCount)
	})

	t.Run("increment views accumulates", func(t *testing.T) {
		testDB.TruncateTables(t, "posts")

		require.NoError(t, repo.Create(ctx, newTestPost("counted")))
		require.NoError(t, repo.IncrementViews(ctx, "counted"))
		require.NoError(t, repo.IncrementViews(ctx, "counted"))

		got, err := repo.GetBySlug(ctx, "counted")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2, got.ViewCount)
	})
}
