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

func newTestSubscriber(email string) *domain.Subscriber {
	now := time.Now().UTC()
	verifyToken := uuid.New().String()
	return &domain.Subscriber{
		ID:               uuid.New().String(),
		Email:            email,
		IsVerified:       false,
		IsActive:         true,
		VerifyToken:      &verifyToken,
		UnsubscribeToken: uuid.New().String(),
		Preferences:      []string{domain.PreferenceWeekly},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestPostgresSubscriberRepository_CreateAndLookups(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresSubscriberRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create then fetch by email", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		name := "Maria"
		sub := newTestSubscriber("maria@example.com")
		sub.FirstName = &name
		require.NoError(t, repo.Create(ctx, sub))

		got, err := repo.GetByEmail(ctx, "maria@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, sub.ID, got.ID)
		require.NotNil(t, got.FirstName)
		assert.Equal(t, "Maria", *got.FirstName)
		assert.Equal(t, []string{"weekly"}, got.Preferences)
		assert.False(t, got.IsVerified)
		assert.True(t, got.IsActive)
	})

	t.Run("fetch by verify token", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		sub := newTestSubscriber("verify@example.com")
		require.NoError(t, repo.Create(ctx, sub))

		got, err := repo.GetByVerifyToken(ctx, *sub.VerifyToken)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, sub.Email, got.Email)
	})

	t.Run("fetch by unsubscribe token", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		sub := newTestSubscriber("leaver@example.com")
		require.NoError(t, repo.Create(ctx, sub))

		got, err := repo.GetByUnsubscribeToken(ctx, sub.UnsubscribeToken)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, sub.Email, got.Email)
	})

	t.Run("unknown lookups return nil without error", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.GetByVerifyToken(ctx, "no-such-token")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		require.NoError(t, repo.Create(ctx, newTestSubscriber("dup@example.com")))
		err := repo.Create(ctx, newTestSubscriber("dup@example.com"))
		assert.Error(t, err)
	})
}

func TestPostgresSubscriberRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresSubscriberRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("verification clears the token", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		sub := newTestSubscriber("pending@example.com")
		require.NoError(t, repo.Create(ctx, sub))

		sub.IsVerified = true
		sub.VerifyToken = nil
		sub.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(ctx, sub))

		got, err := repo.GetByEmail(ctx, "pending@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsVerified)
		assert.Nil(t, got.VerifyToken)
	})

	t.Run("update of unknown subscriber errors", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		err := repo.Update(ctx, newTestSubscriber("ghost@example.com"))
		assert.Error(t, err)
	})

	t.Run("last email sent stamp", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		sub := newTestSubscriber("stamped@example.com")
		require.NoError(t, repo.Create(ctx, sub))

		sentAt := time.Now().UTC()
		require.NoError(t, repo.UpdateLastEmailSent(ctx, sub.ID, sentAt))

		got, err := repo.GetByEmail(ctx, "stamped@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.LastEmailSent)
		assert.WithinDuration(t, sentAt, *got.LastEmailSent, time.Second)
	})
}

func TestPostgresSubscriberRepository_DigestAndCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresSubscriberRepository(testDB.Pool)
	ctx := context.Background()

	seed := func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		for i := 0; i < 3; i++ {
			sub := newTestSubscriber(fmt.Sprintf("verified%d@example.com", i))
			sub.IsVerified = true
			sub.VerifyToken = nil
			require.NoError(t, repo.Create(ctx, sub))
		}

		unverified := newTestSubscriber("unverified@example.com")
		require.NoError(t, repo.Create(ctx, unverified))

		inactive := newTestSubscriber("inactive@example.com")
		inactive.IsVerified = true
		inactive.VerifyToken = nil
		inactive.IsActive = false
		require.NoError(t, repo.Create(ctx, inactive))

		noWeekly := newTestSubscriber("breaking-only@example.com")
		noWeekly.IsVerified = true
		noWeekly.VerifyToken = nil
		noWeekly.Preferences = []string{"breaking"}
		require.NoError(t, repo.Create(ctx, noWeekly))
	}

	t.Run("digest list is verified active weekly only", func(t *testing.T) {
		seed(t)

		subs, err := repo.ListForDigest(ctx, domain.PreferenceWeekly)
		require.NoError(t, err)
		require.Len(t, subs, 3)
		for _, sub := range subs {
			assert.True(t, sub.IsVerified)
			assert.True(t, sub.IsActive)
			assert.Contains(t, sub.Preferences, "weekly")
		}
	})

	t.Run("counts", func(t *testing.T) {
		seed(t)

		active, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, active)

		verified, err := repo.CountVerified(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, verified)
	})
}
