//go:build integration
// +build integration

package integration_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/repository"
)

func seedUser(t *testing.T, repos *repository.Repositories, id int64, firstName string) *domain.User {
	t.Helper()
	user := &domain.User{ID: id, FirstName: firstName}
	require.NoError(t, repos.User.Upsert(context.Background(), user))
	return user
}

func seedWish(t *testing.T, repos *repository.Repositories, ownerID int64, title string) *domain.Wish {
	t.Helper()
	wish := &domain.Wish{UserID: ownerID, Title: title, Status: domain.WishStatusActive}
	require.NoError(t, repos.Wish.Create(context.Background(), wish))
	return wish
}

// TestSocialFlow drives the constraint-backed invariants end to end
// against a real database: wish listing order and soft-delete filtering,
// the directed friend edge read from both sides, the unique-pair guard,
// and the idempotent gift claim.
func TestSocialFlow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	ctx := context.Background()
	repos := repository.NewRepositories(env.DB)

	alice := seedUser(t, repos, 100, "Alice")
	bob := seedUser(t, repos, 200, "Bob")

	var first, second, third *domain.Wish

	t.Run("Wish List Active Newest First", func(t *testing.T) {
		first = seedWish(t, repos, alice.ID, "First")
		time.Sleep(10 * time.Millisecond)
		second = seedWish(t, repos, alice.ID, "Second")
		time.Sleep(10 * time.Millisecond)
		third = seedWish(t, repos, alice.ID, "Third")

		require.NoError(t, repos.Wish.SoftDelete(ctx, second.ID))

		wishes, err := repos.Wish.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)

		require.Len(t, wishes, 2)
		assert.Equal(t, third.ID, wishes[0].ID)
		assert.Equal(t, first.ID, wishes[1].ID)

		deleted, err := repos.Wish.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Nil(t, deleted)
	})

	t.Run("Friend Edge Visible From Both Sides Exactly Once", func(t *testing.T) {
		edge := &domain.Friendship{UserID: alice.ID, FriendID: bob.ID, Status: domain.FriendshipPending}
		require.NoError(t, repos.Friendship.Create(ctx, edge))

		pending, err := repos.Friendship.ListPending(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, alice.ID, pending[0].Requester.ID)

		accepted, err := repos.Friendship.Accept(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		require.NotNil(t, accepted)
		assert.Equal(t, domain.FriendshipAccepted, accepted.Status)

		aliceFriends, err := repos.Friendship.ListFriends(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, aliceFriends, 1)
		assert.Equal(t, bob.ID, aliceFriends[0].ID)

		bobFriends, err := repos.Friendship.ListFriends(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, bobFriends, 1)
		assert.Equal(t, alice.ID, bobFriends[0].ID)
	})

	t.Run("Duplicate Edge Rejected By Constraint", func(t *testing.T) {
		dup := &domain.Friendship{UserID: alice.ID, FriendID: bob.ID, Status: domain.FriendshipPending}
		err := repos.Friendship.Create(ctx, dup)

		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "duplicate key"))
	})

	t.Run("Accepting Again Is Not Found", func(t *testing.T) {
		edge, err := repos.Friendship.Accept(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, edge)
	})

	t.Run("Double Mark Converges On One Claim", func(t *testing.T) {
		claim := &domain.Gift{WishID: third.ID, GiverID: bob.ID}
		created, err := repos.Gift.Create(ctx, claim)
		require.NoError(t, err)
		assert.True(t, created)

		again := &domain.Gift{WishID: third.ID, GiverID: bob.ID}
		created, err = repos.Gift.Create(ctx, again)
		require.NoError(t, err)
		assert.False(t, created)

		gifters, err := repos.Gift.ListGifters(ctx, third.ID)
		require.NoError(t, err)
		require.Len(t, gifters, 1)
		assert.Equal(t, bob.ID, gifters[0].Giver.ID)
	})

	t.Run("Unmark Then Remark", func(t *testing.T) {
		require.NoError(t, repos.Gift.Delete(ctx, third.ID, bob.ID))
		require.NoError(t, repos.Gift.Delete(ctx, third.ID, bob.ID))

		gifters, err := repos.Gift.ListGifters(ctx, third.ID)
		require.NoError(t, err)
		assert.Len(t, gifters, 0)

		claim := &domain.Gift{WishID: third.ID, GiverID: bob.ID}
		created, err := repos.Gift.Create(ctx, claim)
		require.NoError(t, err)
		assert.True(t, created)
	})
}
