package repository

import (
	"testing"

	"mindscape/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRepository_Create_AbsorbsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendRepository(db)
	ctx := testContext()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	created, err := repo.Create(ctx, &models.Friendship{
		RequesterID: alice.ID,
		AddresseeID: bob.ID,
		Status:      models.FriendshipStatusPending,
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, &models.Friendship{
		RequesterID: alice.ID,
		AddresseeID: bob.ID,
		Status:      models.FriendshipStatusPending,
	})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestFriendRepository_GetBetweenUsers_BothDirections(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendRepository(db)
	ctx := testContext()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := repo.Create(ctx, &models.Friendship{
		RequesterID: alice.ID,
		AddresseeID: bob.ID,
		Status:      models.FriendshipStatusPending,
	})
	require.NoError(t, err)

	forward, err := repo.GetBetweenUsers(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, forward)

	reverse, err := repo.GetBetweenUsers(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, reverse)
	assert.Equal(t, forward.ID, reverse.ID)
}

func TestFriendRepository_GetBetweenUsers_NoneReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	friendship, err := repo.GetBetweenUsers(testContext(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, friendship)
}

func TestFriendRepository_GetFriends_AcceptedOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendRepository(db)
	ctx := testContext()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	dave := createTestUser(t, db, "dave")

	// bob: accepted, requested by alice. carol: accepted, requested carol -> alice.
	// dave: still pending, must not appear.
	f1 := &models.Friendship{RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusPending}
	_, err := repo.Create(ctx, f1)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, f1.ID, models.FriendshipStatusAccepted))

	f2 := &models.Friendship{RequesterID: carol.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusPending}
	_, err = repo.Create(ctx, f2)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, f2.ID, models.FriendshipStatusAccepted))

	_, err = repo.Create(ctx, &models.Friendship{RequesterID: alice.ID, AddresseeID: dave.ID, Status: models.FriendshipStatusPending})
	require.NoError(t, err)

	friends, err := repo.GetFriends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)

	names := []string{friends[0].Username, friends[1].Username}
	assert.Contains(t, names, "bob")
	assert.Contains(t, names, "carol")
}

func TestFriendRepository_GetPendingRequests(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendRepository(db)
	ctx := testContext()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	// Incoming for alice from bob. Outgoing from alice to carol must not appear.
	_, err := repo.Create(ctx, &models.Friendship{RequesterID: bob.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusPending})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Friendship{RequesterID: alice.ID, AddresseeID: carol.ID, Status: models.FriendshipStatusPending})
	require.NoError(t, err)

	requests, err := repo.GetPendingRequests(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, bob.ID, requests[0].RequesterID)
	assert.Equal(t, "bob", requests[0].Requester.Username)
}

func TestFriendRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendRepository(db)
	ctx := testContext()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	friendship := &models.Friendship{RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusPending}
	_, err := repo.Create(ctx, friendship)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, friendship.ID))

	got, err := repo.GetBetweenUsers(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
