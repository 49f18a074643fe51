package services

import (
	"context"
	"testing"

	"github.com/friendmatch/backend/internal/dto"
	"github.com/friendmatch/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func friendIDs(friends []dto.FriendResponse) []uuid.UUID {
	ids := make([]uuid.UUID, len(friends))
	for i, f := range friends {
		ids[i] = f.ID
	}
	return ids
}

func TestSendRequestToSelf(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")

	svc := NewFriendshipService(db, testConfig())
	_, err := svc.SendRequest(context.Background(), userA, userA)
	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestSendRequestDuplicatePending(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")

	svc := NewFriendshipService(db, testConfig())
	_, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)

	_, err = svc.SendRequest(context.Background(), userA, userB)
	assert.ErrorIs(t, err, ErrRequestExists)

	// The reverse direction is also blocked while one side is pending.
	_, err = svc.SendRequest(context.Background(), userB, userA)
	assert.ErrorIs(t, err, ErrRequestExists)
}

func TestSendRequestToExistingFriend(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)
	_, err = svc.Respond(context.Background(), req.ID, userB, true)
	require.NoError(t, err)

	_, err = svc.SendRequest(context.Background(), userA, userB)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
	_, err = svc.SendRequest(context.Background(), userB, userA)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
}

func TestRespondAcceptCreatesSymmetricFriendship(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)

	resp, err := svc.Respond(context.Background(), req.ID, userB, true)
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, resp.Status)

	friendsOfA, err := svc.ListFriends(context.Background(), userA)
	require.NoError(t, err)
	assert.Contains(t, friendIDs(friendsOfA), userB)

	friendsOfB, err := svc.ListFriends(context.Background(), userB)
	require.NoError(t, err)
	assert.Contains(t, friendIDs(friendsOfB), userA)

	// Exactly one row, stored in canonical orientation.
	var rows []models.Friendship
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Less(t, rows[0].User1ID.String(), rows[0].User2ID.String())
}

func TestRespondRejectLeavesNoFriendship(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)

	resp, err := svc.Respond(context.Background(), req.ID, userB, false)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, resp.Status)

	var count int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&count).Error)
	assert.Zero(t, count)

	friendsOfA, err := svc.ListFriends(context.Background(), userA)
	require.NoError(t, err)
	assert.Empty(t, friendsOfA)
	friendsOfB, err := svc.ListFriends(context.Background(), userB)
	require.NoError(t, err)
	assert.Empty(t, friendsOfB)
}

func TestRespondOnlyReceiverMayRespond(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")
	intruder := seedUser(t, db, "intruder")

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), req.ID, userA, true)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	_, err = svc.Respond(context.Background(), req.ID, intruder, true)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	// The request is still pending for the actual receiver.
	resp, err := svc.Respond(context.Background(), req.ID, userB, true)
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, resp.Status)
}

func TestRespondTerminalStatesAreFinal(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), req.ID, userB, true)
	require.NoError(t, err)

	// Responding again hits zero rows: the conditional update only
	// matches pending requests.
	_, err = svc.Respond(context.Background(), req.ID, userB, false)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	var stored models.FriendRequest
	require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
	assert.Equal(t, models.RequestAccepted, stored.Status)
}

func TestRemoveFriendshipIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)
	_, err = svc.Respond(context.Background(), req.ID, userB, true)
	require.NoError(t, err)

	// Removal works regardless of which side acts or how the row is
	// oriented, and repeating it is not an error.
	require.NoError(t, svc.RemoveFriendship(context.Background(), userB, userA))
	require.NoError(t, svc.RemoveFriendship(context.Background(), userB, userA))
	require.NoError(t, svc.RemoveFriendship(context.Background(), userA, userB))

	friends, err := svc.ListFriends(context.Background(), userA)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestListFriendsDecoratesPairwiseSharedInterests(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db,
		models.Interest{ID: 1, Name: "Chess", Category: "Games"},
		models.Interest{ID: 2, Name: "Hiking", Category: "Outdoors"},
		models.Interest{ID: 3, Name: "Cooking", Category: "Food"},
	)
	userA := seedUser(t, db, "userA", 1, 2)
	userB := seedUser(t, db, "userB", 1, 3)

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)
	_, err = svc.Respond(context.Background(), req.ID, userB, true)
	require.NoError(t, err)

	friends, err := svc.ListFriends(context.Background(), userA)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	// Only the intersection shows up, not the friend's full selection.
	assert.Equal(t, []string{"Chess"}, friends[0].MatchingInterests)
}

func TestListFriendsSurvivesBrokenDecoration(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db, models.Interest{ID: 1, Name: "Chess", Category: "Games"})
	userA := seedUser(t, db, "userA", 1)
	userB := seedUser(t, db, "userB", 1)

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)
	_, err = svc.Respond(context.Background(), req.ID, userB, true)
	require.NoError(t, err)

	// Break the decoration join; the friend list must still come back,
	// just without shared-interest names.
	require.NoError(t, db.Exec("DROP TABLE interests").Error)

	friends, err := svc.ListFriends(context.Background(), userA)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, userB, friends[0].ID)
	assert.Equal(t, []string{}, friends[0].MatchingInterests)
}

func TestPendingRequestPairUniqueAtStoreLevel(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")

	require.NoError(t, db.Create(&models.FriendRequest{
		ID: uuid.New(), SenderID: userA, ReceiverID: userB, Status: models.RequestPending,
	}).Error)

	// A second pending row for the pair is rejected in either direction,
	// even when inserted past the service guards.
	err := db.Create(&models.FriendRequest{
		ID: uuid.New(), SenderID: userB, ReceiverID: userA, Status: models.RequestPending,
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Handled requests free the slot for a new one.
	require.NoError(t, db.Model(&models.FriendRequest{}).
		Where("sender_id = ?", userA).
		Update("status", models.RequestRejected).Error)
	require.NoError(t, db.Create(&models.FriendRequest{
		ID: uuid.New(), SenderID: userB, ReceiverID: userA, Status: models.RequestPending,
	}).Error)
}

func TestListPendingRequestsJoinsSenderProfile(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")
	require.NoError(t, db.Model(&models.Profile{}).Where("id = ?", userA).
		Updates(map[string]interface{}{"full_name": "User A", "bio": "hello"}).Error)

	svc := NewFriendshipService(db, testConfig())
	req, err := svc.SendRequest(context.Background(), userA, userB)
	require.NoError(t, err)

	pending, err := svc.ListPendingRequests(context.Background(), userB)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, req.ID, pending[0].ID)
	assert.Equal(t, userA, pending[0].SenderID)
	assert.Equal(t, "userA", pending[0].SenderUsername)
	assert.Equal(t, "User A", pending[0].SenderFullName)
	assert.Equal(t, models.RequestPending, pending[0].Status)

	// Nothing pending for the sender side.
	pendingForSender, err := svc.ListPendingRequests(context.Background(), userA)
	require.NoError(t, err)
	assert.Empty(t, pendingForSender)

	// Accepting clears the queue.
	_, err = svc.Respond(context.Background(), req.ID, userB, true)
	require.NoError(t, err)
	pending, err = svc.ListPendingRequests(context.Background(), userB)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCanonicalPairOrdersIDs(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	u1, u2 := models.CanonicalPair(a, b)
	assert.Equal(t, a, u1)
	assert.Equal(t, b, u2)

	u1, u2 = models.CanonicalPair(b, a)
	assert.Equal(t, a, u1)
	assert.Equal(t, b, u2)
}

func TestAcceptedFriendshipUniquePerPair(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")

	user1, user2 := models.CanonicalPair(userA, userB)
	require.NoError(t, db.Create(&models.Friendship{User1ID: user1, User2ID: user2}).Error)

	// The composite primary key rejects a second row for the pair.
	err := db.Create(&models.Friendship{User1ID: user1, User2ID: user2}).Error
	assert.Error(t, err)
	assert.NotErrorIs(t, err, gorm.ErrRecordNotFound)
}
