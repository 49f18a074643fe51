package services

import (
	"context"
	"testing"

	"github.com/friendmatch/backend/internal/dto"
	"github.com/friendmatch/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
		Username: "alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.AccessToken)
	assert.NotEmpty(t, reg.RefreshToken)

	// An explicit username creates the profile up front.
	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", reg.User.ID).Error)
	assert.Equal(t, "alice", profile.Username)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "bob@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "bob@example.com", Password: "anothersecret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "carol@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: reg.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	// The old token is revoked on rotation.
	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: reg.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDeleteAccountRemovesSocialGraph(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	authSvc := NewAuthService(db, cfg)
	friendSvc := NewFriendshipService(db, cfg)

	reg, err := authSvc.Register(context.Background(), &dto.RegisterRequest{
		Email: "dave@example.com", Password: "supersecret", Username: "dave",
	})
	require.NoError(t, err)
	other := seedUser(t, db, "other")

	req, err := friendSvc.SendRequest(context.Background(), reg.User.ID, other)
	require.NoError(t, err)
	_, err = friendSvc.Respond(context.Background(), req.ID, other, true)
	require.NoError(t, err)

	require.NoError(t, authSvc.DeleteAccount(context.Background(), reg.User.ID, "supersecret"))

	var users, profiles, requests, friendships int64
	db.Model(&models.User{}).Where("id = ?", reg.User.ID).Count(&users)
	db.Model(&models.Profile{}).Where("id = ?", reg.User.ID).Count(&profiles)
	db.Model(&models.FriendRequest{}).Where("sender_id = ? OR receiver_id = ?", reg.User.ID, reg.User.ID).Count(&requests)
	db.Model(&models.Friendship{}).Where("user1_id = ? OR user2_id = ?", reg.User.ID, reg.User.ID).Count(&friendships)
	assert.Zero(t, users)
	assert.Zero(t, profiles)
	assert.Zero(t, requests)
	assert.Zero(t, friendships)
}

func TestDeleteAccountRequiresPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "eve@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	err = svc.DeleteAccount(context.Background(), reg.User.ID, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
