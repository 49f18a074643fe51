package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStoreDeadlineSurfacesAsTimeoutSentinel(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	cfg.StoreTimeout = time.Nanosecond

	svc := NewMatchService(db, cfg)
	_, err := svc.FindMatches(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrStoreTimeout)
}

func TestStoreDeadlineOnFriendListing(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	cfg.StoreTimeout = time.Nanosecond

	svc := NewFriendshipService(db, cfg)
	_, err := svc.ListFriends(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrStoreTimeout)
}
