package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/friendmatch/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesNoInterestsReturnsEmpty(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db, models.Interest{ID: 1, Name: "Chess", Category: "Games"})
	loner := seedUser(t, db, "loner")
	seedUser(t, db, "other", 1)

	svc := NewMatchService(db, testConfig())
	matches, err := svc.FindMatches(context.Background(), loner)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchesNeverContainsCaller(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db,
		models.Interest{ID: 1, Name: "Chess", Category: "Games"},
		models.Interest{ID: 2, Name: "Hiking", Category: "Outdoors"},
	)
	caller := seedUser(t, db, "caller", 1, 2)
	seedUser(t, db, "other", 1)

	svc := NewMatchService(db, testConfig())
	matches, err := svc.FindMatches(context.Background(), caller)
	require.NoError(t, err)
	for _, m := range matches {
		assert.NotEqual(t, caller, m.ID)
	}
}

func TestFindMatchesSharedInterestScenario(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db,
		models.Interest{ID: 1, Name: "Chess", Category: "Games"},
		models.Interest{ID: 2, Name: "Hiking", Category: "Outdoors"},
	)
	userA := seedUser(t, db, "userA", 1, 2)
	userB := seedUser(t, db, "userB", 1)
	seedUser(t, db, "userC") // no interests, never discoverable

	svc := NewMatchService(db, testConfig())
	matches, err := svc.FindMatches(context.Background(), userA)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, userB, matches[0].ID)
	assert.Equal(t, 1, matches[0].MatchCount)
	assert.Equal(t, []string{"Chess"}, matches[0].MatchingInterests)
}

func TestFindMatchesRankingAndTieBreak(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db,
		models.Interest{ID: 1, Name: "Chess", Category: "Games"},
		models.Interest{ID: 2, Name: "Hiking", Category: "Outdoors"},
		models.Interest{ID: 3, Name: "Cooking", Category: "Food"},
	)
	caller := seedUser(t, db, "caller", 1, 2, 3)
	strong := seedUser(t, db, "strong", 1, 2, 3)
	weak1 := seedUser(t, db, "weak1", 1)
	weak2 := seedUser(t, db, "weak2", 2)

	svc := NewMatchService(db, testConfig())
	matches, err := svc.FindMatches(context.Background(), caller)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, strong, matches[0].ID)
	assert.Equal(t, 3, matches[0].MatchCount)
	assert.ElementsMatch(t, []string{"Chess", "Hiking", "Cooking"}, matches[0].MatchingInterests)

	// Counts never increase down the list.
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchCount, matches[i].MatchCount)
	}

	// Equal counts fall back to user id ascending.
	tied := []string{matches[1].ID.String(), matches[2].ID.String()}
	assert.Less(t, tied[0], tied[1])
	assert.ElementsMatch(t, []string{weak1.String(), weak2.String()}, tied)
}

func TestFindMatchesCapsAtTwenty(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db, models.Interest{ID: 1, Name: "Chess", Category: "Games"})
	caller := seedUser(t, db, "caller", 1)
	for i := 0; i < 25; i++ {
		seedUser(t, db, fmt.Sprintf("candidate%d", i), 1)
	}

	svc := NewMatchService(db, testConfig())
	matches, err := svc.FindMatches(context.Background(), caller)
	require.NoError(t, err)
	assert.Len(t, matches, 20)
}
