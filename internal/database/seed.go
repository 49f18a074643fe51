package database

import (
	"log/slog"

	"github.com/friendmatch/backend/internal/models"
	"gorm.io/gorm/clause"
)

// defaultInterests is the reference catalog. IDs are fixed so that stored
// selections stay stable across deployments.
var defaultInterests = []models.Interest{
	{ID: 1, Name: "Hiking", Category: "Outdoors"},
	{ID: 2, Name: "Camping", Category: "Outdoors"},
	{ID: 3, Name: "Cycling", Category: "Outdoors"},
	{ID: 4, Name: "Rock Climbing", Category: "Outdoors"},
	{ID: 5, Name: "Running", Category: "Sports"},
	{ID: 6, Name: "Football", Category: "Sports"},
	{ID: 7, Name: "Basketball", Category: "Sports"},
	{ID: 8, Name: "Tennis", Category: "Sports"},
	{ID: 9, Name: "Swimming", Category: "Sports"},
	{ID: 10, Name: "Yoga", Category: "Sports"},
	{ID: 11, Name: "Chess", Category: "Games"},
	{ID: 12, Name: "Board Games", Category: "Games"},
	{ID: 13, Name: "Video Games", Category: "Games"},
	{ID: 14, Name: "Cooking", Category: "Food"},
	{ID: 15, Name: "Baking", Category: "Food"},
	{ID: 16, Name: "Coffee", Category: "Food"},
	{ID: 17, Name: "Wine Tasting", Category: "Food"},
	{ID: 18, Name: "Photography", Category: "Arts"},
	{ID: 19, Name: "Painting", Category: "Arts"},
	{ID: 20, Name: "Writing", Category: "Arts"},
	{ID: 21, Name: "Music", Category: "Arts"},
	{ID: 22, Name: "Dancing", Category: "Arts"},
	{ID: 23, Name: "Reading", Category: "Culture"},
	{ID: 24, Name: "Movies", Category: "Culture"},
	{ID: 25, Name: "Theater", Category: "Culture"},
	{ID: 26, Name: "Museums", Category: "Culture"},
	{ID: 27, Name: "Travel", Category: "Lifestyle"},
	{ID: 28, Name: "Gardening", Category: "Lifestyle"},
	{ID: 29, Name: "Volunteering", Category: "Lifestyle"},
	{ID: 30, Name: "Programming", Category: "Tech"},
}

// SeedInterests inserts the interest catalog, skipping rows that already
// exist. Safe to run on every startup.
func SeedInterests() error {
	result := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaultInterests)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		slog.Info("interest catalog seeded", "inserted", result.RowsAffected)
	}
	return nil
}
