package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bharathz8/Nutri-Go/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserProfile{}, &models.NutritionEntry{}))
	return db
}

func testProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID:        "u1",
		Height:        175,
		Weight:        70,
		Age:           25,
		Gender:        "male",
		ActivityLevel: "moderate",
		Goal:          "maintain", // target 2594
	}
}

func sampleRecord() models.NutritionRecord {
	rec := models.DefaultNutritionRecord()
	rec.ProductName = "Granola Bar"
	rec.ServingSize = "1 bar"
	rec.Calories = 200
	rec.Protein = 5
	rec.TotalCarbohydrates = 30
	rec.TotalFat = 7
	rec.Sodium = 85
	rec.VitaminC = 12
	rec.Iron = 1.5
	rec.IngredientsList = []string{"oats", "honey"}
	return rec
}

func TestStoreScalesByQuantityOnce(t *testing.T) {
	svc := NewEntryService(testDB(t))

	entry, err := svc.Store("u1", sampleRecord(), 2, "snack")
	require.NoError(t, err)

	assert.Equal(t, 400.0, entry.Calories)
	assert.Equal(t, 10.0, entry.Protein)
	assert.Equal(t, 60.0, entry.TotalCarbohydrates)
	assert.Equal(t, 14.0, entry.TotalFat)
	assert.Equal(t, 170.0, entry.Sodium)
	assert.Equal(t, 2.0, entry.Quantity)

	// The raw record stays per-serving.
	assert.Equal(t, 200.0, entry.RawNutritionData.Calories)

	// The stored row matches what Store returned.
	var loaded models.NutritionEntry
	require.NoError(t, svc.db.First(&loaded, entry.ID).Error)
	assert.Equal(t, 400.0, loaded.Calories)
	assert.Equal(t, map[string]float64{"vitamin_a": 0, "vitamin_c": 12, "vitamin_d": 0}, loaded.Vitamins)
	assert.Equal(t, map[string]float64{"calcium": 0, "iron": 1.5, "potassium": 0}, loaded.Minerals)
	assert.Equal(t, []string{"oats", "honey"}, loaded.IngredientsList)
}

func TestHistoryNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewEntryService(db)

	now := time.Now()
	for i, name := range []string{"first", "second", "third"} {
		rec := sampleRecord()
		rec.ProductName = name
		entry, err := svc.Store("u1", rec, 1, "snack")
		require.NoError(t, err)
		// Space creation times out so the ordering is deterministic.
		require.NoError(t, db.Model(&models.NutritionEntry{}).
			Where("id = ?", entry.ID).
			Update("created_at", now.Add(time.Duration(i)*time.Minute)).Error)
	}

	history, err := svc.History("u1", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "third", history[0].ProductName)
	assert.Equal(t, "second", history[1].ProductName)
}

func TestDailyIntakeAggregation(t *testing.T) {
	svc := NewEntryService(testDB(t))

	rec := sampleRecord()
	_, err := svc.Store("u1", rec, 1, "breakfast")
	require.NoError(t, err)
	_, err = svc.Store("u1", rec, 2, "lunch")
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	out, err := svc.DailyIntake(testProfile(), today)
	require.NoError(t, err)

	assert.Equal(t, 600.0, out.TotalCalories)
	assert.Equal(t, 15.0, out.TotalProtein)
	assert.Equal(t, 2594, out.DailyCalorieTarget)
	assert.Equal(t, 2594-600.0, out.CaloriesRemaining)
	assert.InDelta(t, 600.0/2594*100, out.CompletionPercentage, 0.001)
	assert.Equal(t, 2, out.EntriesCount)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, "Granola Bar", out.Entries[0].ProductName)
}

func TestDailyIntakeCompletionCappedAt100(t *testing.T) {
	svc := NewEntryService(testDB(t))

	rec := sampleRecord()
	rec.Calories = 3000
	_, err := svc.Store("u1", rec, 1, "dinner")
	require.NoError(t, err)

	out, err := svc.DailyIntake(testProfile(), time.Now().Format("2006-01-02"))
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.CompletionPercentage)
	assert.Negative(t, out.CaloriesRemaining)
}

func TestWeeklySummaryEmptyWeek(t *testing.T) {
	svc := NewEntryService(testDB(t))

	start := time.Date(2025, 8, 18, 0, 0, 0, 0, time.Local)
	out, err := svc.WeeklySummary(testProfile(), start)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-18", out.WeekStart)
	assert.Equal(t, "2025-08-24", out.WeekEnd)
	require.Len(t, out.DailyData, 7)
	for _, day := range out.DailyData {
		assert.Zero(t, day.Calories)
		assert.Zero(t, day.Protein)
		assert.Zero(t, day.EntriesCount)
	}
	assert.Zero(t, out.WeeklyTotalCalories)
	assert.Zero(t, out.AverageDailyCalories)
	assert.Equal(t, 2594, out.DailyTarget)
	assert.Equal(t, 2594*7, out.WeeklyTarget)
}

func TestWeeklySummaryCountsEntriesPerDay(t *testing.T) {
	svc := NewEntryService(testDB(t))

	rec := sampleRecord()
	_, err := svc.Store("u1", rec, 1, "snack")
	require.NoError(t, err)

	start := time.Now().AddDate(0, 0, -6)
	out, err := svc.WeeklySummary(testProfile(), start)
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	var found bool
	for _, day := range out.DailyData {
		if day.Date == today {
			found = true
			assert.Equal(t, 200.0, day.Calories)
			assert.Equal(t, 1, day.EntriesCount)
		}
	}
	assert.True(t, found)
	assert.Equal(t, 200.0, out.WeeklyTotalCalories)
	assert.InDelta(t, 200.0/7, out.AverageDailyCalories, 0.001)
}
