package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/bharathz8/Nutri-Go/models"
	"github.com/bharathz8/Nutri-Go/utils"
)

const dateLayout = "2006-01-02"

// EntryService owns nutrition entry persistence and the daily/weekly
// intake aggregates computed over it.
type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

// Store writes one entry for userID, scaling every numeric nutrient by
// quantity. This is the only place scaling happens; the stored row is
// immutable afterwards.
func (s *EntryService) Store(userID string, rec models.NutritionRecord, quantity float64, mealType string) (*models.NutritionEntry, error) {
	entry := &models.NutritionEntry{
		UserID:   userID,
		Date:     time.Now().Format(dateLayout),
		MealType: mealType,
		Quantity: quantity,

		ProductName: rec.ProductName,
		ServingSize: rec.ServingSize,

		Calories:           rec.Calories * quantity,
		Protein:            rec.Protein * quantity,
		TotalCarbohydrates: rec.TotalCarbohydrates * quantity,
		TotalFat:           rec.TotalFat * quantity,
		SaturatedFat:       rec.SaturatedFat * quantity,
		TransFat:           rec.TransFat * quantity,
		DietaryFiber:       rec.DietaryFiber * quantity,
		TotalSugars:        rec.TotalSugars * quantity,
		AddedSugars:        rec.AddedSugars * quantity,
		Cholesterol:        rec.Cholesterol * quantity,
		Sodium:             rec.Sodium * quantity,

		Vitamins: map[string]float64{
			"vitamin_a": rec.VitaminA,
			"vitamin_c": rec.VitaminC,
			"vitamin_d": rec.VitaminD,
		},
		Minerals: map[string]float64{
			"calcium":   rec.Calcium,
			"iron":      rec.Iron,
			"potassium": rec.Potassium,
		},
		IngredientsList:  rec.IngredientsList,
		RawNutritionData: rec,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// History returns up to limit entries for userID, newest first.
func (s *EntryService) History(userID string, limit int) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) entriesOn(userID, date string) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&entries).Error
	return entries, err
}

// EntrySummary is the condensed per-entry view in the daily report.
type EntrySummary struct {
	ID          uint    `json:"id"`
	ProductName string  `json:"product_name"`
	Calories    float64 `json:"calories"`
	MealType    string  `json:"meal_type"`
	Quantity    float64 `json:"quantity"`
}

type DailyIntake struct {
	Date                 string         `json:"date"`
	TotalCalories        float64        `json:"total_calories"`
	TotalProtein         float64        `json:"total_protein"`
	TotalCarbs           float64        `json:"total_carbs"`
	TotalFat             float64        `json:"total_fat"`
	DailyCalorieTarget   int            `json:"daily_calorie_target"`
	CaloriesRemaining    float64        `json:"calories_remaining"`
	CompletionPercentage float64        `json:"completion_percentage"`
	EntriesCount         int            `json:"entries_count"`
	Entries              []EntrySummary `json:"entries"`
}

// DailyIntake sums the user's entries for one calendar date against
// the profile's calorie target. The completion percentage is capped
// at 100.
func (s *EntryService) DailyIntake(profile *models.UserProfile, date string) (*DailyIntake, error) {
	entries, err := s.entriesOn(profile.UserID, date)
	if err != nil {
		return nil, err
	}

	out := &DailyIntake{
		Date:               date,
		DailyCalorieTarget: utils.DailyCalorieTarget(profile),
		EntriesCount:       len(entries),
		Entries:            make([]EntrySummary, 0, len(entries)),
	}
	for _, e := range entries {
		out.TotalCalories += e.Calories
		out.TotalProtein += e.Protein
		out.TotalCarbs += e.TotalCarbohydrates
		out.TotalFat += e.TotalFat
		out.Entries = append(out.Entries, EntrySummary{
			ID:          e.ID,
			ProductName: e.ProductName,
			Calories:    e.Calories,
			MealType:    e.MealType,
			Quantity:    e.Quantity,
		})
	}

	out.CaloriesRemaining = float64(out.DailyCalorieTarget) - out.TotalCalories
	if out.DailyCalorieTarget > 0 {
		pct := out.TotalCalories / float64(out.DailyCalorieTarget) * 100
		if pct > 100 {
			pct = 100
		}
		out.CompletionPercentage = pct
	}

	return out, nil
}

type DailyAggregate struct {
	Date         string  `json:"date"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	EntriesCount int     `json:"entries_count"`
}

type WeeklySummary struct {
	WeekStart            string           `json:"week_start"`
	WeekEnd              string           `json:"week_end"`
	DailyData            []DailyAggregate `json:"daily_data"`
	WeeklyTotalCalories  float64          `json:"weekly_total_calories"`
	AverageDailyCalories float64          `json:"average_daily_calories"`
	DailyTarget          int              `json:"daily_target"`
	WeeklyTarget         int              `json:"weekly_target"`
}

// WeeklySummary aggregates 7 consecutive days starting at start.
func (s *EntryService) WeeklySummary(profile *models.UserProfile, start time.Time) (*WeeklySummary, error) {
	out := &WeeklySummary{
		WeekStart:   start.Format(dateLayout),
		WeekEnd:     start.AddDate(0, 0, 6).Format(dateLayout),
		DailyData:   make([]DailyAggregate, 0, 7),
		DailyTarget: utils.DailyCalorieTarget(profile),
	}
	out.WeeklyTarget = out.DailyTarget * 7

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		entries, err := s.entriesOn(profile.UserID, date)
		if err != nil {
			return nil, err
		}

		day := DailyAggregate{Date: date, EntriesCount: len(entries)}
		for _, e := range entries {
			day.Calories += e.Calories
			day.Protein += e.Protein
		}
		out.DailyData = append(out.DailyData, day)
		out.WeeklyTotalCalories += day.Calories
	}

	out.AverageDailyCalories = out.WeeklyTotalCalories / 7
	return out, nil
}
