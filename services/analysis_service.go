package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bharathz8/Nutri-Go/config"
	"github.com/bharathz8/Nutri-Go/models"
	"github.com/bharathz8/Nutri-Go/utils"
)

// AnalysisService asks the language model for a personalized health
// assessment of a freshly stored entry against the user's profile and
// recent history.
type AnalysisService struct {
	token  string
	model  string
	apiURL string
	client *http.Client
}

func NewAnalysisService(cfg *config.Config) *AnalysisService {
	return &AnalysisService{
		token:  cfg.HuggingFaceToken,
		model:  cfg.QwenModel,
		apiURL: cfg.QwenAPIURL,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Analyze returns the assessment and whether the default analysis was
// substituted because the call or the parse failed.
func (s *AnalysisService) Analyze(ctx context.Context, entry *models.NutritionEntry, history []models.NutritionEntry, profile *models.UserProfile) (models.HealthAnalysis, bool) {
	payload := chatRequest{
		Model:       s.model,
		Messages:    []chatMessage{{Role: "user", Content: buildAnalysisPrompt(entry, history, profile)}},
		MaxTokens:   1500,
		Temperature: 0.3,
	}

	content, err := postChat(ctx, s.client, s.apiURL, s.token, payload)
	if err != nil {
		log.WithError(err).Error("Health analysis call failed, using default analysis")
		return models.DefaultAnalysis(), true
	}

	candidate, found := utils.ExtractJSONObject(content)
	if !found {
		log.Error("No JSON object in analysis reply, using default analysis")
		return models.DefaultAnalysis(), true
	}

	analysis := models.DefaultAnalysis()
	if err := json.Unmarshal([]byte(candidate), &analysis); err != nil {
		log.WithError(err).Error("Could not parse analysis JSON, using default analysis")
		return models.DefaultAnalysis(), true
	}
	return analysis, false
}

// buildAnalysisPrompt condenses the current entry, the profile, and
// the 7 most recent history entries into the analysis instruction.
func buildAnalysisPrompt(entry *models.NutritionEntry, history []models.NutritionEntry, profile *models.UserProfile) string {
	dailyCalories := utils.DailyCalorieTarget(profile)

	type recentEntry struct {
		Date     string  `json:"date"`
		Product  string  `json:"product"`
		Calories float64 `json:"calories"`
		Sodium   float64 `json:"sodium"`
		Sugar    float64 `json:"sugar"`
		Fat      float64 `json:"fat"`
	}
	recent := make([]recentEntry, 0, 7)
	for i, h := range history {
		if i >= 7 {
			break
		}
		recent = append(recent, recentEntry{
			Date:     h.Date,
			Product:  h.ProductName,
			Calories: h.Calories,
			Sodium:   h.Sodium,
			Sugar:    h.TotalSugars,
			Fat:      h.TotalFat,
		})
	}

	current := map[string]interface{}{
		"product_name": entry.ProductName,
		"calories":     entry.Calories,
		"protein":      entry.Protein,
		"carbs":        entry.TotalCarbohydrates,
		"fat":          entry.TotalFat,
		"sodium":       entry.Sodium,
		"sugar":        entry.TotalSugars,
		"ingredients":  entry.IngredientsList,
	}

	currentJSON, _ := json.MarshalIndent(current, "", "  ")
	recentJSON, _ := json.MarshalIndent(recent, "", "  ")

	return fmt.Sprintf(`Analyze this nutrition data for health implications:

CURRENT PRODUCT: %s

USER PROFILE:
- Age: %d, Gender: %s
- Daily calorie target: %d
- Health conditions: %v
- Activity level: %s

RECENT INTAKE (last 7 entries): %s

Please provide analysis in this JSON format:
{
  "health_warnings": ["warning1", "warning2"],
  "nutritional_assessment": "detailed assessment",
  "ingredient_explanations": {
    "ingredient_name": {
      "simple_name": "simple term",
      "explanation": "what it does",
      "health_impact": "positive/negative/neutral"
    }
  },
  "recommendations": ["recommendation1", "recommendation2"],
  "daily_intake_analysis": "analysis of how this fits daily needs"
}

Focus on scientific ingredients and provide simple explanations.`,
		currentJSON, profile.Age, profile.Gender, dailyCalories,
		profile.HealthConditions, profile.ActivityLevel, recentJSON)
}
