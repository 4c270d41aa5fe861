package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bharathz8/Nutri-Go/config"
	"github.com/bharathz8/Nutri-Go/models"
)

func analysisFixture() (*models.NutritionEntry, []models.NutritionEntry, *models.UserProfile) {
	entry := &models.NutritionEntry{
		ProductName:     "Instant Noodles",
		Calories:        380,
		Sodium:          1200,
		TotalSugars:     4,
		TotalFat:        14,
		IngredientsList: []string{"wheat flour", "monosodium glutamate"},
	}
	history := make([]models.NutritionEntry, 0, 10)
	for i := 0; i < 10; i++ {
		history = append(history, models.NutritionEntry{
			Date:        fmt.Sprintf("2025-08-%02d", 10-i),
			ProductName: "Snack",
			Calories:    100,
		})
	}
	profile := &models.UserProfile{
		UserID:           "u1",
		Height:           175,
		Weight:           70,
		Age:              25,
		Gender:           "male",
		ActivityLevel:    "moderate",
		Goal:             "maintain",
		HealthConditions: []string{"hypertension"},
	}
	return entry, history, profile
}

func TestBuildAnalysisPrompt(t *testing.T) {
	entry, history, profile := analysisFixture()
	prompt := buildAnalysisPrompt(entry, history, profile)

	assert.Contains(t, prompt, "Instant Noodles")
	assert.Contains(t, prompt, "Age: 25, Gender: male")
	assert.Contains(t, prompt, "Daily calorie target: 2594")
	assert.Contains(t, prompt, "hypertension")
	assert.Contains(t, prompt, "Activity level: moderate")

	// Only the 7 most recent history entries are embedded.
	assert.Equal(t, 7, strings.Count(prompt, `"product": "Snack"`))
}

func TestAnalyzeParsesStructuredReply(t *testing.T) {
	reply := `{
  "health_warnings": ["Very high sodium for someone with hypertension"],
  "nutritional_assessment": "High in sodium and fat",
  "ingredient_explanations": {
    "monosodium glutamate": {"simple_name": "MSG", "explanation": "flavor enhancer", "health_impact": "neutral"}
  },
  "recommendations": ["Limit to one serving"],
  "daily_intake_analysis": "About 15% of your daily calories"
}`
	srv := chatServer(t, reply)
	defer srv.Close()

	svc := NewAnalysisService(&config.Config{
		HuggingFaceToken: "test-token",
		QwenModel:        "test-model",
		QwenAPIURL:       srv.URL,
	})

	entry, history, profile := analysisFixture()
	analysis, usedFallback := svc.Analyze(context.Background(), entry, history, profile)
	assert.False(t, usedFallback)
	assert.Equal(t, []string{"Very high sodium for someone with hypertension"}, analysis.HealthWarnings)
	assert.Equal(t, "High in sodium and fat", analysis.NutritionalAssessment)
	assert.Equal(t, "MSG", analysis.IngredientExplanations["monosodium glutamate"].SimpleName)
}

func TestAnalyzeFallsBackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewAnalysisService(&config.Config{QwenAPIURL: srv.URL})
	entry, history, profile := analysisFixture()
	analysis, usedFallback := svc.Analyze(context.Background(), entry, history, profile)
	assert.True(t, usedFallback)
	assert.Equal(t, models.DefaultAnalysis(), analysis)
}

func TestAnalyzeFallsBackOnProseReply(t *testing.T) {
	srv := chatServer(t, "Everything looks fine to me!")
	defer srv.Close()

	svc := NewAnalysisService(&config.Config{QwenAPIURL: srv.URL})
	entry, history, profile := analysisFixture()
	analysis, usedFallback := svc.Analyze(context.Background(), entry, history, profile)
	assert.True(t, usedFallback)
	assert.Equal(t, models.DefaultAnalysis(), analysis)
}

func TestDefaultAnalysisShape(t *testing.T) {
	a := models.DefaultAnalysis()
	assert.Empty(t, a.HealthWarnings)
	assert.Empty(t, a.IngredientExplanations)
	assert.Equal(t, []string{"Maintain a balanced diet", "Stay hydrated"}, a.Recommendations)
	assert.Equal(t, "Unable to analyze nutrition data at this time", a.NutritionalAssessment)
	assert.Equal(t, "Please consult with a healthcare professional", a.DailyIntakeAnalysis)
}
