package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/bharathz8/Nutri-Go/models"
	"github.com/bharathz8/Nutri-Go/services"
	"github.com/bharathz8/Nutri-Go/utils"
)

const maxUploadBytes = 10 * 1024 * 1024

// Narrow views of the AI clients so tests can substitute fakes.
type NutritionExtractor interface {
	Extract(ctx context.Context, imageData []byte) (models.NutritionRecord, bool)
}

type HealthAnalyzer interface {
	Analyze(ctx context.Context, entry *models.NutritionEntry, history []models.NutritionEntry, profile *models.UserProfile) (models.HealthAnalysis, bool)
}

type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, bool)
	Available() bool
}

// AnalyzeController runs the label analysis pipeline: normalize the
// upload, extract nutrition, persist and analyze for known users, then
// translate the user-facing text when needed.
type AnalyzeController struct {
	Users      *services.UserService
	Entries    *services.EntryService
	Extractor  NutritionExtractor
	Analyzer   HealthAnalyzer
	Translator Translator
}

func NewAnalyzeController(users *services.UserService, entries *services.EntryService, extractor NutritionExtractor, analyzer HealthAnalyzer, translator Translator) *AnalyzeController {
	return &AnalyzeController{
		Users:      users,
		Entries:    entries,
		Extractor:  extractor,
		Analyzer:   analyzer,
		Translator: translator,
	}
}

func (h *AnalyzeController) AnalyzeNutrition(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload an image file"})
		return
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload an image file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image too large (max 10MB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(imageData) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image too large (max 10MB)"})
		return
	}

	userID := c.DefaultPostForm("user_id", "")
	mealType := c.DefaultPostForm("meal_type", "snack")
	preferredLanguage := c.DefaultPostForm("preferred_language", models.DefaultLanguage)
	quantity, err := strconv.ParseFloat(c.DefaultPostForm("quantity", "1.0"), 64)
	if err != nil || quantity < 0 {
		quantity = 1.0
	}

	normalized, err := utils.NormalizeImage(imageData)
	if err != nil {
		// The raw upload is forwarded as-is; the extraction model
		// handles most formats anyway.
		log.WithError(err).Warn("Image normalization failed, forwarding original upload")
	}

	ctx := c.Request.Context()
	rec, usedFallback := h.Extractor.Extract(ctx, normalized)
	if usedFallback {
		log.Info("Extraction fell back to the default nutrition record")
	}

	var profile *models.UserProfile
	analysis := models.DefaultAnalysis()
	languageToUse := preferredLanguage

	if userID != "" {
		profile, err = h.Users.Get(userID)
		switch {
		case err == nil:
			languageToUse = profile.PreferredLanguage

			entry, storeErr := h.Entries.Store(userID, rec, quantity, mealType)
			if storeErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": storeErr.Error()})
				return
			}
			history, histErr := h.Entries.History(userID, 30)
			if histErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": histErr.Error()})
				return
			}
			analysis, _ = h.Analyzer.Analyze(ctx, entry, history, profile)
		case errors.Is(err, services.ErrUserNotFound):
			profile = nil
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	languageToUse = models.ClampLanguage(languageToUse)

	summary := composeSummary(rec, quantity, analysis)
	ingredientExplanation := composeIngredientExplanation(analysis)

	if languageToUse != models.DefaultLanguage {
		summary, _ = h.Translator.Translate(ctx, summary, languageToUse)
		if ingredientExplanation != "" {
			ingredientExplanation, _ = h.Translator.Translate(ctx, ingredientExplanation, languageToUse)
		}
		for i, warning := range analysis.HealthWarnings {
			analysis.HealthWarnings[i], _ = h.Translator.Translate(ctx, warning, languageToUse)
		}
		for i, recommendation := range analysis.Recommendations {
			analysis.Recommendations[i], _ = h.Translator.Translate(ctx, recommendation, languageToUse)
		}
	}

	userContext := gin.H{"bmi": nil, "daily_calorie_target": nil}
	if profile != nil {
		userContext = gin.H{
			"bmi":                  utils.CalculateBMI(profile.Height, profile.Weight),
			"daily_calorie_target": utils.DailyCalorieTarget(profile),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                true,
		"extracted_nutrition":    rec,
		"quantity":               quantity,
		"health_analysis":        analysis,
		"comprehensive_summary":  summary,
		"ingredient_explanation": ingredientExplanation,
		"language_used":          languageToUse,
		"user_context":           userContext,
	})
}

// composeSummary renders the human-readable report over the scaled
// nutrition values and the analysis text.
func composeSummary(rec models.NutritionRecord, quantity float64, analysis models.HealthAnalysis) string {
	return fmt.Sprintf(`
Product: %s
Serving Size: %s
Quantity: %g

NUTRITION (per %g serving):
- Calories: %g
- Protein: %gg
- Carbohydrates: %gg
- Fat: %gg
- Sodium: %gmg

HEALTH ANALYSIS:
%s

DAILY INTAKE ANALYSIS:
%s
`,
		rec.ProductName, rec.ServingSize, quantity, quantity,
		rec.Calories*quantity, rec.Protein*quantity,
		rec.TotalCarbohydrates*quantity, rec.TotalFat*quantity,
		rec.Sodium*quantity,
		analysis.NutritionalAssessment, analysis.DailyIntakeAnalysis)
}

func composeIngredientExplanation(analysis models.HealthAnalysis) string {
	if len(analysis.IngredientExplanations) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nINGREDIENT EXPLANATIONS:\n")
	for ingredient, info := range analysis.IngredientExplanations {
		simple := info.SimpleName
		if simple == "" {
			simple = ingredient
		}
		explanation := info.Explanation
		if explanation == "" {
			explanation = "Common food ingredient"
		}
		impact := info.HealthImpact
		if impact == "" {
			impact = "Neutral"
		}
		fmt.Fprintf(&b, "\n%s: %s\n", ingredient, simple)
		fmt.Fprintf(&b, "What it is: %s\n", explanation)
		fmt.Fprintf(&b, "Health impact: %s\n", impact)
	}
	return b.String()
}
