package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bharathz8/Nutri-Go/config"
	"github.com/bharathz8/Nutri-Go/models"
	"github.com/bharathz8/Nutri-Go/utils"
)

const extractionPrompt = `Extract ALL nutrition information and ingredients from this food label image. Return ONLY a valid JSON object with this exact structure:
{
  "product_name": "exact product name from label",
  "serving_size": "serving size information",
  "calories": number_only,
  "protein": number_only,
  "total_carbohydrates": number_only,
  "total_fat": number_only,
  "saturated_fat": number_only,
  "trans_fat": number_only,
  "dietary_fiber": number_only,
  "total_sugars": number_only,
  "added_sugars": number_only,
  "cholesterol": number_only,
  "sodium": number_only,
  "vitamin_a": number_only,
  "vitamin_c": number_only,
  "vitamin_d": number_only,
  "calcium": number_only,
  "iron": number_only,
  "potassium": number_only,
  "ingredients_list": ["ingredient1", "ingredient2", "ingredient3"]
}
Extract ALL visible values. Use 0 for missing values. Return ONLY numbers without units (mg, g, etc).`

// ExtractionService sends a normalized label image to the vision model
// and turns its free-form reply into a complete NutritionRecord.
type ExtractionService struct {
	token  string
	model  string
	apiURL string
	client *http.Client
}

func NewExtractionService(cfg *config.Config) *ExtractionService {
	return &ExtractionService{
		token:  cfg.HuggingFaceToken,
		model:  cfg.QwenModel,
		apiURL: cfg.QwenAPIURL,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Extract returns the extracted record and whether the default record
// was substituted because the call or the parse failed. Extraction
// failures never propagate; the caller always gets a usable record.
func (s *ExtractionService) Extract(ctx context.Context, imageData []byte) (models.NutritionRecord, bool) {
	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData)

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: extractionPrompt},
				{Type: "image_url", ImageURL: &imageURLPart{URL: dataURI}},
			},
		}},
		MaxTokens:   1000,
		Temperature: 0.1,
	}

	content, err := postChat(ctx, s.client, s.apiURL, s.token, payload)
	if err != nil {
		log.WithError(err).Error("Nutrition extraction call failed, using default record")
		return models.DefaultNutritionRecord(), true
	}

	rec, ok := parseNutritionReply(content)
	if !ok {
		log.WithField("reply_length", len(content)).Error("Could not parse nutrition JSON from model reply, using default record")
		return models.DefaultNutritionRecord(), true
	}
	return rec, false
}

// parseNutritionReply scrapes a JSON object out of the model's text
// reply, strips unit suffixes from numeric values, and back-fills any
// missing fields with defaults.
func parseNutritionReply(content string) (models.NutritionRecord, bool) {
	candidate, found := utils.ExtractJSONObject(content)
	if !found {
		return models.NutritionRecord{}, false
	}
	cleaned := utils.StripUnitSuffixes(candidate)

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return models.NutritionRecord{}, false
	}
	return models.RecordFromMap(parsed), true
}
