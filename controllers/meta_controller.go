package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bharathz8/Nutri-Go/config"
	"github.com/bharathz8/Nutri-Go/models"
)

// MetaController serves the service metadata, language, and liveness
// endpoints.
type MetaController struct {
	Cfg        *config.Config
	Translator Translator
}

func NewMetaController(cfg *config.Config, translator Translator) *MetaController {
	return &MetaController{Cfg: cfg, Translator: translator}
}

func (h *MetaController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":             "Comprehensive Nutrition Tracker API",
		"version":             "3.0.0",
		"supported_languages": models.LanguageNames(),
		"features": []string{
			"SQL database storage",
			"Qwen image-based nutrition extraction",
			"Qwen health analysis with historical data",
			"Scientific terminology explanation",
			"Multi-language support with Sarvam",
			"Daily and weekly intake tracking",
			"Personalized health warnings",
		},
	})
}

func (h *MetaController) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"supported_languages": models.SupportedLanguages,
		"default":             models.DefaultLanguage,
	})
}

func (h *MetaController) Health(c *gin.Context) {
	translation := "unavailable"
	if h.Translator.Available() {
		translation = "available"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  "SQLite connected",
		"services": gin.H{
			"qwen_model":         h.Cfg.QwenModel,
			"sarvam_translation": translation,
		},
		"supported_languages": models.LanguageNames(),
	})
}
