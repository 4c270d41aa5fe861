package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bharathz8/Nutri-Go/models"
)

type TranslateController struct {
	Translator Translator
}

func NewTranslateController(translator Translator) *TranslateController {
	return &TranslateController{Translator: translator}
}

type TranslateRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

func (h *TranslateController) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := strings.ToLower(req.TargetLanguage)
	if !models.IsSupportedLanguage(target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Language %s not supported", req.TargetLanguage)})
		return
	}

	translated, _ := h.Translator.Translate(c.Request.Context(), req.Text, target)
	c.JSON(http.StatusOK, gin.H{
		"original_text":   req.Text,
		"translated_text": translated,
		"target_language": target,
		"source_language": "english",
	})
}
