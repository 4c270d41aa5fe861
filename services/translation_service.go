package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bharathz8/Nutri-Go/config"
)

const translationModel = "sarvam-m"

// TranslationService translates user-facing English text into a
// supported regional language. Every failure path returns the source
// text untouched; translation must never fail an enclosing request.
type TranslationService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewTranslationService(cfg *config.Config) *TranslationService {
	return &TranslationService{
		apiKey:   cfg.SarvamAPIKey,
		endpoint: cfg.SarvamEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Available reports whether the service is configured well enough to
// attempt a translation.
func (s *TranslationService) Available() bool {
	return s.apiKey != "" && s.endpoint != ""
}

// Translate returns the translated text and whether a translation was
// actually performed. An "english" target short-circuits without a
// network call.
func (s *TranslationService) Translate(ctx context.Context, text, targetLanguage string) (string, bool) {
	if strings.EqualFold(targetLanguage, "english") {
		return text, false
	}
	if !s.Available() {
		log.Warn("Translation service not configured, returning original text")
		return text, false
	}

	prompt := fmt.Sprintf("Translate the following nutrition and health information to %s language. Keep it simple and easy to understand:\n\n%s", targetLanguage, text)

	payload := chatRequest{
		Model:    translationModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	translated, err := postChat(ctx, s.client, s.endpoint, s.apiKey, payload)
	if err != nil {
		log.WithError(err).WithField("target_language", targetLanguage).Error("Translation failed, returning original text")
		return text, false
	}
	return translated, true
}
