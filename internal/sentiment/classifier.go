package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tweet-sentiment/internal/config"
	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/random"
)

// ErrInvalidInput is returned when the text to classify is blank.
var ErrInvalidInput = errors.New("invalid input")

// TextClassifier assigns a sentiment verdict to free text.
type TextClassifier interface {
	Classify(ctx context.Context, text string) (model.ClassificationResult, error)
	// Name identifies the model in API responses and metrics.
	Name() string
}

const (
	ProviderLexicon = "lexicon"
	ProviderOpenAI  = "openai"
)

// New builds the classifier selected by cfg.Provider.
func New(cfg config.ClassifierConfig, oc config.OpenAIConfig, src random.Source) (TextClassifier, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderLexicon:
		return NewLexicon(src), nil
	case ProviderOpenAI:
		if strings.TrimSpace(oc.APIKey) == "" {
			return nil, fmt.Errorf("openai classifier: api key is not configured")
		}
		timeout := 30 * time.Second
		if oc.Timeout != "" {
			d, err := time.ParseDuration(oc.Timeout)
			if err != nil {
				return nil, fmt.Errorf("openai classifier: invalid timeout: %w", err)
			}
			timeout = d
		}
		return NewOpenAI(OpenAIConfig{APIKey: oc.APIKey, Model: oc.Model, BaseURL: oc.BaseURL, Timeout: timeout})
	default:
		return nil, fmt.Errorf("unknown classifier provider: %s", cfg.Provider)
	}
}

// tokens splits text on whitespace and lower-cases each token.
func tokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// wordCount counts whitespace-delimited tokens of the original text.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// hashtags returns the tokens starting with '#', in order of first appearance.
// Repeated tags are reported once.
func hashtags(toks []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, t := range toks {
		if !strings.HasPrefix(t, "#") {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func checkInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text cannot be empty", ErrInvalidInput)
	}
	return nil
}
