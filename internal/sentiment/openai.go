package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"tweet-sentiment/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI classifies text with a chat completion model.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional
	Timeout time.Duration
}

func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("openai classifier: model must be specified")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAI{client: c, model: cfg.Model, timeout: timeout}, nil
}

func (o *OpenAI) Name() string { return "openai:" + o.model }

const systemPrompt = `You are a sentiment classifier for short social media posts.
Reply with a JSON object only: {"sentiment": "positive" | "neutral" | "negative", "confidence": number between 0 and 1}.`

type openAIVerdict struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

func (o *OpenAI) Classify(ctx context.Context, text string) (model.ClassificationResult, error) {
	if err := checkInput(text); err != nil {
		return model.ClassificationResult{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	input := strings.TrimSpace(text)
	if len([]rune(input)) > 2000 {
		input = string([]rune(input)[:2000])
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0,
	})
	if err != nil {
		slog.Error("openai: classify error", "err", err)
		return model.ClassificationResult{}, fmt.Errorf("openai classify: %w", err)
	}
	if len(resp.Choices) == 0 {
		return model.ClassificationResult{}, fmt.Errorf("openai classify: empty response")
	}
	v, err := parseVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		return model.ClassificationResult{}, err
	}
	toks := tokens(text)
	return model.ClassificationResult{
		Text:      text,
		Verdict:   v,
		Hashtags:  hashtags(toks),
		WordCount: wordCount(text),
		Model:     o.Name(),
	}, nil
}

// parseVerdict decodes the model reply, tolerating a fenced code block around the JSON.
func parseVerdict(content string) (model.Verdict, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var raw openAIVerdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return model.Verdict{}, fmt.Errorf("openai classify: decode reply: %w", err)
	}
	label, ok := model.ParseLabel(raw.Sentiment)
	if !ok {
		return model.Verdict{}, fmt.Errorf("openai classify: unknown sentiment %q", raw.Sentiment)
	}
	conf := raw.Confidence
	if math.IsNaN(conf) {
		conf = 0
	}
	conf = math.Max(0, math.Min(1, conf))
	return model.Verdict{Label: label, Confidence: conf}, nil
}
