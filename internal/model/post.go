package model

import (
	"strings"
	"time"
)

// Label is a sentiment classification outcome.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Labels lists every label in display order.
func Labels() []Label {
	return []Label{Positive, Neutral, Negative}
}

// ParseLabel matches s against the known labels, ignoring case and surrounding space.
func ParseLabel(s string) (Label, bool) {
	switch Label(strings.ToLower(strings.TrimSpace(s))) {
	case Positive:
		return Positive, true
	case Neutral:
		return Neutral, true
	case Negative:
		return Negative, true
	}
	return "", false
}

// Verdict pairs a label with its confidence; the two are always assigned together.
type Verdict struct {
	Label      Label   `json:"sentiment" yaml:"sentiment"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Author is the account a post was published from.
type Author struct {
	Name      string `json:"name"`
	Handle    string `json:"screen_name"`
	Followers int    `json:"followers_count"`
}

// Engagement holds the public interaction counters of a post.
type Engagement struct {
	Reposts   int `json:"retweet_count"`
	Favorites int `json:"favorite_count"`
}

// Post is a single social-media message with sentiment metadata.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Author    Author    `json:"user"`
	Engagement
	Hashtags []string `json:"hashtags"`
	Verdict
	Source string `json:"source"`
}

// ClassificationResult is the outcome of classifying one piece of text.
type ClassificationResult struct {
	Text string `json:"text"`
	Verdict
	Hashtags  []string `json:"hashtags"`
	WordCount int      `json:"word_count"`
	Model     string   `json:"model"`
}
