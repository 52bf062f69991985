package model

import "time"

// ServiceIndex is returned from the API root.
type ServiceIndex struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthStatus is returned from the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

// PostsResponse wraps a filtered batch of posts.
type PostsResponse struct {
	Count       int       `json:"count"`
	Posts       []Post    `json:"tweets"`
	Query       string    `json:"query"`
	GeneratedAt time.Time `json:"generated_at"`
}

// PostResponse wraps a single post looked up by id.
type PostResponse struct {
	Post        Post   `json:"tweet"`
	RequestedID string `json:"requested_id"`
	Found       bool   `json:"found"`
}

// AnalyzeResponse is a classification result stamped with the time it was produced.
type AnalyzeResponse struct {
	ClassificationResult
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// BatchAnalyzeResponse holds results in the order the texts were submitted.
type BatchAnalyzeResponse struct {
	Count   int               `json:"count"`
	Results []AnalyzeResponse `json:"results"`
}

// TopicCount is one row of the trending topics ranking.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// TrendingSummary ranks topics and breaks volume down by sentiment.
type TrendingSummary struct {
	Topics       []TopicCount      `json:"trending_topics"`
	Distribution map[Label]int     `json:"sentiment_distribution"`
	Percentages  map[Label]float64 `json:"sentiment_percentages"`
	TotalPosts   int               `json:"total_tweets_analyzed"`
	TimePeriod   string            `json:"time_period"`
	GeneratedAt  time.Time         `json:"generated_at"`
}

// UsageStats reports what the API has served since its counters were last reset.
type UsageStats struct {
	TotalRequests     int64             `json:"total_requests"`
	PostsGenerated    int64             `json:"tweets_generated"`
	TextsAnalyzed     int64             `json:"tweets_analyzed"`
	ByLabel           map[Label]int64   `json:"analyzed_by_sentiment"`
	AvgResponseTimeMS float64           `json:"average_response_time_ms"`
	Uptime            string            `json:"uptime,omitempty"`
	ActiveSince       *time.Time        `json:"active_since,omitempty"`
	Endpoints         map[string]string `json:"endpoints,omitempty"`
}
