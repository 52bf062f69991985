// Package trending builds the trending-topics summary served by the API.
package trending

import (
	"sort"
	"time"

	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/random"
)

// DefaultTopN is how many topics a summary keeps.
const DefaultTopN = 5

type topicRange struct {
	name     string
	min, max int
}

var topicRanges = []topicRange{
	{"Artificial Intelligence", 30, 60},
	{"Machine Learning", 25, 55},
	{"Data Science", 20, 50},
	{"AI Ethics", 15, 40},
	{"Deep Learning", 10, 35},
	{"Neural Networks", 8, 30},
	{"Natural Language Processing", 5, 25},
	{"Computer Vision", 5, 20},
	{"Quantum Computing", 3, 15},
	{"Robotics", 3, 15},
}

// Builder draws trending summaries.
type Builder struct {
	src  random.Source
	now  func() time.Time
	topN int
}

func NewBuilder(src random.Source, now func() time.Time, topN int) *Builder {
	if src == nil {
		src = random.New()
	}
	if now == nil {
		now = time.Now
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Builder{src: src, now: now, topN: topN}
}

// Summary ranks topics by a randomly drawn count and draws a sentiment split.
func (b *Builder) Summary() model.TrendingSummary {
	topics := make([]model.TopicCount, 0, len(topicRanges))
	for _, r := range topicRanges {
		topics = append(topics, model.TopicCount{Topic: r.name, Count: random.Between(b.src, r.min, r.max)})
	}
	// stable so equal counts keep their declared order
	sort.SliceStable(topics, func(i, j int) bool { return topics[i].Count > topics[j].Count })
	if len(topics) > b.topN {
		topics = topics[:b.topN]
	}

	dist := map[model.Label]int{
		model.Positive: random.Between(b.src, 40, 60),
		model.Neutral:  random.Between(b.src, 25, 45),
		model.Negative: random.Between(b.src, 10, 30),
	}

	return model.TrendingSummary{
		Topics:       topics,
		Distribution: dist,
		Percentages:  Percentages(dist),
		TotalPosts:   random.Between(b.src, 1000, 10000),
		TimePeriod:   "last 24 hours",
		GeneratedAt:  b.now(),
	}
}

// Percentages normalizes counts by their sum, rounded to one decimal.
// The rounded values sum to 100 within 0.1. A zero total yields zeros.
func Percentages(dist map[model.Label]int) map[model.Label]float64 {
	out := make(map[model.Label]float64, len(model.Labels()))
	total := 0
	for _, l := range model.Labels() {
		total += dist[l]
	}
	for _, l := range model.Labels() {
		if total == 0 {
			out[l] = 0
			continue
		}
		out[l] = random.Round(float64(dist[l])/float64(total)*100, 1)
	}
	return out
}
