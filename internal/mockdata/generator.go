// Package mockdata generates synthetic social-media posts with sentiment labels.
package mockdata

import (
	"strconv"
	"strings"
	"time"

	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/random"
)

// DefaultMaxPosts caps a single Generate call.
const DefaultMaxPosts = 100

// Source marks every generated post.
const Source = "mock_data"

const firstID = 1000

var authors = []string{
	"TechEnthusiast42", "AIAnalyst", "DataSciencePro", "FutureTechWatch",
	"MLResearcher", "AIEthicist", "StartupFounder", "TechJournalist",
	"AcademicResearcher", "IndustryExpert",
}

var hashtagPool = []string{
	"#ArtificialIntelligence", "#MachineLearning", "#AI", "#DeepLearning",
	"#DataScience", "#Tech", "#Innovation", "#FutureTech", "#NLP", "#Robotics",
}

var topics = []string{
	"AI in healthcare", "Machine learning algorithms", "Natural language processing",
	"Computer vision", "Robotics", "AI ethics", "Quantum computing",
	"Neural networks", "Big data", "Automation",
}

var templates = []string{
	"Exciting developments in {topic} recently! {hashtag}",
	"New research paper on {topic} shows promising results. {hashtag}",
	"Discussion: What are the ethical implications of {topic}? {hashtag}",
	"Just attended a great conference about {topic}. Amazing insights! {hashtag}",
	"Industry leaders are investing heavily in {topic}. {hashtag}",
	"Concerns about {topic} need to be addressed by policymakers. {hashtag}",
	"Breakthrough in {topic} could change everything. {hashtag}",
	"My thoughts on the future of {topic}. {hashtag}",
	"Recent advancements in {topic} are impressive. {hashtag}",
	"How will {topic} impact our daily lives? {hashtag}",
}

// Generator builds independent synthetic posts. It keeps no state between posts,
// so one instance can serve concurrent callers when its Source is safe for concurrent use.
type Generator struct {
	src      random.Source
	now      func() time.Time
	maxPosts int
}

type Option func(*Generator)

// WithSource sets the random source.
func WithSource(src random.Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithClock sets the clock used for created_at.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithMaxPosts overrides the per-call cap. Non-positive values keep the default.
func WithMaxPosts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxPosts = n
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{src: random.New(), now: time.Now, maxPosts: DefaultMaxPosts}
	for _, o := range opts {
		o(g)
	}
	return g
}

// MaxPosts reports the per-call cap.
func (g *Generator) MaxPosts() int { return g.maxPosts }

// Generate returns count posts in generation order. Negative counts yield no posts
// and counts above the cap are clamped.
func (g *Generator) Generate(count int) []model.Post {
	if count < 0 {
		count = 0
	}
	if count > g.maxPosts {
		count = g.maxPosts
	}
	posts := make([]model.Post, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, g.Post(strconv.Itoa(firstID+i)))
	}
	return posts
}

// Post generates one post carrying the given id.
func (g *Generator) Post(id string) model.Post {
	author := random.Pick(g.src, authors)
	topic := random.Pick(g.src, topics)
	hashtag := random.Pick(g.src, hashtagPool)
	tpl := random.Pick(g.src, templates)
	text := strings.NewReplacer("{topic}", topic, "{hashtag}", hashtag).Replace(tpl)

	age := time.Duration(random.Between(g.src, 0, 7))*24*time.Hour +
		time.Duration(random.Between(g.src, 0, 23))*time.Hour +
		time.Duration(random.Between(g.src, 0, 59))*time.Minute

	verdict := g.verdict()

	return model.Post{
		ID:        id,
		Text:      text,
		CreatedAt: g.now().Add(-age),
		Author: model.Author{
			Name:      author,
			Handle:    strings.ToLower(author),
			Followers: random.Between(g.src, 100, 10000),
		},
		Engagement: model.Engagement{
			Reposts:   random.Between(g.src, 0, 500),
			Favorites: random.Between(g.src, 0, 1000),
		},
		Hashtags: []string{hashtag},
		Verdict:  verdict,
		Source:   Source,
	}
}

// verdict draws a label from the 45/35/20 split with a label-specific confidence.
func (g *Generator) verdict() model.Verdict {
	r := g.src.Float64()
	switch {
	case r < 0.45:
		return model.Verdict{Label: model.Positive, Confidence: random.Confidence(g.src, 0.75, 0.98)}
	case r < 0.80:
		return model.Verdict{Label: model.Neutral, Confidence: random.Confidence(g.src, 0.70, 0.90)}
	default:
		return model.Verdict{Label: model.Negative, Confidence: random.Confidence(g.src, 0.75, 0.95)}
	}
}
