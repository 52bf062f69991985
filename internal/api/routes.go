// Package api exposes the classifier and generator over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"tweet-sentiment/internal/metrics"
	"tweet-sentiment/internal/mockdata"
	"tweet-sentiment/internal/sentiment"
	"tweet-sentiment/internal/storage"
	"tweet-sentiment/internal/trending"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName = "twitter-sentiment-api"
	Version     = "1.0.0"
)

// Deps are constructed once at process start and shared by every request.
type Deps struct {
	Classifier   sentiment.TextClassifier
	Generator    *mockdata.Generator
	Trending     *trending.Builder
	Stats        storage.StatsStore
	Metrics      *metrics.Collector
	Logger       *slog.Logger
	Query        string
	DefaultLimit int
	BatchWorkers int
	CORSOrigins  []string
	Now          func() time.Time
	StartedAt    time.Time
}

var endpoints = map[string]string{
	"health":   "/api/health",
	"tweets":   "/api/tweets",
	"analyze":  "/api/analyze",
	"trending": "/api/trending",
	"stats":    "/api/stats",
	"metrics":  "/metrics",
}

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(d Deps) *gin.Engine {
	h := newHandler(d)

	r := gin.New()
	r.Use(RequestID())
	r.Use(AccessLog(h.logger))
	r.Use(CORS(d.CORSOrigins))
	r.Use(d.Metrics.Middleware())
	r.Use(h.recordRequest)
	// innermost, so panics are still counted by metrics and stats
	r.Use(Recovery(h.logger))

	r.GET("/", h.Index)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	g := r.Group("/api")
	g.GET("/health", h.Health)
	g.GET("/tweets", h.ListPosts)
	g.GET("/tweets/:id", h.GetPost)
	g.POST("/analyze", h.Analyze)
	g.POST("/analyze/batch", h.AnalyzeBatch)
	g.GET("/trending", h.TrendingHandler)
	g.GET("/stats", h.StatsHandler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Endpoint " + c.Request.URL.Path + " not found",
			"error":   "Not Found",
		})
	})
	return r
}
