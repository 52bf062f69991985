package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tweet-sentiment/internal/mockdata"
	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/random"
	"tweet-sentiment/internal/sentiment"
	"tweet-sentiment/internal/storage"
	"tweet-sentiment/internal/trending"

	"github.com/gin-gonic/gin"
)

type handler struct {
	Deps
	logger *slog.Logger
}

func newHandler(d Deps) *handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.StartedAt.IsZero() {
		d.StartedAt = d.Now()
	}
	if d.Classifier == nil {
		d.Classifier = sentiment.NewLexicon(random.New())
	}
	if d.Generator == nil {
		d.Generator = mockdata.NewGenerator()
	}
	if d.Trending == nil {
		d.Trending = trending.NewBuilder(random.New(), d.Now, trending.DefaultTopN)
	}
	if d.Stats == nil {
		d.Stats = storage.NewMemoryStore()
	}
	if d.DefaultLimit <= 0 {
		d.DefaultLimit = 20
	}
	if d.BatchWorkers <= 0 {
		d.BatchWorkers = 4
	}
	return &handler{Deps: d, logger: d.Logger.With("component", "api")}
}

// recordRequest feeds the usage counters behind /api/stats. Store failures are
// logged and never fail the request.
func (h *handler) recordRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	if err := h.Deps.Stats.RecordRequest(context.WithoutCancel(c.Request.Context()), time.Since(start)); err != nil {
		h.logger.Warn("api: record request failed", "error", err)
	}
}

func (h *handler) Index(c *gin.Context) {
	eps := map[string]string{}
	for k, v := range endpoints {
		eps[k] = v
	}
	c.JSON(http.StatusOK, model.ServiceIndex{
		Message:   "Twitter Sentiment Analysis API",
		Status:    "running",
		Version:   Version,
		Endpoints: eps,
	})
}

func (h *handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthStatus{
		Status:    "healthy",
		Timestamp: h.Now(),
		Service:   ServiceName,
		Version:   Version,
	})
}

// ListPosts serves GET /api/tweets?limit=&sentiment=&start_date=&end_date=.
func (h *handler) ListPosts(c *gin.Context) {
	limit := h.DefaultLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err == nil:
			limit = n
		case errors.Is(err, strconv.ErrRange):
			// out of int range, clamped below like any other out-of-range value
			limit = h.Generator.MaxPosts()
			if strings.HasPrefix(raw, "-") {
				limit = 0
			}
		default:
			respondError(c, http.StatusBadRequest, "limit must be an integer")
			return
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > h.Generator.MaxPosts() {
		limit = h.Generator.MaxPosts()
	}

	posts := h.Generator.Generate(limit)
	h.recordPosts(c.Request.Context(), len(posts))

	posts = mockdata.Filter{
		Sentiment: c.Query("sentiment"),
		Start:     c.Query("start_date"),
		End:       c.Query("end_date"),
	}.Apply(posts)

	c.JSON(http.StatusOK, model.PostsResponse{
		Count:       len(posts),
		Posts:       posts,
		Query:       h.Query,
		GeneratedAt: h.Now(),
	})
}

func (h *handler) GetPost(c *gin.Context) {
	id := c.Param("id")
	post := h.Generator.Post(id)
	h.recordPosts(c.Request.Context(), 1)
	c.JSON(http.StatusOK, model.PostResponse{Post: post, RequestedID: id, Found: true})
}

// Analyze serves POST /api/analyze with the text in ?text= or a JSON body.
func (h *handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if text, ok := c.GetQuery("text"); ok {
		req.Text = text
	} else if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Classifier.Classify(c.Request.Context(), req.Text)
	if err != nil {
		h.classifyFailed(c, err)
		return
	}
	h.recordClassification(c.Request.Context(), res)
	c.JSON(http.StatusOK, model.AnalyzeResponse{ClassificationResult: res, AnalyzedAt: h.Now()})
}

func (h *handler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	results, err := sentiment.ClassifyBatch(c.Request.Context(), h.Classifier, req.Texts, h.BatchWorkers)
	if err != nil {
		h.classifyFailed(c, err)
		return
	}
	now := h.Now()
	out := make([]model.AnalyzeResponse, 0, len(results))
	for _, res := range results {
		h.recordClassification(c.Request.Context(), res)
		out = append(out, model.AnalyzeResponse{ClassificationResult: res, AnalyzedAt: now})
	}
	c.JSON(http.StatusOK, model.BatchAnalyzeResponse{Count: len(out), Results: out})
}

func (h *handler) TrendingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Deps.Trending.Summary())
}

func (h *handler) StatsHandler(c *gin.Context) {
	st, err := h.Deps.Stats.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("api: stats snapshot failed", "error", err)
		respondError(c, http.StatusServiceUnavailable, "statistics are unavailable")
		return
	}
	since := h.StartedAt
	st.ActiveSince = &since
	st.Uptime = h.Now().Sub(h.StartedAt).Truncate(time.Second).String()
	st.Endpoints = map[string]string{}
	for k, v := range endpoints {
		st.Endpoints[k] = v
	}
	c.JSON(http.StatusOK, st)
}

func (h *handler) classifyFailed(c *gin.Context, err error) {
	if errors.Is(err, sentiment.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("api: classify failed", "model", h.Classifier.Name(), "error", err)
	respondError(c, http.StatusBadGateway, "sentiment model unavailable")
}

func (h *handler) recordPosts(ctx context.Context, n int) {
	h.Metrics.ObservePosts(n)
	if err := h.Deps.Stats.RecordPosts(ctx, n); err != nil {
		h.logger.Warn("api: record posts failed", "error", err)
	}
}

func (h *handler) recordClassification(ctx context.Context, res model.ClassificationResult) {
	h.Metrics.ObserveClassification(res.Model, res.Label)
	if err := h.Deps.Stats.RecordClassification(ctx, res.Label); err != nil {
		h.logger.Warn("api: record classification failed", "error", err)
	}
}
