package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tweet-sentiment/internal/metrics"
	"tweet-sentiment/internal/mockdata"
	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/random"
	"tweet-sentiment/internal/sentiment"
	"tweet-sentiment/internal/storage"
	"tweet-sentiment/internal/trending"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingClassifier struct{ err error }

func (f failingClassifier) Classify(context.Context, string) (model.ClassificationResult, error) {
	return model.ClassificationResult{}, f.err
}

func (f failingClassifier) Name() string { return "failing" }

type panickingClassifier struct{}

func (panickingClassifier) Classify(context.Context, string) (model.ClassificationResult, error) {
	panic("classifier blew up")
}

func (panickingClassifier) Name() string { return "panicking" }

func testDeps(t *testing.T) Deps {
	t.Helper()
	now := func() time.Time { return fixedNow }
	src := random.NewSeeded(7)
	return Deps{
		Classifier:   sentiment.NewLexicon(src),
		Generator:    mockdata.NewGenerator(mockdata.WithSource(src), mockdata.WithClock(now)),
		Trending:     trending.NewBuilder(src, now, trending.DefaultTopN),
		Stats:        storage.NewMemoryStore(),
		Metrics:      metrics.NewCollector("test"),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Query:        "AI",
		DefaultLimit: 20,
		BatchWorkers: 2,
		CORSOrigins:  []string{"http://localhost:8501"},
		Now:          now,
		StartedAt:    fixedNow.Add(-90 * time.Second),
	}
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestIndexAndHealth(t *testing.T) {
	r := NewRouter(testDeps(t))

	w := do(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	idx := decode[model.ServiceIndex](t, w)
	assert.Equal(t, "running", idx.Status)
	assert.Equal(t, "/api/tweets", idx.Endpoints["tweets"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(t, r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	hs := decode[model.HealthStatus](t, w)
	assert.Equal(t, "healthy", hs.Status)
	assert.Equal(t, ServiceName, hs.Service)
	assert.True(t, hs.Timestamp.Equal(fixedNow))
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := NewRouter(testDeps(t))
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestListPostsLimits(t *testing.T) {
	r := NewRouter(testDeps(t))

	cases := []struct {
		query string
		want  int
	}{
		{"", 20},
		{"?limit=5", 5},
		{"?limit=0", 0},
		{"?limit=-3", 0},
		{"?limit=500", mockdata.DefaultMaxPosts},
		{"?limit=99999999999999999999", mockdata.DefaultMaxPosts},
		{"?limit=-99999999999999999999", 0},
	}
	for _, c := range cases {
		w := do(t, r, http.MethodGet, "/api/tweets"+c.query, "")
		require.Equal(t, http.StatusOK, w.Code, c.query)
		resp := decode[model.PostsResponse](t, w)
		assert.Equal(t, c.want, resp.Count, c.query)
		assert.Len(t, resp.Posts, c.want, c.query)
		assert.Equal(t, "AI", resp.Query)
	}

	w := do(t, r, http.MethodGet, "/api/tweets?limit=lots", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPostsFilters(t *testing.T) {
	r := NewRouter(testDeps(t))

	w := do(t, r, http.MethodGet, "/api/tweets?limit=100&sentiment=POSITIVE", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[model.PostsResponse](t, w)
	assert.Equal(t, len(resp.Posts), resp.Count)
	for _, p := range resp.Posts {
		assert.Equal(t, model.Positive, p.Label)
	}

	w = do(t, r, http.MethodGet, "/api/tweets?limit=10&sentiment=ecstatic", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[model.PostsResponse](t, w)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Posts)

	w = do(t, r, http.MethodGet, "/api/tweets?limit=10&start_date=yesterday&end_date=nope", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, decode[model.PostsResponse](t, w).Count)

	w = do(t, r, http.MethodGet, "/api/tweets?limit=10&start_date=2030-01-01T00:00:00Z", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[model.PostsResponse](t, w).Count)
}

func TestGetPost(t *testing.T) {
	r := NewRouter(testDeps(t))
	w := do(t, r, http.MethodGet, "/api/tweets/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[model.PostResponse](t, w)
	assert.True(t, resp.Found)
	assert.Equal(t, "abc", resp.RequestedID)
	assert.Equal(t, "abc", resp.Post.ID)
}

func TestAnalyze(t *testing.T) {
	r := NewRouter(testDeps(t))

	w := do(t, r, http.MethodPost, "/api/analyze?text=great+news+%23ai", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[model.AnalyzeResponse](t, w)
	assert.Equal(t, model.Positive, resp.Label)
	assert.Equal(t, []string{"#ai"}, resp.Hashtags)
	assert.Equal(t, 3, resp.WordCount)
	assert.Equal(t, sentiment.LexiconModel, resp.Model)

	w = do(t, r, http.MethodPost, "/api/analyze", `{"text":"terrible awful day"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.Negative, decode[model.AnalyzeResponse](t, w).Label)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	r := NewRouter(testDeps(t))

	for _, target := range []string{"/api/analyze", "/api/analyze?text=", "/api/analyze?text=%20%20"} {
		w := do(t, r, http.MethodPost, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "error", target)
	}

	w := do(t, r, http.MethodPost, "/api/analyze", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeClassifierFailure(t *testing.T) {
	d := testDeps(t)
	d.Classifier = failingClassifier{err: errors.New("upstream timeout")}
	r := NewRouter(d)
	w := do(t, r, http.MethodPost, "/api/analyze?text=hello", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	d.Classifier = failingClassifier{err: sentiment.ErrInvalidInput}
	r = NewRouter(d)
	w = do(t, r, http.MethodPost, "/api/analyze?text=hello", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeBatch(t *testing.T) {
	r := NewRouter(testDeps(t))

	w := do(t, r, http.MethodPost, "/api/analyze/batch", `{"texts":["good great","bad awful","just a post"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[model.BatchAnalyzeResponse](t, w)
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "good great", resp.Results[0].Text)
	assert.Equal(t, model.Positive, resp.Results[0].Label)
	assert.Equal(t, model.Negative, resp.Results[1].Label)
	assert.Equal(t, model.Neutral, resp.Results[2].Label)

	for _, body := range []string{`{"texts":[]}`, `{"texts":["ok",""]}`, `{}`} {
		w = do(t, r, http.MethodPost, "/api/analyze/batch", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	many := `{"texts":["a"` + strings.Repeat(`,"a"`, maxBatchTexts) + `]}`
	w = do(t, r, http.MethodPost, "/api/analyze/batch", many)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrending(t *testing.T) {
	r := NewRouter(testDeps(t))
	w := do(t, r, http.MethodGet, "/api/trending", "")
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[model.TrendingSummary](t, w)
	assert.Len(t, s.Topics, trending.DefaultTopN)
	assert.Len(t, s.Distribution, 3)
	assert.Equal(t, "last 24 hours", s.TimePeriod)
}

func TestStatsCountsTraffic(t *testing.T) {
	r := NewRouter(testDeps(t))

	do(t, r, http.MethodGet, "/api/tweets?limit=4", "")
	do(t, r, http.MethodGet, "/api/tweets/1", "")
	do(t, r, http.MethodPost, "/api/analyze?text=good", "")
	do(t, r, http.MethodPost, "/api/analyze?text=bad", "")

	w := do(t, r, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[model.UsageStats](t, w)
	assert.EqualValues(t, 4, st.TotalRequests)
	assert.EqualValues(t, 5, st.PostsGenerated)
	assert.EqualValues(t, 2, st.TextsAnalyzed)
	assert.EqualValues(t, 1, st.ByLabel[model.Positive])
	assert.EqualValues(t, 1, st.ByLabel[model.Negative])
	assert.Equal(t, "1m30s", st.Uptime)
	require.NotNil(t, st.ActiveSince)
	assert.Equal(t, "/api/stats", st.Endpoints["stats"])
}

func TestNotFound(t *testing.T) {
	r := NewRouter(testDeps(t))
	w := do(t, r, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "Endpoint /api/nope not found", body["message"])
	assert.Equal(t, "Not Found", body["error"])
}

func TestCORS(t *testing.T) {
	r := NewRouter(testDeps(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://localhost:8501")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8501", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(testDeps(t))
	do(t, r, http.MethodPost, "/api/analyze?text=good", "")
	w := do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_classifications_total")
}

func TestPanicIsRecoveredAndCounted(t *testing.T) {
	d := testDeps(t)
	d.Classifier = panickingClassifier{}
	r := NewRouter(d)

	w := do(t, r, http.MethodPost, "/api/analyze?text=hi", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, "Internal Server Error", body["error"])

	st, err := d.Stats.Snapshot(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, st.TotalRequests)

	w = do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `test_http_requests_total{method="POST",route="/api/analyze",status="500"} 1`)
}
