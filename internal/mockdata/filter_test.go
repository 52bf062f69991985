package mockdata

import (
	"testing"
	"time"

	"tweet-sentiment/internal/model"
)

func postAt(id string, label model.Label, at time.Time) model.Post {
	return model.Post{ID: id, CreatedAt: at, Verdict: model.Verdict{Label: label, Confidence: 0.8}, Text: "post " + id}
}

func TestBySentimentPartitions(t *testing.T) {
	posts := newTestGenerator(17).Generate(100)
	total := 0
	for _, l := range model.Labels() {
		got := BySentiment(posts, string(l))
		for _, p := range got {
			if p.Label != l {
				t.Fatalf("filter %s returned %s", l, p.Label)
			}
		}
		total += len(got)
	}
	if total != len(posts) {
		t.Errorf("labels cover %d of %d posts", total, len(posts))
	}
	if got := BySentiment(posts, "ecstatic"); len(got) != 0 {
		t.Errorf("unknown label returned %d posts", len(got))
	}
	if got := BySentiment(posts, "POSITIVE"); len(got) != len(BySentiment(posts, "positive")) {
		t.Errorf("case-insensitive match differs")
	}
}

func TestByTimeRangeInclusive(t *testing.T) {
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	posts := []model.Post{
		postAt("a", model.Positive, base.Add(-2*time.Hour)),
		postAt("b", model.Neutral, base),
		postAt("c", model.Negative, base.Add(2*time.Hour)),
	}
	start, end := base, base.Add(2*time.Hour)
	got := ByTimeRange(posts, &start, &end)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("got %v", ids(got))
	}
	if got := ByTimeRange(posts, nil, &start); len(got) != 2 {
		t.Errorf("open start: got %v", ids(got))
	}
}

func TestFilterIgnoresMalformedDates(t *testing.T) {
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	posts := []model.Post{
		postAt("a", model.Positive, base.Add(-48*time.Hour)),
		postAt("b", model.Positive, base),
	}
	got := Filter{Start: "yesterday-ish", End: "2025-13-45"}.Apply(posts)
	if len(got) != 2 {
		t.Errorf("malformed dates should not filter, got %v", ids(got))
	}
	got = Filter{Start: "2025-01-10T00:00:00Z"}.Apply(posts)
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("start filter: got %v", ids(got))
	}
	got = Filter{Sentiment: "negative"}.Apply(posts)
	if len(got) != 0 {
		t.Errorf("sentiment filter: got %v", ids(got))
	}
}

func TestParseTimestamp(t *testing.T) {
	ok := []string{
		"2025-01-10T12:00:00Z",
		"2025-01-10T12:00:00+02:00",
		"2025-01-10T12:00:00.123456",
		"2025-01-10T12:00",
		"2025-01-10 12:00:00",
		"2025-01-10",
	}
	for _, s := range ok {
		if _, parsed := ParseTimestamp(s); !parsed {
			t.Errorf("ParseTimestamp(%q) failed", s)
		}
	}
	for _, s := range []string{"", "not a date", "10/01/2025", "2025-01-10T25:00:00"} {
		if _, parsed := ParseTimestamp(s); parsed {
			t.Errorf("ParseTimestamp(%q) unexpectedly parsed", s)
		}
	}
	zoned, _ := ParseTimestamp("2025-01-10T12:00:00+02:00")
	if !zoned.Equal(time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("zoned time = %v", zoned)
	}
}

func TestSearch(t *testing.T) {
	posts := []model.Post{{ID: "1", Text: "Robotics is here"}, {ID: "2", Text: "Quantum computing"}}
	if got := Search(posts, "ROBOT"); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("got %v", ids(got))
	}
	if got := Search(posts, " "); len(got) != 2 {
		t.Errorf("blank query should keep all, got %v", ids(got))
	}
}

func ids(posts []model.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
