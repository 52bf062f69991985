package mockdata

import (
	"strings"
	"time"

	"tweet-sentiment/internal/model"
)

// Filter describes the optional query filters of a post listing.
// Empty fields are not applied; malformed dates are ignored.
type Filter struct {
	Sentiment string
	Start     string
	End       string
}

// Apply narrows posts by sentiment and created_at range.
func (f Filter) Apply(posts []model.Post) []model.Post {
	if strings.TrimSpace(f.Sentiment) != "" {
		posts = BySentiment(posts, f.Sentiment)
	}
	var start, end *time.Time
	if t, ok := ParseTimestamp(f.Start); ok {
		start = &t
	}
	if t, ok := ParseTimestamp(f.End); ok {
		end = &t
	}
	return ByTimeRange(posts, start, end)
}

// BySentiment keeps posts whose label equals s, case-insensitively.
// An unknown label matches nothing.
func BySentiment(posts []model.Post, s string) []model.Post {
	out := []model.Post{}
	label, ok := model.ParseLabel(s)
	if !ok {
		return out
	}
	for _, p := range posts {
		if p.Label == label {
			out = append(out, p)
		}
	}
	return out
}

// ByTimeRange keeps posts created within [start, end]. Nil bounds are open.
func ByTimeRange(posts []model.Post, start, end *time.Time) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if start != nil && p.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && p.CreatedAt.After(*end) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search keeps posts whose text contains q, case-insensitively.
func Search(posts []model.Post, q string) []model.Post {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return posts
	}
	out := []model.Post{}
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Text), q) {
			out = append(out, p)
		}
	}
	return out
}

// naive layouts carry no zone and are read in local time.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp reads an ISO-8601 timestamp with or without a zone.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	// space separator with a zone
	if t, err := time.Parse("2006-01-02 15:04:05.999999999Z07:00", s); err == nil {
		return t, true
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
