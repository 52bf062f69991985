// Package report renders a batch of classified posts as a Markdown document
// with YAML frontmatter.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/random"
	"tweet-sentiment/internal/trending"
)

// maxHashtags bounds the hashtag table.
const maxHashtags = 10

// LabelRow is one line of the distribution table.
type LabelRow struct {
	Label   model.Label
	Count   int
	Percent float64
}

type HashtagRow struct {
	Tag   string
	Count int
}

type Data struct {
	Title         string
	Slug          string
	Datetime      string
	Total         int
	Labels        []LabelRow
	AvgConfidence float64
	Hashtags      []HashtagRow
	Posts         []model.Post
}

// Count returns the number of posts carrying label l.
func (d Data) Count(l model.Label) int {
	for _, r := range d.Labels {
		if r.Label == l {
			return r.Count
		}
	}
	return 0
}

// Build aggregates posts into report data. The title is expanded with ExpandVars.
func Build(posts []model.Post, title string, now time.Time) Data {
	dist := map[model.Label]int{}
	tags := map[string]int{}
	var conf float64
	for _, p := range posts {
		dist[p.Label]++
		conf += p.Confidence
		for _, h := range p.Hashtags {
			tags[strings.ToLower(h)]++
		}
	}

	pct := trending.Percentages(dist)
	rows := make([]LabelRow, 0, len(model.Labels()))
	for _, l := range model.Labels() {
		rows = append(rows, LabelRow{Label: l, Count: dist[l], Percent: pct[l]})
	}

	d := Data{
		Title:    strings.TrimSpace(ExpandVars(title, now)),
		Slug:     "sentiment-" + now.UTC().Format("20060102-1504"),
		Datetime: now.UTC().Format("2006-01-02 15:04"),
		Total:    len(posts),
		Labels:   rows,
		Hashtags: topHashtags(tags, maxHashtags),
		Posts:    posts,
	}
	if d.Title == "" {
		d.Title = "Sentiment Report " + now.UTC().Format("2006-01-02")
	}
	if len(posts) > 0 {
		d.AvgConfidence = random.Round(conf/float64(len(posts)), 2)
	}
	return d
}

func topHashtags(counts map[string]int, n int) []HashtagRow {
	out := make([]HashtagRow, 0, len(counts))
	for tag, c := range counts {
		out = append(out, HashtagRow{Tag: tag, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// WriteFile renders d into dir/<slug>.md and returns the written path.
func WriteFile(dir string, d Data) (string, error) {
	md, err := Render(d)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create output dir: %w", err)
	}
	path := filepath.Join(dir, d.Slug+".md")
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}
