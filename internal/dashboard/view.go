package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"tweet-sentiment/internal/mockdata"
	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/random"
	"tweet-sentiment/internal/trending"
)

// View is everything the dashboard draws, computed from one fetch.
type View struct {
	Total         int
	Counts        map[model.Label]int
	Percentages   map[model.Label]float64
	AvgConfidence float64
	Topics        []model.TopicCount
	Distribution  map[model.Label]int
	Posts         []model.Post
}

// Build summarizes the fetched posts. The trending summary may be nil when it
// could not be fetched.
func Build(posts []model.Post, tr *model.TrendingSummary) View {
	v := View{
		Total:  len(posts),
		Counts: map[model.Label]int{},
		Posts:  posts,
	}
	var conf float64
	for _, p := range posts {
		v.Counts[p.Label]++
		conf += p.Confidence
	}
	v.Percentages = trending.Percentages(v.Counts)
	if len(posts) > 0 {
		v.AvgConfidence = random.Round(conf/float64(len(posts)), 2)
	}
	if tr != nil {
		v.Topics = tr.Topics
		v.Distribution = tr.Distribution
	}
	return v
}

// RenderOptions control the recent posts panel.
type RenderOptions struct {
	Recent int    // rows shown; zero shows all
	Search string // keyword filter, case-insensitive
}

func Render(w io.Writer, v View, opts RenderOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "== Overview")
	fmt.Fprintf(tw, "Total posts\t%d\n", v.Total)
	for _, l := range model.Labels() {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", title(l), v.Counts[l], v.Percentages[l])
	}
	fmt.Fprintf(tw, "Avg confidence\t%.2f\n", v.AvgConfidence)

	if len(v.Topics) > 0 {
		fmt.Fprintln(tw, "\n== Trending topics")
		for i, t := range v.Topics {
			fmt.Fprintf(tw, "%d. %s\t%d\t%s\n", i+1, t.Topic, t.Count, bar(t.Count, v.Topics[0].Count))
		}
	}
	if len(v.Distribution) > 0 {
		fmt.Fprintln(tw, "\n== Sentiment distribution (24h)")
		pct := trending.Percentages(v.Distribution)
		for _, l := range model.Labels() {
			fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", title(l), v.Distribution[l], pct[l])
		}
	}

	posts := mockdata.Search(v.Posts, opts.Search)
	if opts.Recent > 0 && len(posts) > opts.Recent {
		posts = posts[:opts.Recent]
	}
	heading := "\n== Recent posts"
	if s := strings.TrimSpace(opts.Search); s != "" {
		heading += fmt.Sprintf(" matching %q", s)
	}
	fmt.Fprintln(tw, heading)
	if len(posts) == 0 {
		fmt.Fprintln(tw, "(none)")
	} else {
		fmt.Fprintln(tw, "ID\tAUTHOR\tSENTIMENT\tCONF\tCREATED\tTEXT")
		for _, p := range posts {
			fmt.Fprintf(tw, "%s\t@%s\t%s\t%.2f\t%s\t%s\n",
				p.ID, p.Author.Handle, p.Label, p.Confidence,
				p.CreatedAt.Format(time.DateTime), truncate(p.Text, 60))
		}
	}
	return tw.Flush()
}

// RenderAnalysis prints a single classification result.
func RenderAnalysis(w io.Writer, res model.AnalyzeResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Text\t%s\n", res.Text)
	fmt.Fprintf(tw, "Sentiment\t%s\n", title(res.Label))
	fmt.Fprintf(tw, "Confidence\t%.2f\n", res.Confidence)
	fmt.Fprintf(tw, "Words\t%d\n", res.WordCount)
	tags := "-"
	if len(res.Hashtags) > 0 {
		tags = strings.Join(res.Hashtags, " ")
	}
	fmt.Fprintf(tw, "Hashtags\t%s\n", tags)
	fmt.Fprintf(tw, "Model\t%s\n", res.Model)
	return tw.Flush()
}

func title(l model.Label) string {
	s := string(l)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

const barWidth = 20

func bar(n, top int) string {
	if top <= 0 || n <= 0 {
		return ""
	}
	w := n * barWidth / top
	if w == 0 {
		w = 1
	}
	return strings.Repeat("#", w)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
