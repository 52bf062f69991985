package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tweet-sentiment/internal/dashboard"
	"tweet-sentiment/internal/model"

	"github.com/spf13/cobra"
)

var (
	dashSentiment string
	dashSearch    string
	dashLimit     int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print a sentiment dashboard fetched from a running API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		client, err := newDashboardClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if _, err := client.Health(ctx); err != nil {
			return explain(err, cfg.Dashboard.APIURL)
		}
		limit := dashLimit
		if limit <= 0 {
			limit = cfg.Dashboard.PostLimit
		}
		posts, err := client.Posts(ctx, limit, dashSentiment)
		if err != nil {
			return explain(err, cfg.Dashboard.APIURL)
		}
		var tr *model.TrendingSummary
		if s, err := client.Trending(ctx); err != nil {
			slog.Warn("dashboard: trending unavailable", "error", err)
		} else {
			tr = &s
		}

		return dashboard.Render(cmd.OutOrStdout(), dashboard.Build(posts.Posts, tr), dashboard.RenderOptions{
			Recent: cfg.Dashboard.RecentRows,
			Search: dashSearch,
		})
	},
}

var dashboardAnalyzeCmd = &cobra.Command{
	Use:   "analyze <text...>",
	Short: "Classify text through the API",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newDashboardClient()
		if err != nil {
			return err
		}
		res, err := client.Analyze(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return explain(err, GetConfig().Dashboard.APIURL)
		}
		return dashboard.RenderAnalysis(cmd.OutOrStdout(), res)
	},
}

func newDashboardClient() (*dashboard.Client, error) {
	cfg := GetConfig()
	timeout, err := parseDuration("dashboard.timeout", cfg.Dashboard.Timeout)
	if err != nil {
		return nil, err
	}
	return dashboard.NewClient(cfg.Dashboard.APIURL, timeout), nil
}

func explain(err error, url string) error {
	if errors.Is(err, dashboard.ErrUnreachable) {
		return fmt.Errorf("cannot reach the API at %s; start it with `tweet-sentiment serve`: %w", url, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("API at %s timed out: %w", url, err)
	}
	return err
}

func init() {
	f := dashboardCmd.Flags()
	f.StringVar(&dashSentiment, "sentiment", "", "only fetch posts with this sentiment")
	f.StringVar(&dashSearch, "search", "", "filter recent posts by keyword")
	f.IntVar(&dashLimit, "limit", 0, "posts to fetch (default: dashboard.post_limit)")
	dashboardCmd.AddCommand(dashboardAnalyzeCmd)
	rootCmd.AddCommand(dashboardCmd)
}
