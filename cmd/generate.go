package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"tweet-sentiment/internal/mockdata"
	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/report"

	"github.com/spf13/cobra"
)

var (
	genCount     int
	genSeed      uint64
	genSentiment string
	genStart     string
	genEnd       string
	genFormat    string
	genOutputDir string
)

// generateCmd prints a batch of synthetic posts, or writes it as a Markdown report.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic posts as JSON or a Markdown report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		now := time.Now()
		posts := newGenerator(cfg, randomSource(genSeed)).Generate(genCount)
		posts = mockdata.Filter{Sentiment: genSentiment, Start: genStart, End: genEnd}.Apply(posts)

		switch genFormat {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(model.PostsResponse{
				Count:       len(posts),
				Posts:       posts,
				Query:       cfg.Generator.Query,
				GeneratedAt: now,
			})
		case "markdown", "md":
			d := report.Build(posts, cfg.Report.Title, now)
			dir := genOutputDir
			if dir == "" {
				dir = cfg.Report.OutputDir
			}
			path, err := report.WriteFile(dir, d)
			if err != nil {
				return err
			}
			slog.Info("generate: report written", "path", path, "posts", d.Total)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want json or markdown)", genFormat)
		}
	},
}

func init() {
	f := generateCmd.Flags()
	f.IntVarP(&genCount, "count", "n", 20, "number of posts to generate (capped by generator.max_posts)")
	f.Uint64Var(&genSeed, "seed", 0, "seed for reproducible output (0 = random)")
	f.StringVar(&genSentiment, "sentiment", "", "keep only posts with this sentiment")
	f.StringVar(&genStart, "start-date", "", "keep posts created at or after this ISO-8601 time")
	f.StringVar(&genEnd, "end-date", "", "keep posts created at or before this ISO-8601 time")
	f.StringVar(&genFormat, "format", "json", "output format: json or markdown")
	f.StringVar(&genOutputDir, "output-dir", "", "markdown output directory (default: report.output_dir)")
	rootCmd.AddCommand(generateCmd)
}
