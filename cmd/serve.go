package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tweet-sentiment/internal/api"
	"tweet-sentiment/internal/metrics"
	"tweet-sentiment/internal/trending"
	"tweet-sentiment/worker"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveSeed uint64

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		readTimeout, err := parseDuration("server.read_timeout", cfg.Server.ReadTimeout)
		if err != nil {
			return err
		}
		writeTimeout, err := parseDuration("server.write_timeout", cfg.Server.WriteTimeout)
		if err != nil {
			return err
		}
		shutdownTimeout, err := parseDuration("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
		if err != nil {
			return err
		}

		src := randomSource(serveSeed)
		classifier, err := newClassifier(cfg, src)
		if err != nil {
			return err
		}
		stats, closeStats := newStatsStore(cfg)
		defer closeStats()

		gin.SetMode(cfg.Server.GinMode)
		router := api.NewRouter(api.Deps{
			Classifier:   classifier,
			Generator:    newGenerator(cfg, src),
			Trending:     trending.NewBuilder(src, time.Now, cfg.Generator.TopTopics),
			Stats:        stats,
			Metrics:      metrics.NewCollector("tweet_sentiment"),
			Logger:       slog.Default(),
			Query:        cfg.Generator.Query,
			DefaultLimit: cfg.Generator.DefaultLimit,
			BatchWorkers: cfg.Classifier.BatchWorkers,
			CORSOrigins:  cfg.Server.CORSOrigins,
			Now:          time.Now,
			StartedAt:    time.Now(),
		})

		mgr := worker.NewManager(
			&worker.HTTPServer{
				Addr:            cfg.Server.Addr,
				Handler:         router,
				ReadTimeout:     readTimeout,
				WriteTimeout:    writeTimeout,
				ShutdownTimeout: shutdownTimeout,
			},
			&worker.StatsReporter{
				Store:    stats,
				Schedule: cfg.Stats.ReportSchedule,
			},
		)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		go func() {
			<-ctx.Done()
			slog.Info("serve: shutting down")
		}()
		return mgr.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().Uint64Var(&serveSeed, "seed", 0, "seed for reproducible output (0 = random)")
	rootCmd.AddCommand(serveCmd)
}
