package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tweet-sentiment/internal/redisclient"
	"tweet-sentiment/internal/storage"

	"github.com/spf13/cobra"
)

// redisStatsCmd prints the usage counters stored in Redis.
var redisStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print usage counters stored in Redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		rdb := redisclient.New(GetConfig().Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		st, err := storage.NewRedisStore(rdb).Snapshot(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	},
}

var redisResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero the usage counters stored in Redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		rdb := redisclient.New(GetConfig().Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		if err := storage.NewRedisStore(rdb).Reset(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}

func init() {
	redisCmd.AddCommand(redisStatsCmd, redisResetCmd)
}
