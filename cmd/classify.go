package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"tweet-sentiment/internal/model"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <text...>",
	Short: "Classify text and print the result as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		c, err := newClassifier(cfg, randomSource(0))
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		res, err := c.Classify(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(model.AnalyzeResponse{ClassificationResult: res, AnalyzedAt: time.Now()})
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
