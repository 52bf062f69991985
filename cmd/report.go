package cmd

import (
	"fmt"
	"sort"

	"tweet-sentiment/internal/markdown"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Markdown report utilities",
}

// reportInspectCmd parses a generated report and prints its frontmatter.
var reportInspectCmd = &cobra.Command{
	Use:   "inspect <markdown_path>",
	Short: "Parse a report and print its frontmatter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := markdown.ParseFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		keys := make([]string, 0, len(doc.Frontmatter))
		for k := range doc.Frontmatter {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %v\n", k, doc.Frontmatter[k])
		}
		fmt.Fprintf(out, "body bytes: %d\n", len(doc.Body))
		return nil
	},
}

func init() {
	reportCmd.AddCommand(reportInspectCmd)
	rootCmd.AddCommand(reportCmd)
}
