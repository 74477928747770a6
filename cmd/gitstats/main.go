// Package main provides the gitstats command line tool. It reads a git
// repository (or a pre-extracted commit log on stdin) and prints commit
// statistics as a colored terminal report or JSON.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gitstats/internal/gitlog"
	"gitstats/internal/render"
	"gitstats/internal/stats"
	"gitstats/internal/validation"
)

var version = "dev"

type statsOptions struct {
	jsonOutput bool
	since      string
	until      string
	author     string
	top        int
	fromStdin  bool
}

func main() {
	opts := &statsOptions{}

	rootCmd := &cobra.Command{
		Use:   "gitstats [path]",
		Short: "Commit statistics for git repositories",
		Long: `gitstats analyzes the commit history of a git repository and reports
per-author contribution, weekly and hourly activity and commit streaks.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runStats(cmd, path, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.jsonOutput, "json", "j", false, "output as JSON")
	flags.StringVarP(&opts.since, "since", "s", "", "only commits on or after this date (YYYY-MM-DD)")
	flags.StringVarP(&opts.until, "until", "u", "", "only commits on or before this date (YYYY-MM-DD)")
	flags.StringVarP(&opts.author, "author", "a", "", "only commits whose author name contains this string")
	flags.IntVarP(&opts.top, "top", "t", 10, "number of authors to show")
	flags.BoolVar(&opts.fromStdin, "stdin", false, "read 'hash|author|email|RFC3339 date' lines from stdin instead of a repository")

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(cmd *cobra.Command, path string, opts *statsOptions) error {
	v := validation.New()
	v.Date("since", opts.since).
		Date("until", opts.until).
		GreaterThan("top", opts.top, 0)
	if err := v.Validate(); err != nil {
		return err
	}

	since, _ := validation.ParseDate(opts.since)
	until, _ := validation.ParseDate(opts.until)

	var (
		commits []stats.Commit
		err     error
	)
	if opts.fromStdin {
		path = "stdin"
		commits, err = gitlog.ReadFrom(cmd.InOrStdin())
	} else {
		commits, err = gitlog.ReadContext(cmd.Context(), path)
	}
	if err != nil {
		return err
	}

	filter := stats.Filter{Since: since, Until: until, Author: opts.author}

	snapshot, err := stats.Build(commits, filter, time.Now())
	if err != nil {
		return err
	}

	report := render.Report{
		Repository: path,
		Snapshot:   snapshot,
		Filter:     filter,
		Top:        opts.top,
	}

	if opts.jsonOutput {
		return render.JSON(cmd.OutOrStdout(), report)
	}

	render.Text(cmd.OutOrStdout(), report)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gitstats %s\n", version)
		},
	}
}
