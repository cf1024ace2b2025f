package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSuggestCmd(flags *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "Look up book suggestions",
		Example: `  circulation suggest "ursula le guin" --source openlibrary
  circulation suggest dune --max 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.config()
			if !cmd.Flags().Changed("max") {
				limit = cfg.SuggestMaxResults
			}

			src, err := suggester(cmd, cfg)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			found, err := src.Suggest(cmd.Context(), query, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintf(out, "No suggestions for %q\n", query)
				return nil
			}

			fmt.Fprintf(out, "%-4s %-45s %-30s %s\n", "#", "TITLE", "AUTHOR", "YEAR")
			for i, b := range found {
				year := "-"
				if b.Year > 0 {
					year = fmt.Sprint(b.Year)
				}
				fmt.Fprintf(out, "%-4d %-45s %-30s %s\n", i+1, truncate(b.Title, 45), truncate(b.Author, 30), year)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "max", 6, "Maximum number of suggestions; overrides SUGGEST_MAX_RESULTS")

	return cmd
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
