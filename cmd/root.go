package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/circulation/internal/config"
	"github.com/lehigh-university-libraries/circulation/internal/library"
	"github.com/lehigh-university-libraries/circulation/internal/seed"
	"github.com/lehigh-university-libraries/circulation/internal/suggest"
	"github.com/spf13/cobra"
)

// globalFlags override the matching environment settings when set.
type globalFlags struct {
	seedPath string
	source   string
	verbose  bool
}

func NewRootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "circulation",
		Short: "Library catalog and loan tracker",
		Long: `Circulation keeps a small library catalog and tracks which books are on loan.

It can run as an interactive shell or as a JSON HTTP API, and it can pull
book suggestions from Google Books, Open Library, a VuFind catalog or an LLM.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if flags.verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flags.seedPath, "seed", "", "Seed catalog file (.yaml, .jsonl or .parquet); overrides CATALOG_SEED")
	cmd.PersistentFlags().StringVar(&flags.source, "source", "", "Suggestion source (googlebooks, openlibrary, vufind, llm, none); overrides SUGGEST_SOURCE")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Verbose logging")

	cmd.AddCommand(newServeCmd(&flags))
	cmd.AddCommand(newShellCmd(&flags))
	cmd.AddCommand(newSuggestCmd(&flags))
	cmd.AddCommand(newCatalogCmd(&flags))

	return cmd
}

func (f *globalFlags) config() config.Config {
	cfg := config.Load()
	if f.seedPath != "" {
		cfg.SeedPath = f.seedPath
	}
	if f.source != "" {
		cfg.SuggestSource = f.source
	}
	return cfg
}

// catalog loads the seed books named by cfg.
func catalog(cfg config.Config) ([]library.Book, error) {
	books, err := seed.Books(cfg.SeedPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded seed catalog", "path", cfg.SeedPath, "books", len(books))
	return books, nil
}

func suggester(cmd *cobra.Command, cfg config.Config) (suggest.Source, error) {
	src, err := suggest.New(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	slog.Debug("Suggestion source ready", "source", cfg.SuggestSource)
	return src, nil
}
