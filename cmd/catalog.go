package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lehigh-university-libraries/circulation/internal/library"
	"github.com/lehigh-university-libraries/circulation/internal/seed"
	"github.com/spf13/cobra"
)

func newCatalogCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Seed catalog tools",
	}
	cmd.AddCommand(newCatalogExportCmd(flags))
	return cmd
}

func newCatalogExportCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the seed catalog as YAML",
		Long: `Loads the seed catalog (the built-in list, or --seed) and writes it as YAML.

The result can be edited and passed back with --seed.`,
		Example: `  # Start a seed file from the built-in catalog
  circulation catalog export --output books.yaml

  # Convert a parquet seed to YAML on stdout
  circulation catalog export --seed books.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := catalog(flags.config())
			if err != nil {
				return err
			}

			if output == "" {
				if err := seed.WriteYAML(cmd.OutOrStdout(), books); err != nil {
					return fmt.Errorf("failed to write catalog: %w", err)
				}
				return nil
			}

			if err := exportFile(output, books); err != nil {
				return err
			}
			slog.Info("Catalog exported", "path", output, "books", len(books))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to stdout)")

	return cmd
}

func exportFile(path string, books []library.Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := seed.WriteYAML(f, books); err != nil {
		f.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
