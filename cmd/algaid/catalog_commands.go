package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"algaid/internal/catalog"
	"algaid/internal/catalogstore"
	"algaid/internal/config"
	"algaid/internal/questionnaire"
)

type speciesView struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Texture  string `json:"texture,omitempty"`
	Shape    string `json:"shape,omitempty"`
	Habitat  string `json:"habitat,omitempty"`
	Length   string `json:"length,omitempty"`
}

type catalogView struct {
	Source  string        `json:"source"`
	Species []speciesView `json:"species"`
}

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the species catalog",
	}

	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogExportCommand(ctx))
	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogInfoCommand(ctx))
	catalogCmd.AddCommand(newCatalogValidateCommand())

	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the active catalog in row order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger(cfg)
			if err != nil {
				return err
			}
			cat, source, err := ctx.activeCatalog(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, buildCatalogView(cat, source))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCatalogTable(cat, source))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the catalog as JSON")
	return cmd
}

func newCatalogExportCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger(cfg)
			if err != nil {
				return err
			}
			cat, _, err := ctx.activeCatalog(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(output)
			if target == "" || target == "-" {
				return catalog.Write(cmd.OutOrStdout(), cat)
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := catalog.Save(target, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d species to %s\n", cat.Len(), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default stdout)")
	return cmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the catalog database with a TOML catalog",
		Long: `Validate a TOML catalog and store it in the SQLite catalog database,
replacing every stored species. Row order is kept, so it still decides ties.
Set catalog.source = "database" to identify against the imported catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger(cfg)
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("resolve catalog path: %w", err)
			}
			cat, err := catalog.Load(path)
			if err != nil {
				return err
			}

			store, err := catalogstore.Open(cmd.Context(), cfg.Catalog.Database, logger)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Replace(cmd.Context(), cat, path); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d species from %s into %s\n", cat.Len(), filepath.Base(path), store.Path())
			if cfg.Catalog.Source != config.CatalogSourceDatabase {
				fmt.Fprintf(out, "Active catalog source is %q; set catalog.source = \"database\" to use the imported catalog\n", cfg.Catalog.Source)
			}
			return nil
		},
	}
}

func newCatalogInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what the catalog database holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger(cfg)
			if err != nil {
				return err
			}
			store, err := catalogstore.Open(cmd.Context(), cfg.Catalog.Database, logger)
			if err != nil {
				return err
			}
			defer store.Close()
			info, err := store.Info(cmd.Context())
			if err != nil {
				return err
			}

			imported := "never"
			if !info.ImportedAt.IsZero() {
				imported = info.ImportedAt.Local().Format(time.RFC3339)
			}
			source := info.Source
			if source == "" {
				source = "-"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Active source: %s\n", cfg.Catalog.Source)
			fmt.Fprintf(out, "Database:      %s\n", info.Path)
			fmt.Fprintf(out, "Species:       %d\n", info.Species)
			fmt.Fprintf(out, "Imported from: %s\n", source)
			fmt.Fprintf(out, "Imported at:   %s\n", imported)
			return nil
		},
	}
}

func newCatalogValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "validate <file>",
		Short:       "Check a TOML catalog without storing it",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("resolve catalog path: %w", err)
			}
			cat, err := catalog.Load(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range cat.All() {
				if !t.Matchable() {
					fmt.Fprintf(out, "Warning: %s specifies no attributes and can never be identified\n", t.Name)
					continue
				}
				for _, exp := range t.Specified() {
					if questionnaire.Known(exp.Attribute, exp.Value) {
						continue
					}
					line := fmt.Sprintf("Warning: %s: %s %q cannot be answered from the questionnaire", t.Name, exp.Attribute, exp.Value)
					if suggestion, ok := questionnaire.Suggest(exp.Attribute, exp.Value); ok {
						line += fmt.Sprintf(" (did you mean %q?)", suggestion)
					}
					fmt.Fprintln(out, line)
				}
			}
			fmt.Fprintf(out, "Catalog valid: %d species\n", cat.Len())
			return nil
		},
	}
}

func buildCatalogView(c *catalog.Catalog, source string) catalogView {
	view := catalogView{Source: source, Species: make([]speciesView, 0, c.Len())}
	for i, t := range c.All() {
		view.Species = append(view.Species, speciesView{
			Position: i + 1,
			Name:     t.Name,
			Color:    t.Color,
			Texture:  t.Texture,
			Shape:    t.Shape,
			Habitat:  t.Habitat,
			Length:   string(t.Length),
		})
	}
	return view
}
