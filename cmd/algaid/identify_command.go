package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"algaid/internal/catalog"
	"algaid/internal/logging"
	"algaid/internal/matcher"
	"algaid/internal/questionnaire"
	"algaid/internal/session"
)

type identifyReport struct {
	SessionID        string            `json:"session_id"`
	Outcome          matcher.Outcome   `json:"outcome"`
	Species          string            `json:"species,omitempty"`
	Candidates       []string          `json:"candidates,omitempty"`
	ThresholdPercent int               `json:"threshold_percent"`
	Catalog          string            `json:"catalog"`
	Observed         map[string]string `json:"observed"`
	Scores           []matcher.Score   `json:"scores"`
}

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	values := make(map[catalog.Attribute]*string, len(catalog.Attributes()))
	var noPrompt bool
	var explain bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "identify",
		Short: "Identify an alga from its color, texture, shape, habitat and size",
		Long: `Ask about the specimen and report the best matching species.

Traits given as flags are not asked again. A species is a candidate when at
least the configured share (70% by default) of the traits it specifies match;
among candidates the one with the most matching traits wins and earlier
catalog rows win ties.

Examples:
  algaid identify
  algaid identify --color verde --texture lisa --shape hoja --habitat intermareal
  algaid identify --color rojo --texture gelatinosa --no-prompt --explain`,
		Args: cobra.NoArgs,
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

			m := matcher.New(logger, cfg.Matching.ThresholdPercent)
			s, err := session.New(cat, m, logger)
			if err != nil {
				return err
			}

			for _, attr := range catalog.Attributes() {
				if !cmd.Flags().Changed(flagName(attr)) {
					continue
				}
				value := questionnaire.Normalize(attr, *values[attr])
				if vocab := vocabulary(cat, attr); !slices.Contains(vocab, value) {
					warnUnknownValue(cmd.ErrOrStderr(), logger, attr, value, vocab)
				}
				if err := s.Set(attr, value); err != nil {
					return fmt.Errorf("set %s: %w", attr, err)
				}
			}

			if _, done := s.Result(); !done {
				if noPrompt {
					if _, err := s.Score(); err != nil {
						return err
					}
				} else if err := askMissing(cmd, s, jsonOut, logger); err != nil {
					return err
				}
			}

			result, _ := s.Result()
			if jsonOut {
				return writeJSON(cmd, buildIdentifyReport(s, result, cat, m.ThresholdPercent(), source))
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprint(out, renderResult(result, cat, colorize))
			if explain {
				fmt.Fprintln(out)
				for _, line := range renderSectionHeader("Puntuación por especie", colorize) {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, renderScoreTable(s.Scores(), m.ThresholdPercent()))
			}
			return nil
		},
	}

	for _, attr := range catalog.Attributes() {
		values[attr] = new(string)
		cmd.Flags().StringVar(values[attr], flagName(attr), "", flagUsage(attr))
	}
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Score the traits given as flags without asking for the rest")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show the score of every species")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the result as JSON")

	return cmd
}

// askMissing runs the questionnaire for unanswered traits. With --json the
// menus go to stderr so stdout stays machine readable.
func askMissing(cmd *cobra.Command, s *session.Session, jsonOut bool, logger *slog.Logger) error {
	var prompts io.Writer = cmd.OutOrStdout()
	if jsonOut {
		prompts = cmd.ErrOrStderr()
	}
	p := questionnaire.NewPrompter(cmd.InOrStdin(), prompts, logger)
	if len(s.Missing()) == len(catalog.Attributes()) {
		p.Banner()
	}
	if err := p.Fill(s); err != nil {
		if errors.Is(err, questionnaire.ErrNoInput) {
			return fmt.Errorf("questionnaire interrupted (%w); pass --no-prompt to score the traits given so far", err)
		}
		return err
	}
	return nil
}

// vocabulary lists the values accepted for attr without a warning: the menu
// values followed by any the active catalog adds.
func vocabulary(c *catalog.Catalog, attr catalog.Attribute) []string {
	vocab := questionnaire.Values(attr)
	for _, value := range c.Values(attr) {
		if !slices.Contains(vocab, value) {
			vocab = append(vocab, value)
		}
	}
	return vocab
}

// warnUnknownValue flags a trait that is neither a menu value nor expected by
// any species in the active catalog, suggesting the closest known value when
// one is a likely typo.
func warnUnknownValue(w io.Writer, logger *slog.Logger, attr catalog.Attribute, value string, vocab []string) {
	hint := "known values: " + strings.Join(vocab, ", ")
	if suggestion, ok := questionnaire.Closest(value, vocab); ok {
		hint = fmt.Sprintf("did you mean %q?", suggestion)
	}
	fmt.Fprintf(w, "Warning: %s %q is not a known value; %s\n", flagName(attr), value, hint)
	logging.WarnWithContext(logger, "unknown attribute value", "unknown_attribute_value",
		logging.String(logging.FieldAttribute, string(attr)),
		logging.String("value", value),
		logging.String(logging.FieldErrorHint, hint),
		logging.String(logging.FieldImpact, "no species in the active catalog expects this value"),
	)
}

func buildIdentifyReport(s *session.Session, result matcher.Result, c *catalog.Catalog, threshold int, source string) identifyReport {
	observed := make(map[string]string)
	for attr, value := range s.Observed() {
		observed[string(attr)] = value
	}
	report := identifyReport{
		SessionID:        s.ID(),
		Outcome:          result.Outcome,
		Species:          result.Species,
		ThresholdPercent: threshold,
		Catalog:          source,
		Observed:         observed,
		Scores:           s.Scores(),
	}
	if !result.IsIdentified() {
		report.Candidates = c.Names()
	}
	return report
}

func flagName(attr catalog.Attribute) string {
	if attr == catalog.AttrLength {
		return "length"
	}
	return string(attr)
}

func flagUsage(attr catalog.Attribute) string {
	values := questionnaire.Values(attr)
	if len(values) == 0 {
		return string(attr)
	}
	return fmt.Sprintf("Observed %s (%s)", flagName(attr), strings.Join(values, ", "))
}
