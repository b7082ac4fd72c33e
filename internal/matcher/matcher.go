package matcher

import (
	"log/slog"

	"algaid/internal/catalog"
	"algaid/internal/logging"
)

// DefaultThresholdPercent is the minimum share of a species' specified
// attributes that must match for it to be a candidate.
const DefaultThresholdPercent = 70

// Identify scores observed against every species in c using the default
// threshold.
func Identify(observed Attributes, c *catalog.Catalog) Result {
	result, _ := evaluate(observed, c, DefaultThresholdPercent)
	return result
}

// Evaluate returns one score per species, in catalog order, using the
// default threshold.
func Evaluate(observed Attributes, c *catalog.Catalog) []Score {
	_, scores := evaluate(observed, c, DefaultThresholdPercent)
	return scores
}

// Matcher identifies specimens with a configurable threshold and logs the
// scoring of each species.
type Matcher struct {
	logger           *slog.Logger
	thresholdPercent int
}

// New constructs a Matcher. Thresholds outside 1..100 fall back to the default.
func New(logger *slog.Logger, thresholdPercent int) *Matcher {
	if thresholdPercent <= 0 || thresholdPercent > 100 {
		thresholdPercent = DefaultThresholdPercent
	}
	return &Matcher{
		logger:           logging.NewComponentLogger(logger, "matcher"),
		thresholdPercent: thresholdPercent,
	}
}

// ThresholdPercent returns the active threshold.
func (m *Matcher) ThresholdPercent() int {
	return m.thresholdPercent
}

// Identify returns the best match for observed along with every species score.
func (m *Matcher) Identify(observed Attributes, c *catalog.Catalog) (Result, []Score) {
	result, scores := evaluate(observed, c, m.thresholdPercent)
	for _, s := range scores {
		m.logger.Debug("species scored",
			logging.String(logging.FieldSpecies, s.Species),
			logging.Int("matched", s.Matched),
			logging.Int("specified", s.Specified),
			logging.Float64(logging.FieldPercentage, s.Percentage),
			logging.Bool("qualifies", s.Qualifies),
		)
	}
	if result.IsIdentified() {
		m.logger.Info("species identified",
			logging.String(logging.FieldEventType, "species_identified"),
			logging.String(logging.FieldSpecies, result.Species),
			logging.Int("threshold_percent", m.thresholdPercent),
		)
	} else {
		m.logger.Info("no species reached threshold",
			logging.String(logging.FieldEventType, "species_unidentified"),
			logging.Int("threshold_percent", m.thresholdPercent),
			logging.Int("catalog_size", c.Len()),
		)
	}
	return result, scores
}

func evaluate(observed Attributes, c *catalog.Catalog, thresholdPercent int) (Result, []Score) {
	templates := c.All()
	scores := make([]Score, 0, len(templates))
	best := Unidentified()
	bestMatched := 0

	for _, t := range templates {
		s := scoreTemplate(observed, t, thresholdPercent)
		scores = append(scores, s)
		// Strict comparison keeps the earliest species on ties.
		if s.Qualifies && s.Matched > bestMatched {
			best = Identified(t.Name)
			bestMatched = s.Matched
		}
	}
	return best, scores
}

func scoreTemplate(observed Attributes, t catalog.SpeciesTemplate, thresholdPercent int) Score {
	specified := t.Specified()
	s := Score{Species: t.Name, Specified: len(specified)}
	if len(specified) == 0 {
		return s
	}
	s.Matchable = true
	for _, exp := range specified {
		if value, ok := observed.Get(exp.Attribute); ok && value == exp.Value {
			s.Matched++
		}
	}
	s.Percentage = float64(s.Matched) / float64(len(specified)) * 100
	s.Qualifies = s.Matched*100 >= thresholdPercent*len(specified)
	return s
}
