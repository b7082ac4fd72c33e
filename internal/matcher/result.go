package matcher

// Outcome distinguishes identified from unidentified results.
type Outcome string

const (
	OutcomeIdentified   Outcome = "identified"
	OutcomeUnidentified Outcome = "unidentified"
)

// Result is the outcome of one identification.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Species string  `json:"species,omitempty"`
}

// Identified builds a result naming species.
func Identified(species string) Result {
	return Result{Outcome: OutcomeIdentified, Species: species}
}

// Unidentified builds a result without a species.
func Unidentified() Result {
	return Result{Outcome: OutcomeUnidentified}
}

// IsIdentified reports whether a species was found.
func (r Result) IsIdentified() bool {
	return r.Outcome == OutcomeIdentified
}

// Score is the per-species breakdown behind a result.
type Score struct {
	Species    string  `json:"species"`
	Matched    int     `json:"matched"`
	Specified  int     `json:"specified"`
	Percentage float64 `json:"percentage"`
	Matchable  bool    `json:"matchable"`
	Qualifies  bool    `json:"qualifies"`
}
