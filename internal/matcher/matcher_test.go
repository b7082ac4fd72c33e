package matcher_test

import (
	"testing"

	"algaid/internal/catalog"
	"algaid/internal/logging"
	"algaid/internal/matcher"
)

func ulvaCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.SpeciesTemplate{
		Name:    "Ulva lactuca",
		Color:   "verde",
		Texture: "lisa",
		Shape:   "hoja",
		Habitat: "intermareal",
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestIdentifyExactMatch(t *testing.T) {
	observed := matcher.Attributes{
		catalog.AttrColor:   "verde",
		catalog.AttrTexture: "lisa",
		catalog.AttrShape:   "hoja",
		catalog.AttrHabitat: "intermareal",
	}
	got := matcher.Identify(observed, ulvaCatalog(t))
	if !got.IsIdentified() || got.Species != "Ulva lactuca" {
		t.Fatalf("expected Ulva lactuca, got %+v", got)
	}
}

func TestIdentifyBelowThreshold(t *testing.T) {
	observed := matcher.Attributes{
		catalog.AttrColor:   "verde",
		catalog.AttrTexture: "aspera",
		catalog.AttrShape:   "hoja",
		catalog.AttrHabitat: "submareal",
	}
	got := matcher.Identify(observed, ulvaCatalog(t))
	if got.IsIdentified() {
		t.Fatalf("expected unidentified at 50%%, got %+v", got)
	}
	if got != matcher.Unidentified() {
		t.Fatalf("unexpected result value: %+v", got)
	}
}

func TestIdentifyPartialMatchAboveThreshold(t *testing.T) {
	c, err := catalog.New(catalog.SpeciesTemplate{
		Name:    "Porphyra umbilicalis",
		Color:   "rojo",
		Texture: "gelatinosa",
		Habitat: "rocoso",
		Length:  catalog.LengthShort,
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	observed := matcher.Attributes{
		catalog.AttrColor:   "rojo",
		catalog.AttrTexture: "gelatinosa",
		catalog.AttrLength:  "corta",
		catalog.AttrHabitat: "submareal",
	}
	got := matcher.Identify(observed, c)
	if got.Species != "Porphyra umbilicalis" {
		t.Fatalf("expected Porphyra umbilicalis at 75%%, got %+v", got)
	}
	scores := matcher.Evaluate(observed, c)
	if len(scores) != 1 || scores[0].Matched != 3 || scores[0].Specified != 4 || scores[0].Percentage != 75 {
		t.Fatalf("unexpected score: %+v", scores)
	}
}

func TestIdentifyTieKeepsEarliestSpecies(t *testing.T) {
	c, err := catalog.New(
		catalog.SpeciesTemplate{Name: "First", Color: "rojo", Texture: "lisa", Shape: "hoja"},
		catalog.SpeciesTemplate{Name: "Second", Color: "rojo", Texture: "lisa", Habitat: "rocoso"},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	observed := matcher.Attributes{
		catalog.AttrColor:   "rojo",
		catalog.AttrTexture: "lisa",
		catalog.AttrShape:   "hoja",
		catalog.AttrHabitat: "rocoso",
	}
	got := matcher.Identify(observed, c)
	if got.Species != "First" {
		t.Fatalf("expected earliest species on tie, got %+v", got)
	}
}

func TestIdentifyRanksByMatchedCountNotPercentage(t *testing.T) {
	// One-attribute species reaches 100% but the four-of-five species has
	// more matching attributes.
	c, err := catalog.New(
		catalog.SpeciesTemplate{Name: "Narrow", Color: "marron"},
		catalog.SpeciesTemplate{Name: "Broad", Color: "marron", Texture: "aspera", Shape: "cinta", Habitat: "rocoso", Length: catalog.LengthLong},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	observed := matcher.Attributes{
		catalog.AttrColor:   "marron",
		catalog.AttrTexture: "aspera",
		catalog.AttrShape:   "cinta",
		catalog.AttrHabitat: "arena",
		catalog.AttrLength:  "largo",
	}
	got := matcher.Identify(observed, c)
	if got.Species != "Broad" {
		t.Fatalf("expected Broad (4 matches) over Narrow (1 match), got %+v", got)
	}
}

func TestIdentifySingleAttributeSpeciesQualifiesEasily(t *testing.T) {
	c, err := catalog.New(
		catalog.SpeciesTemplate{Name: "Narrow", Color: "azul"},
		catalog.SpeciesTemplate{Name: "Broad", Color: "azul", Texture: "lisa", Shape: "hoja"},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	observed := matcher.Attributes{catalog.AttrColor: "azul"}
	got := matcher.Identify(observed, c)
	if got.Species != "Narrow" {
		t.Fatalf("expected single-attribute species to qualify at 100%%, got %+v", got)
	}
}

func TestIdentifySkipsUnmatchableTemplates(t *testing.T) {
	c, err := catalog.New(
		catalog.SpeciesTemplate{Name: "Blank"},
		catalog.SpeciesTemplate{Name: "AlsoBlank"},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	observed := matcher.Attributes{
		catalog.AttrColor:   "",
		catalog.AttrTexture: "lisa",
	}
	got := matcher.Identify(observed, c)
	if got.IsIdentified() {
		t.Fatalf("expected unmatchable templates to be skipped, got %+v", got)
	}
	for _, s := range matcher.Evaluate(observed, c) {
		if s.Matchable || s.Qualifies || s.Percentage != 0 {
			t.Fatalf("unexpected score for blank template: %+v", s)
		}
	}
}

func TestIdentifyMissingAttributesNeverMatch(t *testing.T) {
	got := matcher.Identify(matcher.Attributes{}, ulvaCatalog(t))
	if got.IsIdentified() {
		t.Fatalf("expected empty observation to be unidentified, got %+v", got)
	}
}

func TestIdentifyIsCaseSensitive(t *testing.T) {
	observed := matcher.Attributes{
		catalog.AttrColor:   "Verde",
		catalog.AttrTexture: "LISA",
		catalog.AttrShape:   "hoja",
		catalog.AttrHabitat: "intermareal",
	}
	got := matcher.Identify(observed, ulvaCatalog(t))
	if got.IsIdentified() {
		t.Fatalf("expected ordinal comparison to reject case variants, got %+v", got)
	}
}

func TestIdentifyEmptyAndNilCatalog(t *testing.T) {
	observed := matcher.Attributes{catalog.AttrColor: "verde"}
	empty, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	if got := matcher.Identify(observed, empty); got.IsIdentified() {
		t.Fatalf("expected unidentified for empty catalog, got %+v", got)
	}
	if got := matcher.Identify(observed, nil); got.IsIdentified() {
		t.Fatalf("expected unidentified for nil catalog, got %+v", got)
	}
}

func TestIdentifyDefaultCatalog(t *testing.T) {
	tests := []struct {
		name     string
		observed matcher.Attributes
		want     string
	}{
		{
			name: "fucus exact",
			observed: matcher.Attributes{
				catalog.AttrColor:   "marron",
				catalog.AttrTexture: "correosa",
				catalog.AttrShape:   "ramificada",
				catalog.AttrHabitat: "intermareal",
				catalog.AttrLength:  "media",
			},
			want: "Fucus vesiculosus",
		},
		{
			// Laminaria (4/4) and Sargassum (4/5) both score four matches;
			// Laminaria appears first.
			name: "laminaria before sargassum",
			observed: matcher.Attributes{
				catalog.AttrColor:   "marron",
				catalog.AttrTexture: "aspera",
				catalog.AttrShape:   "cinta",
				catalog.AttrHabitat: "flotante",
				catalog.AttrLength:  "largo",
			},
			want: "Laminaria digitata",
		},
		{
			name: "sargassum exact",
			observed: matcher.Attributes{
				catalog.AttrColor:   "marron",
				catalog.AttrTexture: "aspera",
				catalog.AttrShape:   "ramificada",
				catalog.AttrHabitat: "flotante",
				catalog.AttrLength:  "largo",
			},
			want: "Sargassum muticum",
		},
		{
			name: "chondrus",
			observed: matcher.Attributes{
				catalog.AttrColor:   "rojo",
				catalog.AttrTexture: "cartilaginoso",
				catalog.AttrShape:   "ramificada",
				catalog.AttrHabitat: "rocoso",
				catalog.AttrLength:  "corta",
			},
			want: "Chondrus crispus",
		},
		{
			name: "nothing",
			observed: matcher.Attributes{
				catalog.AttrColor:   "azul",
				catalog.AttrTexture: "lisa",
				catalog.AttrShape:   "tubular",
				catalog.AttrHabitat: "arena",
				catalog.AttrLength:  "media",
			},
		},
	}
	c := catalog.Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := matcher.Identify(tc.observed, c)
			if tc.want == "" {
				if got.IsIdentified() {
					t.Fatalf("expected unidentified, got %+v", got)
				}
				return
			}
			if got.Species != tc.want {
				t.Fatalf("expected %q, got %+v", tc.want, got)
			}
		})
	}
}

func TestMatcherUsesConfiguredThreshold(t *testing.T) {
	observed := matcher.Attributes{
		catalog.AttrColor:   "verde",
		catalog.AttrTexture: "aspera",
		catalog.AttrShape:   "hoja",
		catalog.AttrHabitat: "submareal",
	}
	m := matcher.New(logging.NewNop(), 50)
	got, scores := m.Identify(observed, ulvaCatalog(t))
	if got.Species != "Ulva lactuca" {
		t.Fatalf("expected 50%% threshold to accept 2/4, got %+v", got)
	}
	if len(scores) != 1 || !scores[0].Qualifies {
		t.Fatalf("unexpected scores: %+v", scores)
	}
}

func TestMatcherFallsBackToDefaultThreshold(t *testing.T) {
	for _, threshold := range []int{0, -5, 101} {
		m := matcher.New(nil, threshold)
		if m.ThresholdPercent() != matcher.DefaultThresholdPercent {
			t.Fatalf("threshold %d: expected default, got %d", threshold, m.ThresholdPercent())
		}
	}
}

func TestMatcherAgreesWithIdentify(t *testing.T) {
	c := catalog.Default()
	m := matcher.New(logging.NewNop(), matcher.DefaultThresholdPercent)
	colors := []string{"verde", "rojo", "marron", "azul"}
	textures := []string{"lisa", "aspera", "gelatinosa", "correosa", "cartilaginoso"}
	habitats := []string{"intermareal", "rocoso", "flotante", "arena"}
	for _, color := range colors {
		for _, texture := range textures {
			for _, habitat := range habitats {
				observed := matcher.Attributes{
					catalog.AttrColor:   color,
					catalog.AttrTexture: texture,
					catalog.AttrHabitat: habitat,
				}
				want := matcher.Identify(observed, c)
				got, _ := m.Identify(observed, c)
				if got != want {
					t.Fatalf("%v: matcher %+v disagrees with Identify %+v", observed, got, want)
				}
			}
		}
	}
}
