package questionnaire_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"algaid/internal/catalog"
	"algaid/internal/logging"
	"algaid/internal/matcher"
	"algaid/internal/questionnaire"
	"algaid/internal/session"
)

func question(t *testing.T, attr catalog.Attribute) questionnaire.Question {
	t.Helper()
	q, ok := questionnaire.QuestionFor(attr)
	if !ok {
		t.Fatalf("no question for %s", attr)
	}
	return q
}

func TestQuestionsCoverEveryAttributeInOrder(t *testing.T) {
	qs := questionnaire.Questions()
	attrs := catalog.Attributes()
	if len(qs) != len(attrs) {
		t.Fatalf("expected %d questions, got %d", len(attrs), len(qs))
	}
	for i, q := range qs {
		if q.Attribute != attrs[i] {
			t.Fatalf("question %d asks %s, want %s", i, q.Attribute, attrs[i])
		}
	}
}

func TestOptionValuesUseCatalogVocabulary(t *testing.T) {
	vocabulary := make(map[catalog.Attribute]map[string]bool)
	for _, tmpl := range catalog.Default().All() {
		for _, exp := range tmpl.Specified() {
			if vocabulary[exp.Attribute] == nil {
				vocabulary[exp.Attribute] = make(map[string]bool)
			}
			vocabulary[exp.Attribute][exp.Value] = true
		}
	}
	offered := make(map[catalog.Attribute]map[string]bool)
	for _, q := range questionnaire.Questions() {
		offered[q.Attribute] = make(map[string]bool)
		for _, opt := range q.Options {
			offered[q.Attribute][opt.Value] = true
		}
	}
	for attr, values := range vocabulary {
		for value := range values {
			if !offered[attr][value] {
				t.Errorf("catalog value %s=%q cannot be answered from the menu", attr, value)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		attr  catalog.Attribute
		input string
		want  string
		ok    bool
	}{
		{catalog.AttrColor, "1", "verde", true},
		{catalog.AttrColor, " 3 \n", "marron", true},
		{catalog.AttrColor, "Marrón o pardo", "marron", true},
		{catalog.AttrColor, "ROJO", "rojo", true},
		{catalog.AttrColor, "6", "", false},
		{catalog.AttrColor, "0", "", false},
		{catalog.AttrTexture, "cartilaginosa", "cartilaginoso", true},
		{catalog.AttrTexture, "áspera", "aspera", true},
		{catalog.AttrHabitat, "sobre rocas", "rocoso", true},
		{catalog.AttrHabitat, "zona", "", false},
		{catalog.AttrLength, "larga", "largo", true},
		{catalog.AttrLength, "4", "", false},
		{catalog.AttrShape, "", "", false},
	}
	for _, tt := range tests {
		opt, ok := question(t, tt.attr).Resolve(tt.input)
		if ok != tt.ok || opt.Value != tt.want {
			t.Errorf("Resolve(%s, %q) = %q, %v; want %q, %v", tt.attr, tt.input, opt.Value, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		attr  catalog.Attribute
		input string
		want  string
	}{
		{catalog.AttrColor, "Verde", "verde"},
		{catalog.AttrLength, "short", "corta"},
		{catalog.AttrLength, "largo", "largo"},
		{catalog.AttrHabitat, "Intermareal", "intermareal"},
		{catalog.AttrShape, "Estrellada", "estrellada"},
		{catalog.AttrColor, "2", "2"},
		{catalog.AttrLength, " 3 ", "3"},
	}
	for _, tt := range tests {
		if got := questionnaire.Normalize(tt.attr, tt.input); got != tt.want {
			t.Errorf("Normalize(%s, %q) = %q; want %q", tt.attr, tt.input, got, tt.want)
		}
	}
}

func TestAskRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := questionnaire.NewPrompter(strings.NewReader("abc\n9\n2\n"), &out, logging.NewNop())

	opt, err := p.Ask(question(t, catalog.AttrColor))
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if opt.Value != "rojo" {
		t.Fatalf("expected rojo, got %q", opt.Value)
	}
	text := out.String()
	for _, want := range []string{
		"¿De qué color es predominantemente el alga?",
		"1. Verde",
		"5. Otro color",
		"Ingrese un número válido.",
		"Opción inválida. Intente nuevamente.",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, text)
		}
	}
	if got := strings.Count(text, "Seleccione una opción (número): "); got != 3 {
		t.Fatalf("expected 3 prompts, got %d", got)
	}
}

func TestAskAcceptsFinalLineWithoutNewline(t *testing.T) {
	p := questionnaire.NewPrompter(strings.NewReader("4"), &bytes.Buffer{}, nil)
	opt, err := p.Ask(question(t, catalog.AttrShape))
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if opt.Value != "tubular" {
		t.Fatalf("expected tubular, got %q", opt.Value)
	}
}

func TestAskReturnsErrNoInputAtEOF(t *testing.T) {
	p := questionnaire.NewPrompter(strings.NewReader("x\n"), &bytes.Buffer{}, nil)
	_, err := p.Ask(question(t, catalog.AttrHabitat))
	if !errors.Is(err, questionnaire.ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if !strings.Contains(err.Error(), string(catalog.AttrHabitat)) {
		t.Fatalf("expected attribute in error, got %v", err)
	}
}

func TestFillIdentifiesUlva(t *testing.T) {
	s, err := session.New(catalog.Default(), nil, logging.NewNop())
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	p := questionnaire.NewPrompter(strings.NewReader("1\n1\n1\n1\n1\n"), &bytes.Buffer{}, nil)
	if err := p.Fill(s); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	result, ok := s.Result()
	if !ok || result.Species != "Ulva lactuca" {
		t.Fatalf("expected Ulva lactuca, got %+v (ok=%v)", result, ok)
	}
}

func TestFillSkipsAnsweredAttributes(t *testing.T) {
	s, err := session.New(catalog.Default(), nil, logging.NewNop())
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	for attr, value := range map[catalog.Attribute]string{
		catalog.AttrColor:   "rojo",
		catalog.AttrTexture: "cartilaginoso",
		catalog.AttrShape:   "ramificada",
	} {
		if err := s.Set(attr, value); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	var out bytes.Buffer
	p := questionnaire.NewPrompter(strings.NewReader("Sobre rocas\n1\n"), &out, nil)
	if err := p.Fill(s); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if strings.Contains(out.String(), "¿De qué color") {
		t.Fatalf("answered question asked again:\n%s", out.String())
	}
	result, _ := s.Result()
	if result.Species != "Chondrus crispus" {
		t.Fatalf("expected Chondrus crispus, got %+v", result)
	}
}

func TestResultText(t *testing.T) {
	c := catalog.Default()
	if got := questionnaire.Headline(matcher.Identified("Fucus vesiculosus")); got != "[RESULTADO] El alga identificada es: Fucus vesiculosus" {
		t.Fatalf("unexpected headline %q", got)
	}
	if lines := questionnaire.Details(matcher.Identified("Fucus vesiculosus"), c); len(lines) != 0 {
		t.Fatalf("expected no details for identified result, got %v", lines)
	}

	lines := questionnaire.Details(matcher.Unidentified(), c)
	if lines[0] != "Las especies más probables podrían ser:" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "- Ulva lactuca" || lines[6] != "- Sargassum muticum" {
		t.Fatalf("expected species in catalog order, got %v", lines)
	}
	if last := lines[len(lines)-1]; !strings.Contains(last, "especialista") {
		t.Fatalf("expected specialist advice last, got %q", last)
	}
}
