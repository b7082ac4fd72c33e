package questionnaire

import (
	"strconv"
	"strings"

	"algaid/internal/catalog"
	"algaid/internal/textutil"
)

// Option is one menu entry and the catalog value it records.
type Option struct {
	Label string
	Value string
}

// Question asks for a single attribute.
type Question struct {
	Attribute catalog.Attribute
	Prompt    string
	Options   []Option
}

// Questions returns the menus in the order they are asked.
func Questions() []Question {
	return []Question{
		{
			Attribute: catalog.AttrColor,
			Prompt:    "¿De qué color es predominantemente el alga?",
			Options: []Option{
				{Label: "Verde", Value: "verde"},
				{Label: "Rojo o rosado", Value: "rojo"},
				{Label: "Marrón o pardo", Value: "marron"},
				{Label: "Azul", Value: "azul"},
				{Label: "Otro color", Value: "otro"},
			},
		},
		{
			Attribute: catalog.AttrTexture,
			Prompt:    "¿Qué textura tiene al tacto?",
			Options: []Option{
				{Label: "Lisa", Value: "lisa"},
				{Label: "Áspera o rugosa", Value: "aspera"},
				{Label: "Gelatinosa", Value: "gelatinosa"},
				{Label: "Correosa", Value: "correosa"},
				{Label: "Cartilaginosa", Value: "cartilaginoso"},
			},
		},
		{
			Attribute: catalog.AttrShape,
			Prompt:    "¿Qué forma general tiene?",
			Options: []Option{
				{Label: "Hoja o lámina", Value: "hoja"},
				{Label: "Cinta alargada", Value: "cinta"},
				{Label: "Ramificada", Value: "ramificada"},
				{Label: "Tubular", Value: "tubular"},
				{Label: "Vesicular", Value: "vesicular"},
			},
		},
		{
			Attribute: catalog.AttrHabitat,
			Prompt:    "¿En qué tipo de hábitat se encontró?",
			Options: []Option{
				{Label: "Zona intermareal", Value: "intermareal"},
				{Label: "Zona submareal", Value: "submareal"},
				{Label: "Sobre rocas", Value: "rocoso"},
				{Label: "En arena", Value: "arena"},
				{Label: "Flotante", Value: "flotante"},
			},
		},
		{
			Attribute: catalog.AttrLength,
			Prompt:    "¿Cuál es su tamaño aproximado?",
			Options: []Option{
				{Label: "Corta (menos de 20 cm)", Value: string(catalog.LengthShort)},
				{Label: "Media (20-50 cm)", Value: string(catalog.LengthMedium)},
				{Label: "Larga (más de 50 cm)", Value: string(catalog.LengthLong)},
			},
		},
	}
}

// QuestionFor returns the question asking for attr.
func QuestionFor(attr catalog.Attribute) (Question, bool) {
	for _, q := range Questions() {
		if q.Attribute == attr {
			return q, true
		}
	}
	return Question{}, false
}

type answerStatus int

const (
	answerOK answerStatus = iota
	answerOutOfRange
	answerNotANumber
)

// Resolve interprets a typed answer: a 1-based menu number, an option label,
// an unambiguous first word of a label, or a catalog value.
func (q Question) Resolve(input string) (Option, bool) {
	opt, status := q.resolve(input)
	return opt, status == answerOK
}

func (q Question) resolve(input string) (Option, answerStatus) {
	trimmed := strings.TrimSpace(input)
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > len(q.Options) {
			return Option{}, answerOutOfRange
		}
		return q.Options[n-1], answerOK
	}
	if opt, ok := q.resolveText(trimmed); ok {
		return opt, answerOK
	}
	return Option{}, answerNotANumber
}

// resolveText matches a label, a catalog value or an unambiguous first word
// of a label. Menu numbers are not accepted.
func (q Question) resolveText(input string) (Option, bool) {
	folded := textutil.Fold(input)
	if folded == "" {
		return Option{}, false
	}
	for _, opt := range q.Options {
		if folded == textutil.Fold(opt.Label) || folded == textutil.Fold(opt.Value) {
			return opt, true
		}
	}
	// A first word only counts when it picks out a single option; "zona"
	// alone does not say which zone.
	var match Option
	hits := 0
	for _, opt := range q.Options {
		if folded == textutil.FirstWord(opt.Label) {
			match = opt
			hits++
		}
	}
	if hits == 1 {
		return match, true
	}
	return Option{}, false
}

// Normalize maps a value supplied outside the menus (for example a command
// line flag) onto the catalog vocabulary. Menu numbers only mean something
// at the prompt, so "2" passes through like any other unknown value. Unknown
// values pass through folded so they still score as a mismatch.
func Normalize(attr catalog.Attribute, value string) string {
	if q, ok := QuestionFor(attr); ok {
		if opt, ok := q.resolveText(value); ok {
			return opt.Value
		}
	}
	if attr == catalog.AttrLength {
		if length, err := catalog.ParseLengthClass(value); err == nil {
			return string(length)
		}
	}
	return textutil.Fold(value)
}
