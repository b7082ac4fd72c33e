package questionnaire

import (
	"fmt"

	"algaid/internal/catalog"
	"algaid/internal/matcher"
)

// Specialist advice closes every inconclusive result.
const specialistAdvice = "Por favor, consulte con un especialista para una identificación precisa."

// Headline returns the one-line verdict.
func Headline(r matcher.Result) string {
	if r.IsIdentified() {
		return "[RESULTADO] El alga identificada es: " + r.Species
	}
	return "[RESULTADO] No se pudo identificar la especie con exactitud"
}

// Details returns the lines printed under the headline. An unidentified
// result lists every catalog species as a candidate.
func Details(r matcher.Result, c *catalog.Catalog) []string {
	if r.IsIdentified() {
		return nil
	}
	lines := []string{"Las especies más probables podrían ser:"}
	for _, name := range c.Names() {
		lines = append(lines, fmt.Sprintf("- %s", name))
	}
	return append(lines, "", specialistAdvice)
}
