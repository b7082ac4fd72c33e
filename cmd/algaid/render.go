package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"algaid/internal/catalog"
	"algaid/internal/matcher"
	"algaid/internal/questionnaire"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const unspecifiedCell = "-"

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(s, color string, colorize bool) string {
	if !colorize || color == "" {
		return s
	}
	return color + s + ansiReset
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len([]rune(line)))
	return []string{paint(line, ansiBlue, colorize), paint(rule, ansiBlue, colorize)}
}

// renderResult formats the verdict the way the questionnaire presents it.
func renderResult(result matcher.Result, c *catalog.Catalog, colorize bool) string {
	color := ansiYellow
	if result.IsIdentified() {
		color = ansiGreen
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(paint(questionnaire.Headline(result), color, colorize))
	b.WriteString("\n")
	for _, line := range questionnaire.Details(result, c) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderScoreTable(scores []matcher.Score, thresholdPercent int) string {
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		percent := unspecifiedCell
		if s.Matchable {
			percent = fmt.Sprintf("%.0f%%", s.Percentage)
		}
		rows = append(rows, []string{
			s.Species,
			fmt.Sprintf("%d/%d", s.Matched, s.Specified),
			percent,
			yesNo(s.Qualifies),
		})
	}
	return renderTable(tableSpec{
		headers: []string{"Especie", "Coincidencias", "Porcentaje", "Candidata"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
		caption: fmt.Sprintf("Umbral: %d%%", thresholdPercent),
	})
}

func renderCatalogTable(c *catalog.Catalog, source string) string {
	templates := c.All()
	rows := make([][]string, 0, len(templates))
	for i, t := range templates {
		row := []string{fmt.Sprintf("%d", i+1), t.Name}
		for _, attr := range catalog.Attributes() {
			value, ok := t.Expect(attr)
			if !ok {
				value = unspecifiedCell
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return renderTable(tableSpec{
		headers: []string{"#", "Species", "Color", "Texture", "Shape", "Habitat", "Length"},
		rows:    rows,
		aligns:  []columnAlignment{alignRight},
		caption: fmt.Sprintf("%d species from %s", c.Len(), source),
	})
}
