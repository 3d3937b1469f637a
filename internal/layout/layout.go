// Package layout groups positioned text glyphs into logical lines with style
// metadata. It assumes a single-column, top-to-bottom reading order;
// multi-column documents will interleave incorrectly.
package layout

import "strings"

// lineTolerance is the maximum vertical distance (in layout units) between
// glyphs considered part of the same line.
const lineTolerance = 3

// Glyph is one positioned text fragment from a document page.
type Glyph struct {
	Text     string
	Top      float64 // distance from the top of the page
	FontSize float64
	FontName string
}

// Line is a logical text line with style taken from its first glyph.
// The first-glyph style is an approximation, not an average.
type Line struct {
	Text     string
	FontSize float64
	Bold     bool
}

// ExtractLines groups the glyphs of each page into lines and concatenates
// all pages into one ordered sequence. Page boundaries are not preserved.
func ExtractLines(pages [][]Glyph) []Line {
	var lines []Line
	for _, glyphs := range pages {
		lines = append(lines, extractPageLines(glyphs)...)
	}
	return lines
}

func extractPageLines(glyphs []Glyph) []Line {
	if len(glyphs) == 0 {
		return nil
	}

	var lines []Line
	currentTop := glyphs[0].Top
	var current []Glyph

	flush := func() {
		if len(current) == 0 {
			return
		}
		var sb strings.Builder
		for _, g := range current {
			sb.WriteString(g.Text)
		}
		lines = append(lines, Line{
			Text:     strings.TrimSpace(sb.String()),
			FontSize: current[0].FontSize,
			Bold:     isBoldFont(current[0].FontName),
		})
		current = current[:0]
	}

	for _, g := range glyphs {
		diff := g.Top - currentTop
		if diff < 0 {
			diff = -diff
		}
		if diff > lineTolerance {
			flush()
			currentTop = g.Top
		}
		current = append(current, g)
	}
	flush()

	return lines
}

func isBoldFont(fontName string) bool {
	name := strings.ToLower(fontName)
	return strings.Contains(name, "bold") || strings.Contains(name, "bd")
}
