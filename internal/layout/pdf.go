package layout

import (
	"fmt"
	"io"
	"sort"

	"github.com/ledongthuc/pdf"
)

// ReadGlyphs reads a PDF file and returns its positioned glyphs, one slice
// per page, ordered top-to-bottom then left-to-right. PDF coordinates grow
// upward, so Top is derived by negating the Y coordinate.
func ReadGlyphs(path string) ([][]Glyph, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var pages [][]Glyph
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		texts := page.Content().Text
		glyphs := make([]Glyph, 0, len(texts))
		for _, t := range texts {
			glyphs = append(glyphs, Glyph{
				Text:     t.S,
				Top:      -t.Y,
				FontSize: t.FontSize,
				FontName: t.Font,
			})
		}

		sort.SliceStable(glyphs, func(a, b int) bool {
			da := glyphs[a].Top - glyphs[b].Top
			if da < -lineTolerance || da > lineTolerance {
				return glyphs[a].Top < glyphs[b].Top
			}
			return false // same visual line, keep content order
		})

		pages = append(pages, glyphs)
	}

	return pages, nil
}

// ExtractText returns the plain text of a PDF file, for callers that only
// need raw text and not layout information.
func ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	text, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read extracted text: %w", err)
	}

	return string(text), nil
}
