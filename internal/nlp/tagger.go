// Package nlp provides optional language-model backed augmentation for
// skill extraction. Extraction works without it; a tagger only proposes
// additional candidate phrases.
package nlp

import "context"

// NoopTagger proposes nothing. It stands in wherever no language model is
// configured.
type NoopTagger struct{}

// NounPhrases returns no candidates.
func (NoopTagger) NounPhrases(ctx context.Context, text string) ([]string, error) {
	return nil, nil
}
