package skills

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// Tagger is an optional natural-language augmentation capability. It
// proposes candidate noun phrases for a text; the extractor only accepts
// phrases already present in the vocabulary, so a tagger can never
// introduce novel terms. A nil or failing tagger never changes the
// deterministic keyword-matching result.
type Tagger interface {
	NounPhrases(ctx context.Context, text string) ([]string, error)
}

// Extractor pulls controlled-vocabulary skill mentions out of arbitrary
// text. It is reused for both resume skill text and job descriptions.
type Extractor struct {
	vocab    *Vocabulary
	tagger   Tagger
	patterns map[string]*regexp.Regexp // vocabulary term -> word-boundary pattern
}

// NewExtractor creates an Extractor over the given vocabulary. A nil
// vocabulary uses the defaults; tagger may be nil.
func NewExtractor(vocab *Vocabulary, tagger Tagger) *Extractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	patterns := make(map[string]*regexp.Regexp)
	for _, term := range vocab.Terms() {
		patterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}

	return &Extractor{vocab: vocab, tagger: tagger, patterns: patterns}
}

// Extract returns the deduplicated, alphabetically sorted vocabulary terms
// mentioned in the text. Matching is case-insensitive and word-boundary
// aware.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	found := make(map[string]bool)

	for term, pattern := range e.patterns {
		if pattern.MatchString(lower) {
			found[term] = true
		}
	}

	if e.tagger != nil {
		phrases, err := e.tagger.NounPhrases(ctx, text)
		if err == nil {
			for _, phrase := range phrases {
				phrase = strings.ToLower(strings.TrimSpace(phrase))
				if e.vocab.Contains(phrase) {
					found[phrase] = true
				}
			}
		}
		// Tagger failures are skipped silently; the capability is
		// best-effort by contract.
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// Categorize buckets a skill using the extractor's vocabulary.
func (e *Extractor) Categorize(skill string) string {
	return e.vocab.Categorize(skill)
}

// EnsurePostingSkills returns a posting whose RequiredSkills are populated.
// If the posting already has extracted skills they are reused; otherwise a
// copy with freshly extracted skills is returned. The input posting is
// never mutated.
func (e *Extractor) EnsurePostingSkills(ctx context.Context, posting types.JobPosting) types.JobPosting {
	if len(posting.RequiredSkills) > 0 {
		return posting
	}
	return posting.WithSkills(e.Extract(ctx, posting.Description))
}
