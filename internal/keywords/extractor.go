// Package keywords extracts candidate keywords from free text: compound
// technical terms, experience-duration phrases, and stop-word-filtered
// tokens.
package keywords

import (
	"regexp"
	"strings"
)

// techTermsRe matches a fixed vocabulary of multi-word or symbol-bearing
// technology names whose sub-tokens would not survive tokenization.
var techTermsRe = regexp.MustCompile(`(?i)\b(React|TypeScript|JavaScript|Vue\.js|Angular|Node\.js|Next\.js|HTML5|CSS3|jQuery|Express\.js|MongoDB|SQL|AWS|Azure|Docker|Kubernetes|Git|Jest|Webpack|Babel|Gulp|Grunt|Redux|Vuex|GraphQL|REST|API|JSON|XML|SASS|SCSS|LESS|Tailwind|Bootstrap|Material-UI|Storybook|Cypress|Selenium|Jenkins|Travis|CircleCI|Github Actions)\b`)

// specificTechRe is a narrower second pass; overlap with techTermsRe is
// fine since the final result is deduplicated.
var specificTechRe = regexp.MustCompile(`(?i)\b(jest|webpack|docker|typescript|node\.js|react\.js|vue\.js|next\.js)\b`)

// experiencePhraseRe matches experience-duration phrases such as
// "5+ years of experience", "minimum of 3 years", "at least 2 years".
// The full phrases are kept as evidence for the experience scorer.
var experiencePhraseRe = regexp.MustCompile(`(?i)\b(\d+\+?\s*(?:to\s+\d+\s*)?(?:-\s*\d+\s*)?years?(?:\s+(?:of|in))?\s+(?:experience|exp\.?|work(?:ing)?(?:\s+experience)?)|minimum\s+of\s+\d+\+?\s*years?|at\s+least\s+\d+\+?\s*years?|\d+\+?\s*years?\s+(?:of|in)?\s*(?:experience|exp\.?))\b`)

var tokenSplitRe = regexp.MustCompile(`\W+`)

const minTokenLen = 3

// Extract returns the deduplicated union of compound technical terms,
// experience-duration phrases, and filtered tokens found in text.
// Matches keep their source casing; deduplication is exact-string with
// first occurrence winning. Returns nil for empty or whitespace-only text.
func Extract(text string, stop StopWords) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var candidates []string
	candidates = append(candidates, techTermsRe.FindAllString(text, -1)...)
	candidates = append(candidates, specificTechRe.FindAllString(text, -1)...)
	candidates = append(candidates, experiencePhraseRe.FindAllString(text, -1)...)

	seenTokens := make(map[string]struct{})
	for _, token := range tokenSplitRe.Split(text, -1) {
		if token == "" {
			continue
		}
		if _, dup := seenTokens[token]; dup {
			continue
		}
		seenTokens[token] = struct{}{}
		if len(token) < minTokenLen || stop.Has(token) {
			continue
		}
		candidates = append(candidates, token)
	}

	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
