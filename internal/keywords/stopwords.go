package keywords

import "strings"

// StopWords is a set of lowercase words excluded from keyword extraction.
type StopWords map[string]struct{}

// defaultStopWords is the closed default list: English function words,
// resume boilerplate, and single digits. Callers may extend this set via
// NewStopWords but never shrink it.
var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "of", "for", "with", "in", "on",
	"at", "to", "from", "by", "as", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "do", "does", "did", "will",
	"would", "shall", "should", "can", "could", "may", "might", "must",
	"this", "that", "these", "those",
	"job", "work", "role", "position", "candidate", "applicant",
	"required", "preferred", "qualification", "experience", "skill",
	"ability", "about", "our", "we", "us", "you", "your", "their", "they",
	"it", "its", "company", "team", "opportunity", "looking", "join",
	"working", "responsibilities", "skills", "year", "years",
	"good", "great", "excellent", "strong", "amp", "also", "etc",
	"please", "want", "help", "using", "not", "no", "yes", "if", "then",
	"else", "so", "very", "just", "how", "when", "where", "why", "what",
	"who", "whom", "which", "any", "all", "each", "every", "some", "more",
	"most", "other", "such", "only", "than", "too", "over", "before",
	"after", "between", "under", "above", "below", "during", "since",
	"until", "while", "like", "through", "least", "minimum", "maximum",
	"plus", "add", "remove", "present", "current", "past", "future",
	"now", "new", "old", "recent", "former", "previous", "next", "first",
	"last", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten",
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
}

// DefaultStopWords returns a fresh copy of the built-in stop-word set.
func DefaultStopWords() StopWords {
	return NewStopWords(nil)
}

// NewStopWords returns the default stop-word set extended with the given
// custom words. Custom words are lowercased; the default core is always
// included.
func NewStopWords(custom []string) StopWords {
	s := make(StopWords, len(defaultStopWords)+len(custom))
	for _, w := range defaultStopWords {
		s[w] = struct{}{}
	}
	for _, w := range custom {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// Has reports whether the lowercase form of word is a stop word.
func (s StopWords) Has(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}
