package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_EmptyText(t *testing.T) {
	stop := DefaultStopWords()

	assert.Empty(t, Extract("", stop))
	assert.Empty(t, Extract("   \n\t  ", stop))
}

func TestExtract_AllStopWords(t *testing.T) {
	result := Extract("the and or but for with", DefaultStopWords())

	assert.Empty(t, result)
}

func TestExtract_CompoundTechTerms(t *testing.T) {
	text := "We use React, Node.js and TypeScript in production."

	result := Extract(text, DefaultStopWords())

	assert.Contains(t, result, "React")
	assert.Contains(t, result, "Node.js")
	assert.Contains(t, result, "TypeScript")
}

func TestExtract_CompoundTermSurvivesTokenization(t *testing.T) {
	// "Node.js" splits into short tokens that would be dropped; the
	// compound scan keeps the full term.
	result := Extract("Node.js", DefaultStopWords())

	assert.Contains(t, result, "Node.js")
}

func TestExtract_PreservesSourceCasing(t *testing.T) {
	result := Extract("Experienced with DOCKER and docker builds", DefaultStopWords())

	assert.Contains(t, result, "DOCKER")
	assert.Contains(t, result, "docker")
}

func TestExtract_ExperiencePhrases(t *testing.T) {
	text := "Requires 5+ years of experience and at least 3 years with cloud platforms."

	result := Extract(text, DefaultStopWords())

	assert.Contains(t, result, "5+ years of experience")
	assert.Contains(t, result, "at least 3 years")
}

func TestExtract_FiltersShortAndStopTokens(t *testing.T) {
	result := Extract("Go is a great language for the team", DefaultStopWords())

	assert.NotContains(t, result, "Go")   // length <= 2
	assert.NotContains(t, result, "the")  // stop word
	assert.NotContains(t, result, "team") // stop word (resume boilerplate)
	assert.Contains(t, result, "language")
}

func TestExtract_Deduplicates(t *testing.T) {
	result := Extract("python python python", DefaultStopWords())

	count := 0
	for _, k := range result {
		if k == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNewStopWords_ExtendsButNeverShrinks(t *testing.T) {
	stop := NewStopWords([]string{"Banana"})

	assert.True(t, stop.Has("banana"))
	assert.True(t, stop.Has("BANANA"))
	// Default core is still intact.
	assert.True(t, stop.Has("the"))
	assert.True(t, stop.Has("experience"))
}

func TestStopWords_DigitsAreStopWords(t *testing.T) {
	stop := DefaultStopWords()

	for _, d := range []string{"0", "1", "9"} {
		assert.True(t, stop.Has(d))
	}
}
