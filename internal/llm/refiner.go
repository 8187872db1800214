package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Refiner rewrites rule-generated CV suggestions into more actionable
// phrasing. It satisfies the engine's SuggestionRefiner interface.
type Refiner struct {
	client *Client
}

// NewRefiner creates a suggestion refiner backed by the given client.
func NewRefiner(client *Client) *Refiner {
	return &Refiner{client: client}
}

const refinePromptHeader = `You are a CV coach. Rewrite the following automated CV improvement
suggestions so they are specific and actionable. Keep each suggestion's
meaning, do not invent new requirements, and do not drop any item.
Return a JSON array of strings, one per suggestion, in the same order.

Suggestions:
`

// Refine rewrites the suggestions via the LLM. The caller treats any
// error as a signal to keep the original suggestions.
func (r *Refiner) Refine(ctx context.Context, suggestions []string) ([]string, error) {
	if len(suggestions) == 0 {
		return suggestions, nil
	}

	var sb strings.Builder
	sb.WriteString(refinePromptHeader)
	for i, s := range suggestions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
	}

	resp, err := r.client.GenerateJSON(ctx, sb.String(), TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to refine suggestions: %w", err)
	}

	var refined []string
	if err := json.Unmarshal([]byte(resp), &refined); err != nil {
		return nil, fmt.Errorf("failed to unmarshal refined suggestions: %w (content: %s)", err, resp)
	}
	if len(refined) != len(suggestions) {
		return nil, fmt.Errorf("refined suggestion count mismatch: got %d, want %d", len(refined), len(suggestions))
	}
	return refined, nil
}
