package note

import "testing"

func TestLikePattern(t *testing.T) {
	tests := map[string]string{
		"":           "%%",
		"Grocery":    "%grocery%",
		"50%":        "%50!%%",
		"snake_case": "%snake!_case%",
		"wow!":       "%wow!!%",
	}
	for term, want := range tests {
		if got := likePattern(term); got != want {
			t.Fatalf("Test likePattern: Should turn %q into %q, got %q", term, want, got)
		}
	}
}
