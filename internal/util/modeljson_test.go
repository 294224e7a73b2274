package util

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractAndCleanJSONFencedBlock(t *testing.T) {
	raw := "```json\n{score: 101, name: 'x',}\n```"

	cleaned, err := ExtractAndCleanJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"score": 101, "name": "x"}`
	if cleaned != want {
		t.Fatalf("cleaned = %q, want %q", cleaned, want)
	}
}

func TestExtractAndCleanJSONIdempotent(t *testing.T) {
	clean := `{"score": 80, "items": ["a", "b"], "summary": "fine"}`

	once, err := ExtractAndCleanJSON(clean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := ExtractAndCleanJSON(once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if once != twice {
		t.Fatalf("recovery not idempotent: first %q, second %q", once, twice)
	}
	if once != clean {
		t.Fatalf("already-clean input changed: got %q", once)
	}
}

func TestExtractAndCleanJSONSurroundingProse(t *testing.T) {
	raw := "Here is the analysis you asked for:\n{\"score\": 55}\nHope this helps!"

	cleaned, err := ExtractAndCleanJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleaned != `{"score": 55}` {
		t.Fatalf("unexpected cleaned text: %q", cleaned)
	}
}

func TestExtractAndCleanJSONTrailingCommas(t *testing.T) {
	raw := `{"a": [1, 2, 3,], "b": {"c": 1,},}`

	cleaned, err := ExtractAndCleanJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(cleaned, ",]") || strings.Contains(cleaned, ",}") {
		t.Fatalf("trailing commas survived: %q", cleaned)
	}
}

func TestExtractAndCleanJSONNoObject(t *testing.T) {
	for _, raw := range []string{"no json here", "", "} {", "only closing }"} {
		if _, err := ExtractAndCleanJSON(raw); !errors.Is(err, ErrNoJSONFound) {
			t.Fatalf("input %q: got %v, want ErrNoJSONFound", raw, err)
		}
	}
}

func TestParseModelJSONParseFailure(t *testing.T) {
	// Recoverable span but still broken JSON inside.
	_, _, err := ParseModelJSON(`{"a": }`)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if parseErr.Cleaned == "" {
		t.Fatal("ParseError should carry the cleaned text for diagnosis")
	}
}

func TestParseModelJSONClampsAfterParse(t *testing.T) {
	raw := "```json\n{overallMatchScore: 101, careerStageFit: -5, summary: 'ok'}\n```"

	obj, _, err := ParseModelJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ClampScores(obj, []string{"overallMatchScore", "careerStageFit", "missingField"})

	if got := obj["overallMatchScore"]; got != 100.0 {
		t.Fatalf("overallMatchScore = %v, want 100", got)
	}
	if got := obj["careerStageFit"]; got != 0.0 {
		t.Fatalf("careerStageFit = %v, want 0", got)
	}
	if _, ok := obj["missingField"]; ok {
		t.Fatal("missing field must stay absent, not be defaulted")
	}
}

func TestClampScoresRange(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-1000, 0},
		{-0.01, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{100.5, 100},
		{1e9, 100},
	}
	for _, tc := range cases {
		obj := map[string]any{"score": tc.in}
		ClampScores(obj, []string{"score"})
		if obj["score"] != tc.want {
			t.Fatalf("clamp(%v) = %v, want %v", tc.in, obj["score"], tc.want)
		}
	}
}

func TestClampScoresLeavesNonNumericAlone(t *testing.T) {
	obj := map[string]any{"score": "high"}
	ClampScores(obj, []string{"score"})
	if obj["score"] != "high" {
		t.Fatalf("non-numeric value was coerced: %v", obj["score"])
	}
}

func TestValidateShape(t *testing.T) {
	cleaned := `{"overallMatchScore": 70, "summary": "ok"}`

	if err := ValidateShape(cleaned, []string{"overallMatchScore", "summary"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateShape(cleaned, []string{"overallMatchScore", "keyStrengths"}); err == nil {
		t.Fatal("expected error for missing key")
	}
}
