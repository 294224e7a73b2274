package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNoJSONFound means the model output contained no recoverable JSON object.
var ErrNoJSONFound = errors.New("no JSON object found in model output")

// ParseError means the recovered text still failed to parse as JSON. Cleaned
// carries the offending text for diagnosis.
type ParseError struct {
	Cleaned string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model output is not valid JSON: %v (cleaned: %s)", e.Err, e.Cleaned)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	codeFenceRe     = regexp.MustCompile("```(?:json)?")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)(\w+)\s*:`)
	singleQuotedRe  = regexp.MustCompile(`:\s*'([^']*)'`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// ExtractAndCleanJSON recovers a strict JSON object from free-form model
// output. The model is not trusted to produce valid JSON: fenced code blocks,
// trailing commas, bare keys, and single-quoted values are all repaired before
// parsing. Idempotent on already-clean output.
func ExtractAndCleanJSON(raw string) (string, error) {
	text := codeFenceRe.ReplaceAllString(raw, "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start >= end {
		return "", ErrNoJSONFound
	}
	text = text[start : end+1]

	text = trailingCommaRe.ReplaceAllString(text, "$1")
	text = bareKeyRe.ReplaceAllString(text, `$1"$2":`)
	text = singleQuotedRe.ReplaceAllString(text, `: "$1"`)
	text = whitespaceRe.ReplaceAllString(text, " ")

	return text, nil
}

// ParseModelJSON runs recovery and parses the result into a generic object.
// A recovery failure and a parse failure are distinct conditions.
func ParseModelJSON(raw string) (map[string]any, string, error) {
	cleaned, err := ExtractAndCleanJSON(raw)
	if err != nil {
		return nil, "", err
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, cleaned, &ParseError{Cleaned: cleaned, Err: err}
	}
	return obj, cleaned, nil
}

// ValidateShape rejects parsed output missing any of the expected top-level
// keys. The prompt's example JSON is the only schema contract the model sees,
// so this is the server-side safety net.
func ValidateShape(cleaned string, requiredKeys []string) error {
	for _, key := range requiredKeys {
		if !gjson.Get(cleaned, key).Exists() {
			return fmt.Errorf("model output missing required field %q", key)
		}
	}
	return nil
}

// ClampScores clamps each named field into [0, 100] in place. A field that is
// absent or non-numeric is left untouched rather than defaulted to zero.
func ClampScores(obj map[string]any, fields []string) {
	for _, field := range fields {
		v, ok := obj[field]
		if !ok {
			continue
		}
		n, ok := asFloat(v)
		if !ok {
			continue
		}
		if n < 0 {
			n = 0
		}
		if n > 100 {
			n = 100
		}
		obj[field] = n
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
