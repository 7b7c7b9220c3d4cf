package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Models asked for "JSON only" still wrap answers in code fences or prose.
// DecodeJSON runs an ordered chain of recovery strategies and stops at the
// first one producing valid JSON. Callers fall back to mock data only after
// every strategy fails.

var (
	reFence  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	reObject = regexp.MustCompile(`(?s)\{.*\}`)
	reArray  = regexp.MustCompile(`(?s)\[.*\]`)
)

type decodeStrategy struct {
	name string
	fn   func(string) (string, bool)
}

var decodeStrategies = []decodeStrategy{
	{"strict", func(s string) (string, bool) {
		return s, true
	}},
	{"strip_fences", func(s string) (string, bool) {
		m := reFence.FindStringSubmatch(s)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}},
	{"extract_object", func(s string) (string, bool) {
		// Whichever delimiter appears first decides the document shape:
		// a top-level array usually contains objects, so trying the
		// greedy object match first would strip the array brackets.
		first, second := reObject.FindString(s), reArray.FindString(s)
		if io, ia := strings.Index(s, "{"), strings.Index(s, "["); ia >= 0 && (io < 0 || ia < io) {
			first, second = second, first
		}
		for _, m := range []string{first, second} {
			if m != "" && json.Valid([]byte(m)) {
				return m, true
			}
		}
		return "", false
	}},
}

// DecodeJSON recovers a JSON document from a model response. It returns the
// raw JSON bytes and the name of the strategy that produced them.
func DecodeJSON(raw string) ([]byte, string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, "", fmt.Errorf("empty model response")
	}
	for _, strat := range decodeStrategies {
		candidate, ok := strat.fn(trimmed)
		if !ok {
			continue
		}
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), strat.name, nil
		}
	}
	return nil, "", fmt.Errorf("no JSON found in model response (%d bytes)", len(raw))
}
