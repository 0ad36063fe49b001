package entities

import (
	"regexp"
	"sort"
)

const (
	HeuristicEstimator = "heuristic-v1"
	CL100KEstimator    = "cl100k"
)

var heuristicTokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\s\p{L}\p{N}_]`)

type tokenCounter func(text string) int

// cl100k has no native tokenizer available, so it reuses the heuristic count.
var tokenCounters = map[string]tokenCounter{
	HeuristicEstimator: heuristicTokenCount,
	CL100KEstimator:    heuristicTokenCount,
}

// TokenEstimator computes approximate token counts under a label. Unknown labels
// fall back to the heuristic but keep the label for output metadata.
type TokenEstimator struct {
	label   string
	counter tokenCounter
}

func NewTokenEstimator(label string) TokenEstimator {
	if label == "" {
		label = HeuristicEstimator
	}
	counter, ok := tokenCounters[label]
	if !ok {
		counter = heuristicTokenCount
	}
	return TokenEstimator{label: label, counter: counter}
}

// Label is echoed as "token_estimator" in generated records.
func (e TokenEstimator) Label() string {
	return e.label
}

// Known reports whether the label names a registered estimator.
func (e TokenEstimator) Known() bool {
	_, ok := tokenCounters[e.label]
	return ok
}

func (e TokenEstimator) Estimate(text string) int {
	if e.counter == nil {
		return heuristicTokenCount(text)
	}
	return e.counter(text)
}

// KnownTokenEstimators lists the registered labels.
func KnownTokenEstimators() []string {
	labels := make([]string, 0, len(tokenCounters))
	for label := range tokenCounters {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// heuristicTokenCount counts words plus standalone punctuation characters.
func heuristicTokenCount(text string) int {
	return len(heuristicTokenPattern.FindAllStringIndex(text, -1))
}
