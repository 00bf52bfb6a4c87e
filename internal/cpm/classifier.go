package cpm

import "strings"

// Signal names a fuzzy property inferred from task text.
type Signal string

const (
	// SignalIntegration marks tasks touching integration surfaces
	// (external APIs, databases), which carry elevated schedule risk.
	SignalIntegration Signal = "integration"
	// SignalOutsourceable marks work that can be handed off without
	// blocking the team (design, documentation, testing).
	SignalOutsourceable Signal = "outsourceable"
	// SignalSequential marks tasks that must not be parallelized
	// (deployments, integration steps).
	SignalSequential Signal = "sequential"
)

// Classifier decides whether a task's text carries a signal. Keyword
// matching is the default; callers with structured metadata can supply
// their own implementation without touching the algorithms.
type Classifier interface {
	Matches(text string, signal Signal) bool
}

var signalKeywords = map[Signal][]string{
	SignalIntegration:   {"integration", "api", "database"},
	SignalOutsourceable: {"design", "documentation", "testing"},
	SignalSequential:    {"deploy", "integration"},
}

// KeywordClassifier matches signals by case-insensitive substring search.
type KeywordClassifier struct{}

func (KeywordClassifier) Matches(text string, signal Signal) bool {
	lower := strings.ToLower(text)
	for _, kw := range signalKeywords[signal] {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
