package cpm

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mwhitfield/gantry/internal/domain"
)

// SuggestionKind names one of the advisory optimization actions.
type SuggestionKind string

const (
	SuggestSplit       SuggestionKind = "split"
	SuggestOutsource   SuggestionKind = "outsource"
	SuggestParallelize SuggestionKind = "parallelize"
	SuggestMerge       SuggestionKind = "merge"
)

// Suggestion is a non-binding proposal to shorten the critical path.
// Suggestions are never applied automatically.
type Suggestion struct {
	Kind                SuggestionKind
	TaskIDs             []string
	Description         string
	ExpectedSavingHours float64
}

// Expected-saving weights per suggestion kind.
const (
	splitSavingPct     = 0.30
	outsourceSavingPct = 0.40
	parallelSavingPct  = 0.80
	mergeableHours     = 4.0
	splitMinHours      = 20.0
	mergeSavingPerPair = 2.0
)

// SuggestOptimizations evaluates the four heuristic families over the
// critical path. The families are independent and their outputs
// commutative, so they run concurrently; the merged result is sorted by
// descending expected saving (ties by leading task ID) and is therefore
// deterministic.
func SuggestOptimizations(g *Graph, cp CriticalPath, classifier Classifier) []Suggestion {
	families := []func(*Graph, CriticalPath, Classifier) []Suggestion{
		suggestSplits,
		suggestOutsourcing,
		suggestParallelization,
		suggestMerges,
	}

	results := make([][]Suggestion, len(families))
	var wg sync.WaitGroup
	for i, f := range families {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = f(g, cp, classifier)
		}()
	}
	wg.Wait()

	var out []Suggestion
	for _, r := range results {
		out = append(out, r...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ExpectedSavingHours != out[j].ExpectedSavingHours {
			return out[i].ExpectedSavingHours > out[j].ExpectedSavingHours
		}
		return out[i].TaskIDs[0] < out[j].TaskIDs[0]
	})
	return out
}

// suggestSplits proposes splitting long non-trivial critical tasks.
func suggestSplits(g *Graph, cp CriticalPath, _ Classifier) []Suggestion {
	var out []Suggestion
	for _, id := range cp.TaskIDs {
		n := g.Nodes[id]
		if n.EstimatedHours > splitMinHours && n.Complexity != domain.ComplexityTrivial {
			out = append(out, Suggestion{
				Kind:                SuggestSplit,
				TaskIDs:             []string{id},
				Description:         fmt.Sprintf("Split %q (%.0fh) into smaller tasks that can overlap", n.Title, n.EstimatedHours),
				ExpectedSavingHours: n.EstimatedHours * splitSavingPct,
			})
		}
	}
	return out
}

// suggestOutsourcing proposes handing off design/documentation/testing work.
func suggestOutsourcing(g *Graph, cp CriticalPath, classifier Classifier) []Suggestion {
	var out []Suggestion
	for _, id := range cp.TaskIDs {
		n := g.Nodes[id]
		if classifier.Matches(n.Title, SignalOutsourceable) {
			out = append(out, Suggestion{
				Kind:                SuggestOutsource,
				TaskIDs:             []string{id},
				Description:         fmt.Sprintf("%q can be delegated off the critical path", n.Title),
				ExpectedSavingHours: n.EstimatedHours * outsourceSavingPct,
			})
		}
	}
	return out
}

// suggestParallelization proposes overlapping adjacent critical tasks
// where the second depends solely on the first and neither is an
// inherently sequential step.
func suggestParallelization(g *Graph, cp CriticalPath, classifier Classifier) []Suggestion {
	var out []Suggestion
	for i := 0; i+1 < len(cp.TaskIDs); i++ {
		first, second := g.Nodes[cp.TaskIDs[i]], g.Nodes[cp.TaskIDs[i+1]]
		if len(second.Dependencies) != 1 || second.Dependencies[0] != first.TaskID {
			continue
		}
		if classifier.Matches(first.Title, SignalSequential) || classifier.Matches(second.Title, SignalSequential) {
			continue
		}
		smaller := first.EstimatedHours
		if second.EstimatedHours < smaller {
			smaller = second.EstimatedHours
		}
		out = append(out, Suggestion{
			Kind:                SuggestParallelize,
			TaskIDs:             []string{first.TaskID, second.TaskID},
			Description:         fmt.Sprintf("Overlap %q with %q by relaxing the hard dependency", second.Title, first.Title),
			ExpectedSavingHours: smaller * parallelSavingPct,
		})
	}
	return out
}

// suggestMerges proposes collapsing runs of small critical tasks that
// share a first title word (e.g. "Update schema", "Update docs").
func suggestMerges(g *Graph, cp CriticalPath, _ Classifier) []Suggestion {
	var out []Suggestion
	i := 0
	for i < len(cp.TaskIDs) {
		n := g.Nodes[cp.TaskIDs[i]]
		prefix := firstWord(n.Title)
		if n.EstimatedHours > mergeableHours || prefix == "" {
			i++
			continue
		}
		j := i + 1
		for j < len(cp.TaskIDs) {
			m := g.Nodes[cp.TaskIDs[j]]
			if m.EstimatedHours > mergeableHours || firstWord(m.Title) != prefix {
				break
			}
			j++
		}
		if j-i >= 2 {
			run := cp.TaskIDs[i:j]
			ids := make([]string, len(run))
			copy(ids, run)
			out = append(out, Suggestion{
				Kind:                SuggestMerge,
				TaskIDs:             ids,
				Description:         fmt.Sprintf("Merge %d small %q tasks to cut context switching", len(ids), prefix),
				ExpectedSavingHours: mergeSavingPerPair * float64(len(ids)-1),
			})
		}
		i = j
	}
	return out
}

func firstWord(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
