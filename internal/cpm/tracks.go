package cpm

import (
	"fmt"
	"sort"
)

// Track is a chain of tasks that can execute concurrently with the other
// tracks. Track 1 is always the critical path.
type Track struct {
	Number        int
	Description   string
	TaskIDs       []string
	DurationHours float64
}

// IdentifyTracks partitions the graph into the critical path plus
// additional concurrently-executable chains. A chain grows by following
// dependents whose remaining dependencies are all already claimed by an
// existing track, so every track can start as soon as its predecessors'
// tracks complete the shared prefix.
func IdentifyTracks(g *Graph, s *Schedule, cp CriticalPath) []Track {
	claimed := make(map[string]bool, len(g.Nodes))
	for _, id := range cp.TaskIDs {
		claimed[id] = true
	}

	tracks := []Track{{
		Number:        1,
		Description:   "Critical path",
		TaskIDs:       cp.TaskIDs,
		DurationHours: sumHours(g, cp.TaskIDs),
	}}

	// Candidates in earliest-start order keep track numbering stable.
	candidates := make([]string, 0, len(g.Order))
	candidates = append(candidates, g.Order...)
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := s.Timings[candidates[i]], s.Timings[candidates[j]]
		if a.EarliestStart != b.EarliestStart {
			return a.EarliestStart < b.EarliestStart
		}
		return candidates[i] < candidates[j]
	})

	for _, id := range candidates {
		if claimed[id] || !allClaimed(g.Nodes[id].Dependencies, claimed) {
			continue
		}

		chain := []string{id}
		claimed[id] = true
		current := id
		for {
			next, ok := nextInChain(g, s, current, claimed)
			if !ok {
				break
			}
			chain = append(chain, next)
			claimed[next] = true
			current = next
		}

		tracks = append(tracks, Track{
			Number:        len(tracks) + 1,
			Description:   fmt.Sprintf("Parallel track %d", len(tracks)+1),
			TaskIDs:       chain,
			DurationHours: sumHours(g, chain),
		})
	}

	return tracks
}

// nextInChain picks the earliest-starting unclaimed dependent of current
// whose other dependencies are already claimed.
func nextInChain(g *Graph, s *Schedule, current string, claimed map[string]bool) (string, bool) {
	deps := make([]string, 0, len(g.Nodes[current].Dependents))
	deps = append(deps, g.Nodes[current].Dependents...)
	sort.SliceStable(deps, func(i, j int) bool {
		a, b := s.Timings[deps[i]], s.Timings[deps[j]]
		if a.EarliestStart != b.EarliestStart {
			return a.EarliestStart < b.EarliestStart
		}
		return deps[i] < deps[j]
	})
	for _, d := range deps {
		if !claimed[d] && allClaimed(g.Nodes[d].Dependencies, claimed) {
			return d, true
		}
	}
	return "", false
}

func allClaimed(ids []string, claimed map[string]bool) bool {
	for _, id := range ids {
		if !claimed[id] {
			return false
		}
	}
	return true
}

func sumHours(g *Graph, ids []string) float64 {
	var total float64
	for _, id := range ids {
		total += g.Nodes[id].EstimatedHours
	}
	return total
}
