package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwhitfield/gantry/internal/importer"
	"github.com/mwhitfield/gantry/internal/repository"
)

type importService struct {
	tasks repository.TaskRepo
	edges repository.EdgeRepo
}

// NewImportService creates the snapshot import use case.
func NewImportService(tasks repository.TaskRepo, edges repository.EdgeRepo) ImportService {
	return &importService{tasks: tasks, edges: edges}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error) {
	snap, err := importer.LoadSnapshot(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	errs, warnings := importer.ValidateSnapshot(snap)
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.New("invalid snapshot:\n  " + strings.Join(msgs, "\n  "))
	}

	tasks, edges, constraints := importer.ConvertSnapshot(snap, time.Now().UTC())

	knownIDs := make(map[string]bool, len(tasks))
	for i := range tasks {
		if err := s.tasks.Create(ctx, &tasks[i]); err != nil {
			return nil, fmt.Errorf("storing task %q: %w", tasks[i].Title, err)
		}
		knownIDs[tasks[i].ID] = true
	}

	stored := 0
	for i := range edges {
		// Edges with unknown endpoints are dropped, matching engine
		// semantics; the validator already emitted a warning.
		if !knownIDs[edges[i].TaskID] || !knownIDs[edges[i].DependsOnID] {
			continue
		}
		if err := s.edges.Create(ctx, &edges[i]); err != nil {
			return nil, fmt.Errorf("storing edge %s -> %s: %w", edges[i].TaskID, edges[i].DependsOnID, err)
		}
		stored++
	}

	return &ImportResult{
		TaskCount:   len(tasks),
		EdgeCount:   stored,
		Constraints: constraints,
		Warnings:    warnings,
	}, nil
}
