package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"docrisk/internal/metrics"
	"docrisk/internal/model"
	"docrisk/internal/repository"
	"docrisk/internal/risk"
)

// evaluator loads one client's checklist and uploads and runs them through a Pass.
// Nothing is stored: every read recomputes from the current rows.
type evaluator struct {
	reqs        repository.RequirementRepository
	uploads     repository.UploadRepository
	recorder    metrics.Recorder
	concurrency int
}

func newEvaluator(reqs repository.RequirementRepository, uploads repository.UploadRepository, rec metrics.Recorder, concurrency int) *evaluator {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &evaluator{reqs: reqs, uploads: uploads, recorder: rec, concurrency: concurrency}
}

func (e *evaluator) evaluate(ctx context.Context, pass *risk.Pass, clientID string) (risk.Report, error) {
	reqs, err := e.reqs.ListByClient(ctx, clientID)
	if err != nil {
		return risk.Report{}, fmt.Errorf("list requirements: %w", err)
	}
	uploads, err := e.uploads.ListByClient(ctx, clientID)
	if err != nil {
		return risk.Report{}, fmt.Errorf("list uploads: %w", err)
	}
	report := pass.Evaluate(reqs, uploads)
	e.recorder.ObserveEvaluation(report.Summary)
	return report, nil
}

// evaluateAll evaluates clients concurrently against the same Pass.
// Results are positionally aligned with clients.
func (e *evaluator) evaluateAll(ctx context.Context, pass *risk.Pass, clients []model.CorporateClient) ([]risk.Report, error) {
	reports := make([]risk.Report, len(clients))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range clients {
		i := i
		g.Go(func() error {
			r, err := e.evaluate(gctx, pass, clients[i].ID)
			if err != nil {
				return fmt.Errorf("evaluate client %s: %w", clients[i].ID, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
