package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// Phases in execution order. Parents are loaded before children.
const (
	PhaseProvinces  = "provinces"
	PhaseCantons    = "cantons"
	PhaseDistricts  = "districts"
	PhaseCategories = "categories"
)

var allPhases = []string{PhaseProvinces, PhaseCantons, PhaseDistricts, PhaseCategories}

// PhaseResult holds the outcome of a single phase.
type PhaseResult struct {
	Rows     int
	Upserted int
	Duration time.Duration
}

// Pipeline loads a Dataset through a ReferenceRepo. All phases share one
// transaction: any failure leaves the database untouched.
type Pipeline struct {
	log     *slog.Logger
	repo    ReferenceRepo
	tx      TxRunner
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo ReferenceRepo, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		tx:      tx,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run loads ds. If phases is non-empty only the listed phases run; unknown
// names are rejected.
func (p *Pipeline) Run(ctx context.Context, ds *Dataset, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	provinces, cantons, districts, categories := ds.Flatten()
	p.log.Info("dataset loaded",
		slog.Int("provinces", len(provinces)),
		slog.Int("cantons", len(cantons)),
		slog.Int("districts", len(districts)),
		slog.Int("categories", len(categories)),
	)

	if p.cfg.DryRun {
		p.log.Info("dry run: nothing written")
		return nil
	}

	load := map[string]func(ctx context.Context) (int, int, error){
		PhaseProvinces: func(ctx context.Context) (int, int, error) {
			n, err := batchProcess(provinces, p.cfg.BatchSize, func(b []domain.Province) (int, error) {
				return p.repo.UpsertProvinces(ctx, b)
			})
			return len(provinces), n, err
		},
		PhaseCantons: func(ctx context.Context) (int, int, error) {
			n, err := batchProcess(cantons, p.cfg.BatchSize, func(b []domain.Canton) (int, error) {
				return p.repo.UpsertCantons(ctx, b)
			})
			return len(cantons), n, err
		},
		PhaseDistricts: func(ctx context.Context) (int, int, error) {
			n, err := batchProcess(districts, p.cfg.BatchSize, func(b []domain.District) (int, error) {
				return p.repo.UpsertDistricts(ctx, b)
			})
			return len(districts), n, err
		},
		PhaseCategories: func(ctx context.Context) (int, int, error) {
			n, err := batchProcess(categories, p.cfg.BatchSize, func(b []domain.Category) (int, error) {
				return p.repo.UpsertCategories(ctx, b)
			})
			return len(categories), n, err
		},
	}

	results := make(map[string]PhaseResult, len(toRun))
	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, phase := range toRun {
			start := time.Now()
			rows, upserted, err := load[phase](ctx)
			if err != nil {
				return fmt.Errorf("phase %s: %w", phase, err)
			}
			results[phase] = PhaseResult{Rows: rows, Upserted: upserted, Duration: time.Since(start)}
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("rows", rows),
				slog.Int("upserted", upserted),
				slog.Duration("duration", results[phase].Duration),
			)
		}
		return p.repo.ResetSequences(ctx)
	})
	if err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}

	p.results = results
	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	want := make(map[string]bool, len(phases))
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return nil, fmt.Errorf("unknown phase %q", ph)
		}
		want[ph] = true
	}

	var selected []string
	for _, ph := range allPhases {
		if want[ph] {
			selected = append(selected, ph)
		}
	}
	return selected, nil
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
