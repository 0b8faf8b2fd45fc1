package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/apuntes/internal/classifier"
	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
	"github.com/custodia-labs/apuntes/internal/logger"
)

// Ensure ParseService implements the interface.
var _ driving.ParseService = (*ParseService)(nil)

// ParseService runs the classification pipeline over the harvested corpus.
type ParseService struct {
	rawStore    driven.RawItemStore
	courseStore driven.CourseStore
	itemStore   driven.ParsedItemStore
	runStore    driven.RunStore
}

// NewParseService creates a new parse service.
// The runStore is optional - if nil, runs are not recorded.
func NewParseService(
	rawStore driven.RawItemStore,
	courseStore driven.CourseStore,
	itemStore driven.ParsedItemStore,
	runStore driven.RunStore,
) *ParseService {
	return &ParseService{
		rawStore:    rawStore,
		courseStore: courseStore,
		itemStore:   itemStore,
		runStore:    runStore,
	}
}

// tally accumulates per-dimension misses. Counters are atomic so that
// concurrent classifiers can share one tally.
type tally struct {
	types     atomic.Int64
	courses   atomic.Int64
	dates     atomic.Int64
	malformed atomic.Int64
}

func (t *tally) add(res classifier.Result) {
	if res.Misses.Type {
		t.types.Add(1)
	}
	if res.Misses.Course {
		t.courses.Add(1)
	}
	if res.Misses.Date {
		t.dates.Add(1)
	}
	t.malformed.Add(int64(len(res.MalformedDates)))
}

// Run classifies every raw item (types, then courses, then date) and
// persists the results in input order. Per-item misses never fail the run;
// storage errors do.
func (s *ParseService) Run(ctx context.Context, opts driving.ParseOptions) (*domain.ParseReport, error) {
	report := &domain.ParseReport{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}

	c, err := s.loadClassifier(ctx)
	if err != nil {
		return nil, err
	}

	raws, err := s.rawStore.ListRawItems(ctx, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("list raw items: %w", err)
	}
	logger.Info("Classifying %d items with %d worker(s)", len(raws), max(opts.Workers, 1))

	var counts tally
	results, err := classifyAll(ctx, c, raws, opts.Workers, &counts)
	if err != nil {
		return nil, err
	}

	for i := range results {
		if err := s.itemStore.SaveParsedItem(ctx, &results[i].Item); err != nil {
			return nil, fmt.Errorf("save parsed item %s: %w", results[i].Item.ID, err)
		}
		if opts.Progress != nil {
			opts.Progress(i+1, len(results))
		}
	}

	report.Items = len(results)
	report.UnclassifiedTypes = int(counts.types.Load())
	report.UnclassifiedCourses = int(counts.courses.Load())
	report.UnclassifiedDates = int(counts.dates.Load())
	report.MalformedDates = int(counts.malformed.Load())
	report.FinishedAt = time.Now().UTC()

	if s.runStore != nil {
		if err := s.runStore.SaveRun(ctx, *report); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
	}

	logger.Info("Run %s: %d items, %d unclassified", report.RunID, report.Items, report.Unclassified())
	return report, nil
}

// classifyAll classifies raws, preserving input order in the result.
// With workers <= 1 items are classified one after another.
func classifyAll(
	ctx context.Context,
	c *classifier.Classifier,
	raws []domain.RawItem,
	workers int,
	counts *tally,
) ([]classifier.Result, error) {
	results := make([]classifier.Result, len(raws))

	if workers <= 1 {
		for i := range raws {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = c.Classify(raws[i])
			counts.add(results[i])
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.Classify(raws[i])
			counts.add(results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ClassifyPaths classifies ad-hoc paths against the stored catalog.
func (s *ParseService) ClassifyPaths(ctx context.Context, paths []string) ([]domain.ParsedItem, error) {
	c, err := s.loadClassifier(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ParsedItem, 0, len(paths))
	for _, p := range paths {
		items = append(items, c.Classify(domain.RawItem{Path: p}).Item)
	}
	return items, nil
}

// Runs returns the most recent parse runs.
func (s *ParseService) Runs(ctx context.Context, limit int) ([]domain.ParseReport, error) {
	if s.runStore == nil {
		return nil, nil
	}
	return s.runStore.ListRuns(ctx, limit)
}

func (s *ParseService) loadClassifier(ctx context.Context) (*classifier.Classifier, error) {
	courses, err := s.courseStore.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load course catalog: %w", err)
	}
	if len(courses) == 0 {
		logger.Warn("%v: course names will not be matched", domain.ErrCatalogEmpty)
	}
	return classifier.New(courses)
}
