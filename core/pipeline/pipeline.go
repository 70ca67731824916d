// Package pipeline runs one scrape: the weekly pass seeds the week, then each
// date's daily view is overlaid in ascending order.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/hyeat/core"
	"github.com/gaurav-prasanna/hyeat/core/extract"
	"github.com/gaurav-prasanna/hyeat/core/metrics"
)

// Pipeline wires a fetcher to the extractor.
type Pipeline struct {
	fetcher   core.Fetcher
	extractor *extract.Extractor
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// New creates a Pipeline. logger and rec may be nil.
func New(fetcher core.Fetcher, extractor *extract.Extractor, logger *slog.Logger, rec *metrics.Recorder) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{fetcher: fetcher, extractor: extractor, logger: logger, metrics: rec}
}

// Run fetches and extracts the week containing target (the current week when
// target is empty). A failed weekly fetch or a missing anchor aborts the run;
// a failed daily fetch keeps that date's weekly data.
func (p *Pipeline) Run(ctx context.Context, target string) (*core.DailyMenuSet, error) {
	// 1. Weekly fetch
	result, err := p.fetcher.Fetch(ctx, target)
	p.metrics.Fetch("weekly", err)
	if err != nil {
		return nil, fmt.Errorf("fetch weekly view: %w", err)
	}

	// 2. Seed the week
	set, err := p.extractor.Weekly(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract weekly view: %w", err)
	}
	p.logger.Info("weekly view extracted", "dates", len(set.Dates()), "records", set.Len())

	// 3. Overlay each date
	for _, date := range set.Dates() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.enrich(ctx, set, date)
	}
	return set, nil
}

func (p *Pipeline) enrich(ctx context.Context, set *core.DailyMenuSet, date string) {
	result, err := p.fetcher.Fetch(ctx, date)
	p.metrics.Fetch("daily", err)
	if err != nil {
		p.logger.Warn("daily fetch failed, keeping weekly data", "date", date, "error", err)
		return
	}
	if result.HTML == "" {
		p.logger.Warn("daily fetch returned no markup, keeping weekly data", "date", date)
		return
	}
	if err := p.extractor.Daily(set, date, result.HTML); err != nil {
		p.logger.Warn("daily overlay partially skipped", "date", date, "error", err)
		return
	}
	p.logger.Debug("daily overlay applied", "date", date)
}
