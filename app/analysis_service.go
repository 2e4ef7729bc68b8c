package app

import (
	"context"
	"sync"

	"goanova/domain/anova"
	"goanova/domain/core"
	"goanova/internal"
	"goanova/internal/analysis"

	"golang.org/x/sync/errgroup"
)

// AnalysisReport is the record produced for one completed analysis.
type AnalysisReport struct {
	ID         core.ReportID  `json:"id"`
	Name       string         `json:"name"`
	Result     *anova.Result  `json:"result"`
	Verdict    anova.Verdict  `json:"verdict"`
	ComputedAt core.Timestamp `json:"computed_at"`
}

// AnalysisService runs ANOVA computations and stamps reports. Independent
// analyses share nothing, so batches run fully in parallel.
type AnalysisService struct {
	calc   *analysis.Calculator
	alpha  float64
	logger *internal.Logger
}

// NewAnalysisService creates an analysis service with the given default alpha
func NewAnalysisService(calc *analysis.Calculator, alpha float64, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{calc: calc, alpha: alpha, logger: logger}
}

// Alpha returns the service's default significance level
func (s *AnalysisService) Alpha() float64 {
	return s.alpha
}

// Analyze computes one dataset and wraps the result in a report
func (s *AnalysisService) Analyze(ctx context.Context, name string, ds anova.Dataset) (*AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.calc.Compute(ds)
	if err != nil {
		s.logger.Warn("analysis %q failed: %v", name, err)
		return nil, err
	}

	verdict, err := s.calc.Decide(result, s.alpha)
	if err != nil {
		return nil, err
	}

	s.logger.Info("analysis %q: F(%d,%d)=%.4f p=%.4g reject=%v",
		name, result.DFBetween, result.DFWithin, result.FValue, result.PValue, verdict.RejectNull)

	return &AnalysisReport{
		ID:         core.NewReportID(),
		Name:       name,
		Result:     result,
		Verdict:    verdict,
		ComputedAt: core.Now(),
	}, nil
}

// RunBatch analyzes named datasets concurrently. Any failure cancels the
// batch and is returned; there are no partial results.
func (s *AnalysisService) RunBatch(ctx context.Context, datasets map[string]anova.Dataset) (map[string]*AnalysisReport, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	reports := make(map[string]*AnalysisReport, len(datasets))

	for name, ds := range datasets {
		g.Go(func() error {
			report, err := s.Analyze(ctx, name, ds)
			if err != nil {
				return err
			}
			mu.Lock()
			reports[name] = report
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
