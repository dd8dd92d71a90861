package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"nola-analytics/internal/catalog"
	"nola-analytics/internal/explorer/core/domain"
	"nola-analytics/internal/explorer/core/usecase"
)

type fakeResultFetcher struct {
	FetchFn func(ctx context.Context, cfg domain.QueryConfiguration) ([]domain.ResultRow, error)

	mu      sync.Mutex
	configs []domain.QueryConfiguration
}

func (f *fakeResultFetcher) FetchResults(ctx context.Context, cfg domain.QueryConfiguration) ([]domain.ResultRow, error) {
	f.mu.Lock()
	f.configs = append(f.configs, cfg)
	f.mu.Unlock()
	if f.FetchFn != nil {
		return f.FetchFn(ctx, cfg)
	}
	return []domain.ResultRow{}, nil
}

type fakeRiskFetcher struct {
	FetchFn func(ctx context.Context) ([]domain.RiskCustomer, error)
}

func (f *fakeRiskFetcher) FetchRiskCustomers(ctx context.Context) ([]domain.RiskCustomer, error) {
	if f.FetchFn != nil {
		return f.FetchFn(ctx)
	}
	return []domain.RiskCustomer{}, nil
}

type fakeKPIFetcher struct {
	FetchFn func(ctx context.Context) (domain.KPISnapshot, error)
}

func (f *fakeKPIFetcher) FetchKPIs(ctx context.Context) (domain.KPISnapshot, error) {
	if f.FetchFn != nil {
		return f.FetchFn(ctx)
	}
	return domain.KPISnapshot{}, nil
}

func newController(results *fakeResultFetcher, risk *fakeRiskFetcher, kpis *fakeKPIFetcher, opts usecase.Options) *usecase.Controller {
	if results == nil {
		results = &fakeResultFetcher{}
	}
	if risk == nil {
		risk = &fakeRiskFetcher{}
	}
	if kpis == nil {
		kpis = &fakeKPIFetcher{}
	}
	return usecase.NewController(results, risk, kpis, opts)
}

func TestInitLoadsEverything(t *testing.T) {
	results := &fakeResultFetcher{
		FetchFn: func(ctx context.Context, cfg domain.QueryConfiguration) ([]domain.ResultRow, error) {
			return []domain.ResultRow{{DimensionValue: "iFood", MetricValue: 900}}, nil
		},
	}
	risk := &fakeRiskFetcher{
		FetchFn: func(ctx context.Context) ([]domain.RiskCustomer, error) {
			return []domain.RiskCustomer{
				{ID: "c1", Name: "Maria", RecencyDays: 45, Frequency: 5},
			}, nil
		},
	}
	kpis := &fakeKPIFetcher{
		FetchFn: func(ctx context.Context) (domain.KPISnapshot, error) {
			return domain.KPISnapshot{TotalRevenue: 1000, TotalOrders: 25}, nil
		},
	}

	ctrl := newController(results, risk, kpis, usecase.Options{})
	require.NoError(t, ctrl.Init(context.Background()))

	vm := ctrl.ViewModel()
	require.Equal(t, domain.PhaseSuccess, vm.Analysis.Phase)
	require.Equal(t, domain.PhaseSuccess, vm.Risk.Phase)
	require.NotNil(t, vm.Chart)
	require.Equal(t, []string{"iFood"}, vm.Chart.Labels)
	require.Equal(t, 1, vm.RiskCount)
	require.False(t, vm.RiskCountIsFallback)
	require.NotNil(t, vm.KPIs)
	require.Equal(t, int64(25), vm.KPIs.TotalOrders)

	// Default configuration drove the initial analysis.
	require.Len(t, results.configs, 1)
	require.Equal(t, catalog.MetricTotalAmount, results.configs[0].Metric)
	require.Equal(t, catalog.ChannelAll, results.configs[0].Channel)
}

func TestAnalyzeFailureClearsChart(t *testing.T) {
	calls := 0
	results := &fakeResultFetcher{
		FetchFn: func(ctx context.Context, cfg domain.QueryConfiguration) ([]domain.ResultRow, error) {
			calls++
			if calls == 1 {
				return []domain.ResultRow{{DimensionValue: "Pizza", MetricValue: 1}}, nil
			}
			return nil, errors.New("Erro interno do servidor")
		},
	}

	ctrl := newController(results, nil, nil, usecase.Options{})
	ctx := context.Background()

	ctrl.Analyze(ctx)
	require.NotNil(t, ctrl.ViewModel().Chart)

	ctrl.Analyze(ctx)
	vm := ctrl.ViewModel()
	require.Equal(t, domain.PhaseFailure, vm.Analysis.Phase)
	require.Equal(t, "Erro interno do servidor", vm.Analysis.Err)
	require.Nil(t, vm.Chart, "no stale chart may survive a failure")
	require.Empty(t, vm.ChartTitle)
}

func TestAnalyzeEmptyResultIsSuccess(t *testing.T) {
	results := &fakeResultFetcher{
		FetchFn: func(ctx context.Context, cfg domain.QueryConfiguration) ([]domain.ResultRow, error) {
			return []domain.ResultRow{}, nil
		},
	}

	ctrl := newController(results, nil, nil, usecase.Options{})
	ctrl.Analyze(context.Background())

	vm := ctrl.ViewModel()
	require.Equal(t, domain.PhaseSuccess, vm.Analysis.Phase)
	require.NotNil(t, vm.Chart)
	require.Empty(t, vm.Chart.Labels)
	require.Contains(t, vm.ChartTitle, "sem dados")
}

func TestStaleAnalysisIsDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})

	results := &fakeResultFetcher{
		FetchFn: func(ctx context.Context, cfg domain.QueryConfiguration) ([]domain.ResultRow, error) {
			if cfg.Dimension == catalog.DimensionChannel {
				// Request A: resolves only after B has been applied.
				close(slowStarted)
				<-releaseSlow
				return []domain.ResultRow{{DimensionValue: "A-stale", MetricValue: 1}}, nil
			}
			return []domain.ResultRow{{DimensionValue: "B-current", MetricValue: 2}}, nil
		},
	}

	ctrl := newController(results, nil, nil, usecase.Options{})
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Analyze(ctx) // A: dimension=channel (default)
	}()

	<-slowStarted
	ctrl.SetDimension(catalog.DimensionRegion)
	ctrl.Analyze(ctx) // B completes first

	vm := ctrl.ViewModel()
	require.Equal(t, []string{"B-current"}, vm.Chart.Labels)

	close(releaseSlow)
	wg.Wait()

	// A resolved after B but must not have overwritten it.
	vm = ctrl.ViewModel()
	require.Equal(t, domain.PhaseSuccess, vm.Analysis.Phase)
	require.Equal(t, []string{"B-current"}, vm.Chart.Labels)
}

func TestRiskFailureUsesConfiguredFallback(t *testing.T) {
	risk := &fakeRiskFetcher{
		FetchFn: func(ctx context.Context) ([]domain.RiskCustomer, error) {
			return nil, errors.New("falha de conexão")
		},
	}

	ctrl := newController(nil, risk, nil, usecase.Options{FallbackRiskCount: 42})
	require.NoError(t, ctrl.Init(context.Background()))

	vm := ctrl.ViewModel()
	require.Equal(t, domain.PhaseFailure, vm.Risk.Phase)
	require.Equal(t, "falha de conexão", vm.Risk.Err)
	require.Equal(t, 42, vm.RiskCount)
	require.True(t, vm.RiskCountIsFallback)
	require.Empty(t, vm.RiskCustomers)

	// The rest of the dashboard stays alive.
	require.Equal(t, domain.PhaseSuccess, vm.Analysis.Phase)
}

func TestSettersNeverFetch(t *testing.T) {
	results := &fakeResultFetcher{}
	ctrl := newController(results, nil, nil, usecase.Options{})

	ctrl.SetMetric(catalog.MetricAvgDeliveryTime)
	ctrl.SetDimension(catalog.DimensionHourOfDay)
	ctrl.SetChannel(catalog.ChannelIFood)

	require.Empty(t, results.configs)

	vm := ctrl.ViewModel()
	require.Equal(t, catalog.MetricAvgDeliveryTime, vm.Selection.Metric)
	require.Equal(t, catalog.DimensionHourOfDay, vm.Selection.Dimension)
	require.Equal(t, catalog.ChannelIFood, vm.Selection.Channel)
	require.Equal(t, domain.PhaseIdle, vm.Analysis.Phase)
}

func TestMetricChangeRevalidatesDimensionBeforeAnalysis(t *testing.T) {
	results := &fakeResultFetcher{}
	ctrl := newController(results, nil, nil, usecase.Options{})

	ctrl.SetDimension(catalog.DimensionProduct)
	ctrl.SetMetric(catalog.MetricAvgDeliveryTime)
	ctrl.Analyze(context.Background())

	require.Len(t, results.configs, 1)
	cfg := results.configs[0]
	require.True(t, catalog.Compatible(cfg.Metric, cfg.Dimension))
	require.NotEqual(t, catalog.DimensionProduct, cfg.Dimension)
}
