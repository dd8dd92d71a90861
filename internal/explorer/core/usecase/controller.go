package usecase

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"nola-analytics/internal/catalog"
	"nola-analytics/internal/explorer/core/domain"
	"nola-analytics/internal/explorer/core/ports"
)

// Options tunes controller behavior per deployment.
type Options struct {
	// FallbackRiskCount is shown as the at-risk KPI when the risk-list
	// fetch fails, so the card never goes blank.
	FallbackRiskCount int
	Logger            *slog.Logger
}

// Controller composes the selection store, the fetchers and the series
// transformer into a single view-model. All state lives behind one mutex;
// the generation counter guarantees that a superseded analysis fetch can
// never overwrite the state of a newer one, regardless of completion order.
type Controller struct {
	results ports.ResultFetcherPort
	risk    ports.RiskListFetcherPort
	kpis    ports.KPIFetcherPort

	fallbackRiskCount int
	log               *slog.Logger

	mu  sync.Mutex
	sel domain.Selection
	gen uint64

	analysis   domain.RequestState
	chart      *domain.ChartSeries
	chartTitle string

	riskState           domain.RequestState
	riskCustomers       []domain.RiskCustomer
	riskCount           int
	riskCountIsFallback bool

	kpiSnapshot *domain.KPISnapshot
}

func NewController(results ports.ResultFetcherPort, risk ports.RiskListFetcherPort, kpis ports.KPIFetcherPort, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		results:           results,
		risk:              risk,
		kpis:              kpis,
		fallbackRiskCount: opts.FallbackRiskCount,
		log:               logger,
		sel:               domain.NewSelection(),
		analysis:          domain.Idle(),
		riskState:         domain.Idle(),
		riskCustomers:     []domain.RiskCustomer{},
	}
}

// Init runs the mount sequence: the risk list and KPI snapshot load once,
// concurrently with the initial analysis for the default configuration.
// Fetch failures land in the request states, never here.
func (c *Controller) Init(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.loadRiskList(ctx)
		return nil
	})
	g.Go(func() error {
		c.loadKPIs(ctx)
		return nil
	})
	g.Go(func() error {
		c.Analyze(ctx)
		return nil
	})
	return g.Wait()
}

// SetMetric updates the selection only; analysis is an explicit action.
func (c *Controller) SetMetric(m catalog.MetricKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.SetMetric(m)
}

func (c *Controller) SetDimension(d catalog.DimensionKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.SetDimension(d)
}

func (c *Controller) SetChannel(ch catalog.Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.SetChannel(ch)
}

// Analyze fetches results for the configuration current at call time and
// publishes the derived series. When a newer Analyze starts while this one
// is in flight, this one's result is discarded on arrival.
func (c *Controller) Analyze(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	cfg := c.sel.Config()
	c.analysis = domain.Loading()
	c.mu.Unlock()

	rows, err := c.results.FetchResults(ctx, cfg)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.log.Debug("discarding stale analysis result",
			"metric", string(cfg.Metric), "dimension", string(cfg.Dimension))
		return
	}

	if err != nil {
		c.log.Warn("analysis fetch failed", "error", err,
			"metric", string(cfg.Metric), "dimension", string(cfg.Dimension))
		c.analysis = domain.Failure(err.Error())
		c.chart = nil
		c.chartTitle = ""
		return
	}

	series := domain.ToSeries(rows, cfg)
	c.chart = &series
	c.chartTitle = series.Title
	c.analysis = domain.Success()
}

func (c *Controller) loadRiskList(ctx context.Context) {
	c.mu.Lock()
	c.riskState = domain.Loading()
	c.mu.Unlock()

	customers, err := c.risk.FetchRiskCustomers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Warn("risk list fetch failed", "error", err)
		c.riskState = domain.Failure(err.Error())
		c.riskCustomers = []domain.RiskCustomer{}
		c.riskCount = c.fallbackRiskCount
		c.riskCountIsFallback = true
		return
	}

	if customers == nil {
		customers = []domain.RiskCustomer{}
	}
	c.riskCustomers = customers
	c.riskCount = len(customers)
	c.riskCountIsFallback = false
	c.riskState = domain.Success()
}

func (c *Controller) loadKPIs(ctx context.Context) {
	snapshot, err := c.kpis.FetchKPIs(ctx)
	if err != nil {
		// KPI cards simply stay empty; the dashboard remains usable.
		c.log.Warn("kpi fetch failed", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.kpiSnapshot = &snapshot
}

// ViewModel snapshots the combined state for the presentational layer.
func (c *Controller) ViewModel() domain.ViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()

	vm := domain.ViewModel{
		Selection:           c.sel.Config(),
		DimensionOptions:    c.sel.DimensionOptions(),
		ChartTitle:          c.chartTitle,
		RiskCount:           c.riskCount,
		RiskCountIsFallback: c.riskCountIsFallback,
		Analysis:            c.analysis,
		Risk:                c.riskState,
	}

	if c.kpiSnapshot != nil {
		snapshot := *c.kpiSnapshot
		vm.KPIs = &snapshot
	}
	if c.chart != nil {
		chart := domain.ChartSeries{
			Labels: append([]string(nil), c.chart.Labels...),
			Values: append([]float64(nil), c.chart.Values...),
			Title:  c.chart.Title,
		}
		vm.Chart = &chart
	}
	vm.RiskCustomers = append([]domain.RiskCustomer(nil), c.riskCustomers...)

	return vm
}
