package domain

import "nola-analytics/internal/catalog"

// QueryConfiguration fully determines one analysis request. Two
// configurations with identical fields produce identical requests.
type QueryConfiguration struct {
	Metric    catalog.MetricKey
	Dimension catalog.DimensionKey
	Channel   catalog.Channel
}

// ResultRow is one backend row, kept in backend order.
type ResultRow struct {
	DimensionValue string
	MetricValue    float64
}

// ChartSeries is the render-ready form of a result set.
type ChartSeries struct {
	Labels []string
	Values []float64
	Title  string
}

// RiskCustomer is an at-risk customer row normalized at the API boundary.
type RiskCustomer struct {
	ID          string
	Name        string
	RecencyDays int
	Frequency   int
}

func (c RiskCustomer) HasName() bool {
	return c.Name != ""
}

// DisplayName falls back to the customer identifier when no name exists.
func (c RiskCustomer) DisplayName() string {
	if c.HasName() {
		return c.Name
	}
	return c.ID
}

// KPISnapshot feeds the KPI cards; fetched once per session.
type KPISnapshot struct {
	TotalRevenue    float64
	TotalOrders     int64
	AvgTicket       float64
	ActiveCustomers int64
}

// Phase is the lifecycle stage of one independent fetch.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// RequestState pairs a phase with a failure message. Exactly one state is
// active per fetch; payloads live beside it in the view-model.
type RequestState struct {
	Phase Phase
	Err   string
}

func Idle() RequestState    { return RequestState{Phase: PhaseIdle} }
func Loading() RequestState { return RequestState{Phase: PhaseLoading} }
func Success() RequestState { return RequestState{Phase: PhaseSuccess} }

func Failure(msg string) RequestState {
	return RequestState{Phase: PhaseFailure, Err: msg}
}

// ViewModel is the read-only bundle the presentational layer consumes.
type ViewModel struct {
	Selection        QueryConfiguration
	DimensionOptions []catalog.DimensionKey

	KPIs *KPISnapshot

	Chart      *ChartSeries
	ChartTitle string

	RiskCustomers       []RiskCustomer
	RiskCount           int
	RiskCountIsFallback bool

	Analysis RequestState
	Risk     RequestState
}
