package ports

import (
	"context"

	"nola-analytics/internal/explorer/core/domain"
)

// ResultFetcherPort performs the analysis round trip for one configuration.
// An empty slice is a valid, non-error outcome.
type ResultFetcherPort interface {
	FetchResults(ctx context.Context, cfg domain.QueryConfiguration) ([]domain.ResultRow, error)
}

// RiskListFetcherPort retrieves the at-risk customer list. Called once per
// dashboard session.
type RiskListFetcherPort interface {
	FetchRiskCustomers(ctx context.Context) ([]domain.RiskCustomer, error)
}

// KPIFetcherPort retrieves the KPI snapshot shown on the cards.
type KPIFetcherPort interface {
	FetchKPIs(ctx context.Context) (domain.KPISnapshot, error)
}
