package postgres

import (
	"context"
	"fmt"

	"nola-analytics/internal/catalog"
	"nola-analytics/internal/query/core/domain"
	"nola-analytics/internal/query/core/ports"
)

type ResultRepository struct {
	db DB
}

func NewResultRepository(db DB) *ResultRepository {
	return &ResultRepository{db: db}
}

var _ ports.ResultReaderPort = (*ResultRepository)(nil)

// metricExprs and dimensionExprs cover exactly the catalog sets; the usecase
// validates before this layer runs.
var metricExprs = map[catalog.MetricKey]string{
	catalog.MetricTotalAmount:     "COALESCE(SUM(total_amount), 0)",
	catalog.MetricOrderCount:      "COUNT(*)",
	catalog.MetricAvgDeliveryTime: "COALESCE(AVG(delivery_minutes), 0)",
}

var dimensionExprs = map[catalog.DimensionKey]string{
	catalog.DimensionChannel:   "channel",
	catalog.DimensionRegion:    "region",
	catalog.DimensionProduct:   "product_name",
	catalog.DimensionHourOfDay: "to_char(created_at, 'HH24') || 'h'",
}

func (r *ResultRepository) QueryRows(ctx context.Context, f ports.ResultFilter) ([]domain.ResultRow, error) {
	metricExpr, ok := metricExprs[f.Metric]
	if !ok {
		return nil, fmt.Errorf("unsupported metric: %s", f.Metric)
	}
	dimensionExpr, ok := dimensionExprs[f.Dimension]
	if !ok {
		return nil, fmt.Errorf("unsupported dimension: %s", f.Dimension)
	}

	where := "TRUE"
	args := []any{}
	if f.Channel != catalog.ChannelAll {
		where = "channel = $1"
		args = append(args, string(f.Channel))
	}

	// Hour buckets read chronologically; everything else by value, largest
	// first. The explorer renders rows exactly in this order.
	order := "2 DESC"
	if f.Dimension == catalog.DimensionHourOfDay {
		order = "1 ASC"
	}

	query := fmt.Sprintf(`
SELECT
    %s AS dimension,
    %s AS metric
FROM orders
WHERE %s
GROUP BY 1
ORDER BY %s`, dimensionExpr, metricExpr, where, order)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.ResultRow{}
	for rows.Next() {
		var dim string
		var value float64
		if err := rows.Scan(&dim, &value); err != nil {
			return nil, err
		}
		results = append(results, domain.ResultRow{
			DimensionValue: dim,
			MetricValue:    value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

const kpiSummarySQL = `
SELECT
    COALESCE(SUM(total_amount), 0) AS total_revenue,
    COUNT(*) AS total_orders,
    COALESCE(AVG(total_amount), 0) AS avg_ticket,
    COUNT(DISTINCT customer_id) AS active_customers
FROM orders`

func (r *ResultRepository) KPISummary(ctx context.Context) (domain.KPISummary, error) {
	rows, err := r.db.QueryContext(ctx, kpiSummarySQL)
	if err != nil {
		return domain.KPISummary{}, err
	}
	defer rows.Close()

	var summary domain.KPISummary
	if rows.Next() {
		if err := rows.Scan(
			&summary.TotalRevenue,
			&summary.TotalOrders,
			&summary.AvgTicket,
			&summary.ActiveCustomers,
		); err != nil {
			return domain.KPISummary{}, err
		}
	}
	if err := rows.Err(); err != nil {
		return domain.KPISummary{}, err
	}

	return summary, nil
}
