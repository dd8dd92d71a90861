package ports

import (
	"context"

	"nola-analytics/internal/catalog"
	"nola-analytics/internal/query/core/domain"
)

type ResultFilter struct {
	Metric    catalog.MetricKey
	Dimension catalog.DimensionKey
	Channel   catalog.Channel // ChannelAll means no filter
}

type ResultReaderPort interface {
	QueryRows(ctx context.Context, f ResultFilter) ([]domain.ResultRow, error)
	KPISummary(ctx context.Context) (domain.KPISummary, error)
}
