package usecase

import (
	"context"
	"errors"

	"nola-analytics/internal/catalog"
	"nola-analytics/internal/platform/cache"
	"nola-analytics/internal/query/core/domain"
	"nola-analytics/internal/query/core/ports"
)

var (
	ErrUnknownMetric         = errors.New("métrica desconhecida")
	ErrUnknownDimension      = errors.New("dimensão desconhecida")
	ErrUnknownChannel        = errors.New("canal desconhecido")
	ErrIncompatibleDimension = errors.New("dimensão não disponível para a métrica selecionada")
)

type CustomQueryInput struct {
	Metric    string
	Dimension string
	Channel   string
}

type CustomQueryUseCase struct {
	reader ports.ResultReaderPort
	cache  *cache.Cache
}

func NewCustomQueryUseCase(reader ports.ResultReaderPort, c *cache.Cache) *CustomQueryUseCase {
	return &CustomQueryUseCase{reader: reader, cache: c}
}

// Execute validates the configuration against the catalog and runs the query
// through the cache. An empty channel defaults to the "Todos" sentinel.
func (uc *CustomQueryUseCase) Execute(ctx context.Context, in CustomQueryInput) ([]domain.ResultRow, error) {
	metric := catalog.MetricKey(in.Metric)
	dimension := catalog.DimensionKey(in.Dimension)
	channel := catalog.Channel(in.Channel)
	if channel == "" {
		channel = catalog.ChannelAll
	}

	if !catalog.ValidMetric(metric) {
		return nil, ErrUnknownMetric
	}
	if !catalog.ValidDimension(dimension) {
		return nil, ErrUnknownDimension
	}
	if !catalog.ValidChannel(channel) {
		return nil, ErrUnknownChannel
	}
	if !catalog.Compatible(metric, dimension) {
		return nil, ErrIncompatibleDimension
	}

	filter := ports.ResultFilter{
		Metric:    metric,
		Dimension: dimension,
		Channel:   channel,
	}

	loader := func(ctx context.Context) (interface{}, error) {
		rows, err := uc.reader.QueryRows(ctx, filter)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []domain.ResultRow{}
		}
		return rows, nil
	}

	key, err := uc.cache.BuildKey(ctx, "query", in.Metric, in.Dimension, string(channel))
	if err != nil {
		return nil, err
	}

	var rows []domain.ResultRow
	if err := uc.cache.FetchJSON(ctx, key, &rows, loader); err != nil {
		return nil, err
	}
	return rows, nil
}
