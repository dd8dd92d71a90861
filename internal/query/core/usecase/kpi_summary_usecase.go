package usecase

import (
	"context"

	"nola-analytics/internal/platform/cache"
	"nola-analytics/internal/query/core/domain"
	"nola-analytics/internal/query/core/ports"
)

type KPISummaryUseCase struct {
	reader ports.ResultReaderPort
	cache  *cache.Cache
}

func NewKPISummaryUseCase(reader ports.ResultReaderPort, c *cache.Cache) *KPISummaryUseCase {
	return &KPISummaryUseCase{reader: reader, cache: c}
}

func (uc *KPISummaryUseCase) Execute(ctx context.Context) (domain.KPISummary, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		return uc.reader.KPISummary(ctx)
	}

	key, err := uc.cache.BuildKey(ctx, "kpis", "summary")
	if err != nil {
		return domain.KPISummary{}, err
	}

	var summary domain.KPISummary
	if err := uc.cache.FetchJSON(ctx, key, &summary, loader); err != nil {
		return domain.KPISummary{}, err
	}
	return summary, nil
}
