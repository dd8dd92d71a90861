package usecase_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"nola-analytics/internal/platform/cache"
	"nola-analytics/internal/query/core/domain"
	"nola-analytics/internal/query/core/ports"
	"nola-analytics/internal/query/core/usecase"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.New(client, time.Minute)
}

func TestKPISummary_Success(t *testing.T) {
	reader := &fakeResultReader{
		KPIFn: func(ctx context.Context) (domain.KPISummary, error) {
			return domain.KPISummary{
				TotalRevenue:    12500.50,
				TotalOrders:     320,
				AvgTicket:       39.06,
				ActiveCustomers: 87,
			}, nil
		},
	}

	uc := usecase.NewKPISummaryUseCase(reader, nil)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalOrders != 320 || out.TotalRevenue != 12500.50 {
		t.Fatalf("unexpected summary: %+v", out)
	}
}

func TestKPISummary_SecondCallHitsCache(t *testing.T) {
	calls := 0
	reader := &fakeResultReader{
		KPIFn: func(ctx context.Context) (domain.KPISummary, error) {
			calls++
			return domain.KPISummary{TotalOrders: 10}, nil
		},
	}

	uc := usecase.NewKPISummaryUseCase(reader, newTestCache(t))
	ctx := context.Background()

	if _, err := uc.Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected cached second read, reader called %d times", calls)
	}
}

func TestCustomQuery_SecondCallHitsCache(t *testing.T) {
	calls := 0
	reader := &fakeResultReader{
		QueryFn: func(ctx context.Context, f ports.ResultFilter) ([]domain.ResultRow, error) {
			calls++
			return []domain.ResultRow{{DimensionValue: "iFood", MetricValue: 42}}, nil
		},
	}

	uc := usecase.NewCustomQueryUseCase(reader, newTestCache(t))
	ctx := context.Background()
	in := usecase.CustomQueryInput{Metric: "order_count", Dimension: "channel", Channel: "Todos"}

	rows, err := uc.Execute(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	rows, err = uc.Execute(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].DimensionValue != "iFood" {
		t.Fatalf("unexpected cached row: %+v", rows[0])
	}
	if calls != 1 {
		t.Fatalf("expected cached second read, reader called %d times", calls)
	}
}
