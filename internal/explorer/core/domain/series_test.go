package domain

import (
	"strings"
	"testing"

	"nola-analytics/internal/catalog"
)

func TestToSeriesPreservesOrder(t *testing.T) {
	cfg := QueryConfiguration{
		Metric:    catalog.MetricTotalAmount,
		Dimension: catalog.DimensionProduct,
		Channel:   catalog.ChannelAll,
	}
	rows := []ResultRow{
		{DimensionValue: "Pizza", MetricValue: 500},
		{DimensionValue: "Burger", MetricValue: 300},
	}

	series := ToSeries(rows, cfg)

	if len(series.Labels) != 2 || series.Labels[0] != "Pizza" || series.Labels[1] != "Burger" {
		t.Fatalf("unexpected labels: %v", series.Labels)
	}
	if series.Values[0] != 500 || series.Values[1] != 300 {
		t.Fatalf("unexpected values: %v", series.Values)
	}
	if !strings.Contains(series.Title, "Vendas Totais") || !strings.Contains(series.Title, "Produto") {
		t.Fatalf("unexpected title: %s", series.Title)
	}
	if strings.Contains(series.Title, "Canal:") {
		t.Fatalf("title must not carry a channel qualifier for Todos: %s", series.Title)
	}
}

func TestToSeriesChannelQualifier(t *testing.T) {
	cfg := QueryConfiguration{
		Metric:    catalog.MetricTotalAmount,
		Dimension: catalog.DimensionProduct,
		Channel:   catalog.ChannelIFood,
	}

	series := ToSeries([]ResultRow{{DimensionValue: "Pizza", MetricValue: 500}}, cfg)

	if !strings.Contains(series.Title, "iFood") {
		t.Fatalf("expected iFood qualifier in title: %s", series.Title)
	}
}

func TestToSeriesEmptyRows(t *testing.T) {
	cfg := QueryConfiguration{
		Metric:    catalog.MetricOrderCount,
		Dimension: catalog.DimensionRegion,
		Channel:   catalog.ChannelAll,
	}

	series := ToSeries([]ResultRow{}, cfg)

	if len(series.Labels) != 0 || len(series.Values) != 0 {
		t.Fatalf("expected empty series, got %v / %v", series.Labels, series.Values)
	}
	if !strings.Contains(series.Title, "sem dados") {
		t.Fatalf("expected informative empty title, got %s", series.Title)
	}
}

func TestToSeriesDeterministic(t *testing.T) {
	cfg := QueryConfiguration{
		Metric:    catalog.MetricTotalAmount,
		Dimension: catalog.DimensionChannel,
		Channel:   catalog.ChannelRappi,
	}
	rows := []ResultRow{{DimensionValue: "Centro", MetricValue: 10}}

	a := ToSeries(rows, cfg)
	b := ToSeries(rows, cfg)

	if a.Title != b.Title || a.Labels[0] != b.Labels[0] || a.Values[0] != b.Values[0] {
		t.Fatalf("series must be deterministic: %+v vs %+v", a, b)
	}
}

func TestTitleDependsOnlyOnConfiguration(t *testing.T) {
	cfg := QueryConfiguration{
		Metric:    catalog.MetricAvgDeliveryTime,
		Dimension: catalog.DimensionHourOfDay,
		Channel:   catalog.ChannelWhatsApp,
	}

	title := Title(cfg)
	if title != "Tempo Médio de Entrega por Hora do Dia (Canal: WhatsApp)" {
		t.Fatalf("unexpected title: %s", title)
	}
}
