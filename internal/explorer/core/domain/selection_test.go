package domain

import (
	"testing"

	"nola-analytics/internal/catalog"
)

func TestNewSelectionDefaults(t *testing.T) {
	sel := NewSelection()
	cfg := sel.Config()
	if cfg.Metric != catalog.MetricTotalAmount {
		t.Fatalf("expected default metric total_amount, got %s", cfg.Metric)
	}
	if cfg.Dimension != catalog.DimensionChannel {
		t.Fatalf("expected default dimension channel, got %s", cfg.Dimension)
	}
	if cfg.Channel != catalog.ChannelAll {
		t.Fatalf("expected default channel Todos, got %s", cfg.Channel)
	}
}

func TestSetMetricKeepsCompatibleDimension(t *testing.T) {
	sel := NewSelection()
	sel.SetDimension(catalog.DimensionRegion)
	sel.SetMetric(catalog.MetricAvgDeliveryTime)

	cfg := sel.Config()
	if cfg.Dimension != catalog.DimensionRegion {
		t.Fatalf("compatible dimension must survive metric change, got %s", cfg.Dimension)
	}
}

func TestSetMetricResetsIncompatibleDimension(t *testing.T) {
	sel := NewSelection()
	sel.SetDimension(catalog.DimensionProduct)
	sel.SetMetric(catalog.MetricAvgDeliveryTime)

	cfg := sel.Config()
	if cfg.Dimension != catalog.DimensionChannel {
		t.Fatalf("expected reset to first compatible dimension, got %s", cfg.Dimension)
	}
}

func TestSelectionInvariantHoldsForEveryMetric(t *testing.T) {
	for _, start := range catalog.Metrics() {
		for _, next := range catalog.Metrics() {
			sel := NewSelection()
			sel.SetMetric(start)
			for _, d := range catalog.DimensionsFor(start) {
				sel.SetDimension(d)
				sel.SetMetric(next)
				cfg := sel.Config()
				if !catalog.Compatible(cfg.Metric, cfg.Dimension) {
					t.Fatalf("invariant broken: metric=%s dimension=%s", cfg.Metric, cfg.Dimension)
				}
			}
		}
	}
}

func TestSetDimensionRejectsIncompatible(t *testing.T) {
	sel := NewSelection()
	sel.SetMetric(catalog.MetricAvgDeliveryTime)
	before := sel.Config().Dimension

	sel.SetDimension(catalog.DimensionProduct)

	if sel.Config().Dimension != before {
		t.Fatalf("incompatible dimension must be rejected silently")
	}
}

func TestSetChannel(t *testing.T) {
	sel := NewSelection()
	sel.SetChannel(catalog.ChannelIFood)
	if sel.Config().Channel != catalog.ChannelIFood {
		t.Fatalf("expected iFood, got %s", sel.Config().Channel)
	}

	sel.SetChannel("Telefone")
	if sel.Config().Channel != catalog.ChannelIFood {
		t.Fatalf("unknown channel must be ignored")
	}
}

func TestDimensionOptionsFollowMetric(t *testing.T) {
	sel := NewSelection()
	sel.SetMetric(catalog.MetricAvgDeliveryTime)
	opts := sel.DimensionOptions()
	for _, d := range opts {
		if d == catalog.DimensionProduct {
			t.Fatalf("product_name must not be offered for avg_delivery_time")
		}
	}
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
}
