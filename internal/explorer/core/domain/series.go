package domain

import "nola-analytics/internal/catalog"

// Title composes the chart title from the configuration alone.
func Title(cfg QueryConfiguration) string {
	title := catalog.MetricLabel(cfg.Metric) + " por " + catalog.DimensionLabel(cfg.Dimension)
	if cfg.Channel != catalog.ChannelAll {
		title += " (Canal: " + string(cfg.Channel) + ")"
	}
	return title
}

// ToSeries maps backend rows 1:1 into a chart series, preserving order. No
// sorting, no aggregation. An empty row set is a valid outcome and gets a
// "sem dados" qualifier on the title.
func ToSeries(rows []ResultRow, cfg QueryConfiguration) ChartSeries {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.DimensionValue
		values[i] = r.MetricValue
	}

	title := Title(cfg)
	if len(rows) == 0 {
		title += " (sem dados)"
	}

	return ChartSeries{
		Labels: labels,
		Values: values,
		Title:  title,
	}
}
