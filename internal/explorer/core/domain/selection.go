package domain

import "nola-analytics/internal/catalog"

// Selection holds the current metric, dimension and channel choice and keeps
// them mutually consistent: the dimension always belongs to the selected
// metric's compatible set. Transitions are pure and never trigger a fetch.
type Selection struct {
	metric    catalog.MetricKey
	dimension catalog.DimensionKey
	channel   catalog.Channel
}

// NewSelection starts at the first metric, its first dimension and the
// all-channels sentinel.
func NewSelection() Selection {
	metric := catalog.Metrics()[0]
	return Selection{
		metric:    metric,
		dimension: catalog.DimensionsFor(metric)[0],
		channel:   catalog.ChannelAll,
	}
}

// SetMetric switches the metric. When the current dimension is not valid for
// the new metric it resets to the first compatible dimension. Unknown metric
// keys are ignored.
func (s *Selection) SetMetric(m catalog.MetricKey) {
	if !catalog.ValidMetric(m) {
		return
	}
	s.metric = m
	if !catalog.Compatible(m, s.dimension) {
		s.dimension = catalog.DimensionsFor(m)[0]
	}
}

// SetDimension rejects silently any dimension outside the current metric's
// compatible set. Callers are expected to only offer valid options; this is
// the guard against direct invalid calls.
func (s *Selection) SetDimension(d catalog.DimensionKey) {
	if !catalog.Compatible(s.metric, d) {
		return
	}
	s.dimension = d
}

// SetChannel accepts any catalog channel; channels are valid for every
// metric/dimension pair. Unknown values are ignored.
func (s *Selection) SetChannel(c catalog.Channel) {
	if !catalog.ValidChannel(c) {
		return
	}
	s.channel = c
}

// Config snapshots the current configuration.
func (s *Selection) Config() QueryConfiguration {
	return QueryConfiguration{
		Metric:    s.metric,
		Dimension: s.dimension,
		Channel:   s.channel,
	}
}

// DimensionOptions lists the dimensions selectable for the current metric.
func (s *Selection) DimensionOptions() []catalog.DimensionKey {
	return catalog.DimensionsFor(s.metric)
}
