package catalog

// MetricKey identifies one of the fixed analysis metrics.
type MetricKey string

// DimensionKey identifies one of the fixed grouping dimensions.
type DimensionKey string

// Channel is an order-origin filter. ChannelAll is the "no filter" sentinel.
type Channel string

const (
	MetricTotalAmount     MetricKey = "total_amount"
	MetricOrderCount      MetricKey = "order_count"
	MetricAvgDeliveryTime MetricKey = "avg_delivery_time"
)

const (
	DimensionChannel   DimensionKey = "channel"
	DimensionRegion    DimensionKey = "region"
	DimensionProduct   DimensionKey = "product_name"
	DimensionHourOfDay DimensionKey = "hour_of_day"
)

const (
	ChannelAll        Channel = "Todos"
	ChannelIFood      Channel = "iFood"
	ChannelRappi      Channel = "Rappi"
	ChannelWhatsApp   Channel = "WhatsApp"
	ChannelPresencial Channel = "Presencial"
)

var metricLabels = map[MetricKey]string{
	MetricTotalAmount:     "Vendas Totais",
	MetricOrderCount:      "Total de Pedidos",
	MetricAvgDeliveryTime: "Tempo Médio de Entrega",
}

var dimensionLabels = map[DimensionKey]string{
	DimensionChannel:   "Canal",
	DimensionRegion:    "Região",
	DimensionProduct:   "Produto",
	DimensionHourOfDay: "Hora do Dia",
}

// compatibility lists, in display order, the dimensions each metric supports.
// Delivery time has no per-product breakdown in the warehouse mart.
var compatibility = map[MetricKey][]DimensionKey{
	MetricTotalAmount:     {DimensionChannel, DimensionRegion, DimensionProduct, DimensionHourOfDay},
	MetricOrderCount:      {DimensionChannel, DimensionRegion, DimensionProduct, DimensionHourOfDay},
	MetricAvgDeliveryTime: {DimensionChannel, DimensionRegion, DimensionHourOfDay},
}

// Metrics returns the metric keys in display order.
func Metrics() []MetricKey {
	return []MetricKey{MetricTotalAmount, MetricOrderCount, MetricAvgDeliveryTime}
}

// Channels returns the selectable channels, sentinel first.
func Channels() []Channel {
	return []Channel{ChannelAll, ChannelIFood, ChannelRappi, ChannelWhatsApp, ChannelPresencial}
}

// DimensionsFor returns the ordered dimensions valid for a metric.
// Unknown metrics yield nil.
func DimensionsFor(m MetricKey) []DimensionKey {
	dims := compatibility[m]
	out := make([]DimensionKey, len(dims))
	copy(out, dims)
	return out
}

// Compatible reports whether d may group metric m.
func Compatible(m MetricKey, d DimensionKey) bool {
	for _, dim := range compatibility[m] {
		if dim == d {
			return true
		}
	}
	return false
}

func ValidMetric(m MetricKey) bool {
	_, ok := metricLabels[m]
	return ok
}

func ValidDimension(d DimensionKey) bool {
	_, ok := dimensionLabels[d]
	return ok
}

func ValidChannel(c Channel) bool {
	for _, ch := range Channels() {
		if ch == c {
			return true
		}
	}
	return false
}

// MetricLabel returns the human-readable metric name shown in titles.
func MetricLabel(m MetricKey) string {
	return metricLabels[m]
}

// DimensionLabel returns the human-readable dimension name shown in titles.
func DimensionLabel(d DimensionKey) string {
	return dimensionLabels[d]
}
