package domain

// ResultRow is one aggregated row of a custom query, in backend order.
type ResultRow struct {
	DimensionValue string
	MetricValue    float64
}

// KPISummary feeds the dashboard KPI cards.
type KPISummary struct {
	TotalRevenue    float64
	TotalOrders     int64
	AvgTicket       float64
	ActiveCustomers int64
}
