package fiber

// ResultRowResponse is one aggregated row of a custom query.
type ResultRowResponse struct {
	Dimension string  `json:"dimension"`
	Metric    float64 `json:"metric"`
}

type KPISummaryResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int64   `json:"total_orders"`
	AvgTicket       float64 `json:"avg_ticket"`
	ActiveCustomers int64   `json:"active_customers"`
}

// ErrorResponse follows the original API contract: clients read the
// "detail" field for the user-facing message.
type ErrorResponse struct {
	Detail string `json:"detail" example:"dimensão desconhecida"`
}
