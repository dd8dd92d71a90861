package fiber

// RiskyCustomerResponse is the dashboard-facing at-risk row.
type RiskyCustomerResponse struct {
	CustomerID         string `json:"customer_id"`
	CustomerName       string `json:"customer_name,omitempty"`
	DaysSinceLastOrder int    `json:"days_since_last_order"`
	Frequency          int    `json:"frequency"`
}

// SegmentCustomerResponse keeps the original mart column spellings.
type SegmentCustomerResponse struct {
	CustomerName    *string `json:"customer_name"`
	PhoneNumber     *string `json:"phone_number"`
	Email           *string `json:"email"`
	Frequencia      int     `json:"frequencia"`
	Recencia        int     `json:"recencia"`
	Valor           float64 `json:"valor"`
	SegmentoCliente string  `json:"segmento_cliente"`
}

type SegmentResponse struct {
	TotalCount  int                       `json:"total_count"`
	SegmentName string                    `json:"segment_name"`
	Customers   []SegmentCustomerResponse `json:"customers"`
}

type RFMListItemResponse struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name,omitempty"`
	Frequency    int     `json:"frequency"`
	RecencyDays  int     `json:"recency_days"`
	Value        float64 `json:"value"`
	Segment      string  `json:"segment"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Erro interno do servidor"`
}
