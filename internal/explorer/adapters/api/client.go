package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"nola-analytics/internal/explorer/core/domain"
	"nola-analytics/internal/explorer/core/ports"
)

// NetworkError covers both transport failures and non-2xx responses. The
// message prefers the backend's "detail" field when one was decodable.
type NetworkError struct {
	Status int
	Detail string
	cause  error
}

func (e *NetworkError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.cause != nil {
		return fmt.Sprintf("falha de conexão com a API: %v", e.cause)
	}
	return fmt.Sprintf("requisição falhou com status %d", e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.cause
}

// Client talks to the analytics API over plain HTTP GETs.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var (
	_ ports.ResultFetcherPort   = (*Client)(nil)
	_ ports.RiskListFetcherPort = (*Client)(nil)
	_ ports.KPIFetcherPort      = (*Client)(nil)
)

type resultRowItem struct {
	Dimension string  `json:"dimension"`
	Metric    float64 `json:"metric"`
}

// FetchResults runs the custom query for one configuration. An empty array
// is a valid outcome and comes back as an empty slice.
func (c *Client) FetchResults(ctx context.Context, cfg domain.QueryConfiguration) ([]domain.ResultRow, error) {
	params := url.Values{}
	params.Set("metric", string(cfg.Metric))
	params.Set("dimension", string(cfg.Dimension))
	params.Set("channel", string(cfg.Channel))

	var items []resultRowItem
	if err := c.getJSON(ctx, "/api/v1/custom_query/?"+params.Encode(), &items); err != nil {
		return nil, err
	}

	rows := make([]domain.ResultRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, domain.ResultRow{
			DimensionValue: item.Dimension,
			MetricValue:    item.Metric,
		})
	}
	return rows, nil
}

// riskItem accepts both wire spellings the API variants use.
type riskItem struct {
	CustomerID         string `json:"customer_id"`
	CustomerName       string `json:"customer_name"`
	DaysSinceLastOrder *int   `json:"days_since_last_order"`
	Recencia           *int   `json:"recencia"`
	Frequency          *int   `json:"frequency"`
	Frequencia         *int   `json:"frequencia"`
}

// FetchRiskCustomers retrieves the at-risk list, normalizing field variants
// at this boundary so the domain only sees one shape.
func (c *Client) FetchRiskCustomers(ctx context.Context) ([]domain.RiskCustomer, error) {
	var items []riskItem
	if err := c.getJSON(ctx, "/api/v1/rfm/risky-customers", &items); err != nil {
		return nil, err
	}

	customers := make([]domain.RiskCustomer, 0, len(items))
	for _, item := range items {
		customers = append(customers, domain.RiskCustomer{
			ID:          item.CustomerID,
			Name:        item.CustomerName,
			RecencyDays: coalesce(item.DaysSinceLastOrder, item.Recencia),
			Frequency:   coalesce(item.Frequency, item.Frequencia),
		})
	}
	return customers, nil
}

type kpiItem struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int64   `json:"total_orders"`
	AvgTicket       float64 `json:"avg_ticket"`
	ActiveCustomers int64   `json:"active_customers"`
}

func (c *Client) FetchKPIs(ctx context.Context) (domain.KPISnapshot, error) {
	var item kpiItem
	if err := c.getJSON(ctx, "/api/v1/kpis/summary", &item); err != nil {
		return domain.KPISnapshot{}, err
	}
	return domain.KPISnapshot{
		TotalRevenue:    item.TotalRevenue,
		TotalOrders:     item.TotalOrders,
		AvgTicket:       item.AvgTicket,
		ActiveCustomers: item.ActiveCustomers,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		netErr := &NetworkError{Status: resp.StatusCode}
		var body struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			netErr.Detail = body.Detail
		}
		return netErr
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

func coalesce(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}
