package fiber

import (
	"nola-analytics/internal/explorer/core/domain"
)

// SelectionRequest carries partial selection updates; empty fields are left
// untouched. Values outside the catalog are rejected up front.
type SelectionRequest struct {
	Metric    string `json:"metric" validate:"omitempty,oneof=total_amount order_count avg_delivery_time"`
	Dimension string `json:"dimension" validate:"omitempty,oneof=channel region product_name hour_of_day"`
	Channel   string `json:"channel" validate:"omitempty,oneof=Todos iFood Rappi WhatsApp Presencial"`
}

type SessionResponse struct {
	SessionID string            `json:"session_id"`
	View      ViewModelResponse `json:"view"`
}

type ChartSeriesResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Title  string    `json:"title"`
}

type KPIsResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int64   `json:"total_orders"`
	AvgTicket       float64 `json:"avg_ticket"`
	ActiveCustomers int64   `json:"active_customers"`
}

type RiskCustomerResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	RecencyDays int    `json:"recency_days"`
	Frequency   int    `json:"frequency"`
}

type RequestStateResponse struct {
	Phase string `json:"phase"`
	Error string `json:"error,omitempty"`
}

// ViewModelResponse is the full render-ready bundle; the presentational
// layer applies no logic beyond displaying it.
type ViewModelResponse struct {
	Metric           string   `json:"metric"`
	Dimension        string   `json:"dimension"`
	Channel          string   `json:"channel"`
	DimensionOptions []string `json:"dimension_options"`

	KPIs *KPIsResponse `json:"kpis"`

	Chart      *ChartSeriesResponse `json:"chart"`
	ChartTitle string               `json:"chart_title"`

	RiskCustomers       []RiskCustomerResponse `json:"risk_customers"`
	RiskCount           int                    `json:"risk_count"`
	RiskCountIsFallback bool                   `json:"risk_count_is_fallback"`

	Analysis RequestStateResponse `json:"analysis_state"`
	Risk     RequestStateResponse `json:"risk_state"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"sessão não encontrada"`
}

func toViewResponse(vm domain.ViewModel) ViewModelResponse {
	resp := ViewModelResponse{
		Metric:              string(vm.Selection.Metric),
		Dimension:           string(vm.Selection.Dimension),
		Channel:             string(vm.Selection.Channel),
		DimensionOptions:    make([]string, 0, len(vm.DimensionOptions)),
		ChartTitle:          vm.ChartTitle,
		RiskCustomers:       make([]RiskCustomerResponse, 0, len(vm.RiskCustomers)),
		RiskCount:           vm.RiskCount,
		RiskCountIsFallback: vm.RiskCountIsFallback,
		Analysis:            RequestStateResponse{Phase: string(vm.Analysis.Phase), Error: vm.Analysis.Err},
		Risk:                RequestStateResponse{Phase: string(vm.Risk.Phase), Error: vm.Risk.Err},
	}

	for _, d := range vm.DimensionOptions {
		resp.DimensionOptions = append(resp.DimensionOptions, string(d))
	}

	if vm.KPIs != nil {
		resp.KPIs = &KPIsResponse{
			TotalRevenue:    vm.KPIs.TotalRevenue,
			TotalOrders:     vm.KPIs.TotalOrders,
			AvgTicket:       vm.KPIs.AvgTicket,
			ActiveCustomers: vm.KPIs.ActiveCustomers,
		}
	}

	if vm.Chart != nil {
		resp.Chart = &ChartSeriesResponse{
			Labels: vm.Chart.Labels,
			Values: vm.Chart.Values,
			Title:  vm.Chart.Title,
		}
		if resp.Chart.Labels == nil {
			resp.Chart.Labels = []string{}
		}
		if resp.Chart.Values == nil {
			resp.Chart.Values = []float64{}
		}
	}

	for _, cust := range vm.RiskCustomers {
		resp.RiskCustomers = append(resp.RiskCustomers, RiskCustomerResponse{
			ID:          cust.ID,
			DisplayName: cust.DisplayName(),
			RecencyDays: cust.RecencyDays,
			Frequency:   cust.Frequency,
		})
	}

	return resp
}
