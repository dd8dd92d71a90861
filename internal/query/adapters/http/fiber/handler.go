package fiber

import (
	"context"
	"errors"
	"net/http"

	"nola-analytics/internal/query/core/domain"
	"nola-analytics/internal/query/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type CustomQueryUseCase interface {
	Execute(ctx context.Context, in usecase.CustomQueryInput) ([]domain.ResultRow, error)
}

type KPISummaryUseCase interface {
	Execute(ctx context.Context) (domain.KPISummary, error)
}

type QueryHandler struct {
	queryUC CustomQueryUseCase
	kpiUC   KPISummaryUseCase
}

func NewQueryHandler(queryUC CustomQueryUseCase, kpiUC KPISummaryUseCase) *QueryHandler {
	return &QueryHandler{queryUC: queryUC, kpiUC: kpiUC}
}

// CustomQuery godoc
// @Summary Run a metric/dimension query
// @Description Aggregates the selected metric grouped by the selected dimension, optionally filtered by channel
// @Tags Query
// @Produce json
// @Param metric query string true "Metric key: total_amount | order_count | avg_delivery_time"
// @Param dimension query string true "Dimension key: channel | region | product_name | hour_of_day"
// @Param channel query string false "Channel filter, 'Todos' for all"
// @Success 200 {array} ResultRowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/custom_query/ [get]
func (h *QueryHandler) CustomQuery(c *fiber.Ctx) error {
	in := usecase.CustomQueryInput{
		Metric:    c.Query("metric", ""),
		Dimension: c.Query("dimension", ""),
		Channel:   c.Query("channel", ""),
	}

	rows, err := h.queryUC.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownMetric),
			errors.Is(err, usecase.ErrUnknownDimension),
			errors.Is(err, usecase.ErrUnknownChannel),
			errors.Is(err, usecase.ErrIncompatibleDimension):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Detail: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Detail: "Erro interno do servidor",
			})
		}
	}

	resp := make([]ResultRowResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, ResultRowResponse{
			Dimension: r.DimensionValue,
			Metric:    r.MetricValue,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// KPISummary godoc
// @Summary Dashboard KPI snapshot
// @Tags Query
// @Produce json
// @Success 200 {object} KPISummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/kpis/summary [get]
func (h *QueryHandler) KPISummary(c *fiber.Ctx) error {
	summary, err := h.kpiUC.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Detail: "Erro interno do servidor",
		})
	}

	return c.Status(http.StatusOK).JSON(KPISummaryResponse{
		TotalRevenue:    summary.TotalRevenue,
		TotalOrders:     summary.TotalOrders,
		AvgTicket:       summary.AvgTicket,
		ActiveCustomers: summary.ActiveCustomers,
	})
}
