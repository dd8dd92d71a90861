package fiber

import (
	"context"
	"errors"
	"net/http"

	"nola-analytics/internal/rfm/core/domain"
	"nola-analytics/internal/rfm/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RiskyCustomersUseCase interface {
	Execute(ctx context.Context) (domain.SegmentList, error)
}

type RFMListUseCase interface {
	Execute(ctx context.Context) ([]domain.RFMCustomer, error)
}

type RFMHandler struct {
	riskyUC RiskyCustomersUseCase
	listUC  RFMListUseCase
}

func NewRFMHandler(riskyUC RiskyCustomersUseCase, listUC RFMListUseCase) *RFMHandler {
	return &RFMHandler{riskyUC: riskyUC, listUC: listUC}
}

// RiskyCustomers godoc
// @Summary At-risk customers
// @Description Customers flagged by the RFM mart as a retention concern
// @Tags RFM
// @Produce json
// @Success 200 {array} RiskyCustomerResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/rfm/risky-customers [get]
func (h *RFMHandler) RiskyCustomers(c *fiber.Ctx) error {
	list, err := h.riskyUC.Execute(c.UserContext())
	if err != nil {
		return martError(c, err)
	}

	resp := make([]RiskyCustomerResponse, 0, len(list.Customers))
	for _, cust := range list.Customers {
		resp = append(resp, RiskyCustomerResponse{
			CustomerID:         cust.ID,
			CustomerName:       cust.Name,
			DaysSinceLastOrder: cust.RecencyDays,
			Frequency:          cust.Frequency,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// Segment godoc
// @Summary At-risk segment, original response shape
// @Tags RFM
// @Produce json
// @Success 200 {object} SegmentResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/segments/em-risco [get]
func (h *RFMHandler) Segment(c *fiber.Ctx) error {
	list, err := h.riskyUC.Execute(c.UserContext())
	if err != nil {
		return martError(c, err)
	}

	resp := SegmentResponse{
		TotalCount:  list.TotalCount,
		SegmentName: list.SegmentName,
		Customers:   make([]SegmentCustomerResponse, 0, len(list.Customers)),
	}
	for _, cust := range list.Customers {
		resp.Customers = append(resp.Customers, SegmentCustomerResponse{
			CustomerName:    optional(cust.Name),
			PhoneNumber:     optional(cust.Phone),
			Email:           optional(cust.Email),
			Frequencia:      cust.Frequency,
			Recencia:        cust.RecencyDays,
			Valor:           cust.MonetaryValue,
			SegmentoCliente: cust.Segment,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// RFMList godoc
// @Summary Full RFM client list
// @Tags RFM
// @Produce json
// @Success 200 {array} RFMListItemResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/clients/rfm_list [get]
func (h *RFMHandler) RFMList(c *fiber.Ctx) error {
	customers, err := h.listUC.Execute(c.UserContext())
	if err != nil {
		return martError(c, err)
	}

	resp := make([]RFMListItemResponse, 0, len(customers))
	for _, cust := range customers {
		resp = append(resp, RFMListItemResponse{
			CustomerID:   cust.ID,
			CustomerName: cust.Name,
			Frequency:    cust.Frequency,
			RecencyDays:  cust.RecencyDays,
			Value:        cust.MonetaryValue,
			Segment:      cust.Segment,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func martError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrMartMissing) {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Detail: "O Data Mart 'analytics.mart_customer_rfm' ainda não foi criado. Rode o dbt primeiro.",
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Detail: "Erro interno do servidor",
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
