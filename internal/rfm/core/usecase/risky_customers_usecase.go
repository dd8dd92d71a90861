package usecase

import (
	"context"
	"errors"

	"nola-analytics/internal/rfm/core/domain"
	"nola-analytics/internal/rfm/core/ports"
)

// ErrMartMissing is raised when the RFM data mart has not been built yet.
var ErrMartMissing = errors.New("o data mart 'analytics.mart_customer_rfm' ainda não foi criado")

type RiskyCustomersUseCase struct {
	reader ports.RFMReaderPort
}

func NewRiskyCustomersUseCase(reader ports.RFMReaderPort) *RiskyCustomersUseCase {
	return &RiskyCustomersUseCase{reader: reader}
}

func (uc *RiskyCustomersUseCase) Execute(ctx context.Context) (domain.SegmentList, error) {
	customers, err := uc.reader.CustomersBySegment(ctx, domain.SegmentAtRisk)
	if err != nil {
		return domain.SegmentList{}, err
	}
	if customers == nil {
		customers = []domain.RFMCustomer{}
	}
	return domain.SegmentList{
		SegmentName: domain.SegmentAtRisk,
		TotalCount:  len(customers),
		Customers:   customers,
	}, nil
}

type RFMListUseCase struct {
	reader ports.RFMReaderPort
}

func NewRFMListUseCase(reader ports.RFMReaderPort) *RFMListUseCase {
	return &RFMListUseCase{reader: reader}
}

func (uc *RFMListUseCase) Execute(ctx context.Context) ([]domain.RFMCustomer, error) {
	customers, err := uc.reader.AllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []domain.RFMCustomer{}
	}
	return customers, nil
}
