package ports

import (
	"context"

	"nola-analytics/internal/rfm/core/domain"
)

type RFMReaderPort interface {
	// CustomersBySegment returns mart rows for one segment, most recent
	// recency first.
	CustomersBySegment(ctx context.Context, segment string) ([]domain.RFMCustomer, error)
	// AllCustomers returns the full mart across segments.
	AllCustomers(ctx context.Context) ([]domain.RFMCustomer, error)
}
