package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"nola-analytics/internal/rfm/core/domain"
	"nola-analytics/internal/rfm/core/ports"
	"nola-analytics/internal/rfm/core/usecase"
)

// undefined_table, raised until dbt has built the mart.
const pgUndefinedTable = "42P01"

type RFMRepository struct {
	db DB
}

func NewRFMRepository(db DB) *RFMRepository {
	return &RFMRepository{db: db}
}

var _ ports.RFMReaderPort = (*RFMRepository)(nil)

const segmentSQL = `
SELECT customer_id, customer_name, phone_number, email, frequencia, recencia, valor, segmento_cliente
FROM analytics.mart_customer_rfm
WHERE segmento_cliente = $1
ORDER BY recencia DESC`

const allSQL = `
SELECT customer_id, customer_name, phone_number, email, frequencia, recencia, valor, segmento_cliente
FROM analytics.mart_customer_rfm
ORDER BY segmento_cliente, recencia DESC`

func (r *RFMRepository) CustomersBySegment(ctx context.Context, segment string) ([]domain.RFMCustomer, error) {
	return r.query(ctx, segmentSQL, segment)
}

func (r *RFMRepository) AllCustomers(ctx context.Context) ([]domain.RFMCustomer, error) {
	return r.query(ctx, allSQL)
}

func (r *RFMRepository) query(ctx context.Context, query string, args ...any) ([]domain.RFMCustomer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapMartError(err)
	}
	defer rows.Close()

	customers := []domain.RFMCustomer{}
	for rows.Next() {
		var (
			c     domain.RFMCustomer
			name  sql.NullString
			phone sql.NullString
			email sql.NullString
		)
		if err := rows.Scan(
			&c.ID,
			&name,
			&phone,
			&email,
			&c.Frequency,
			&c.RecencyDays,
			&c.MonetaryValue,
			&c.Segment,
		); err != nil {
			return nil, err
		}
		c.Name = name.String
		c.Phone = phone.String
		c.Email = email.String
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func mapMartError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUndefinedTable {
		return usecase.ErrMartMissing
	}
	return err
}
