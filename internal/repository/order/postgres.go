package order

import (
	"context"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, order domain.Order) error {
	const q = `
INSERT INTO orders (id, user_id, products, total, shipping, payment, status, order_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.pool.Exec(ctx, q,
		order.ID,
		order.UserID,
		order.Products,
		order.Total,
		order.Shipping,
		order.Payment,
		order.Status,
		order.Date,
	)
	if err != nil {
		r.logger.Printf("order repo: create id=%s user_id=%s error=%v", order.ID, order.UserID, err)
		return err
	}
	r.logger.Printf("order repo: created id=%s user_id=%s total=%.2f", order.ID, order.UserID, order.Total)
	return nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id, user_id, products, total, shipping, payment, status, order_date
FROM orders
WHERE user_id = $1
ORDER BY order_date DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Products,
			&o.Total,
			&o.Shipping,
			&o.Payment,
			&o.Status,
			&o.Date,
		); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows user_id=%s error=%v", userID, err)
		return nil, err
	}
	r.logger.Printf("order repo: list user_id=%s count=%d", userID, len(result))
	return result, nil
}
