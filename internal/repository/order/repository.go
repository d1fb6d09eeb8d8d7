package order

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, order domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
