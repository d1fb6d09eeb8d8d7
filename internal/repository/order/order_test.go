package order

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
	"storefront/internal/migrate"
)

func TestPostgres_CreateAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE orders`); err != nil {
		t.Fatalf("truncate orders: %v", err)
	}

	repo := NewPostgres(pool, nil)
	placed := domain.Order{
		ID:     "ORD-1234-5678",
		UserID: "u1",
		Products: []domain.OrderProduct{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		},
		Total: 35,
		Shipping: domain.ShippingDetails{
			FullName: "Jamie Doe",
			Address:  "1 Main St",
			City:     "Springfield",
			ZipCode:  "12345",
			Country:  "United States",
		},
		Payment: domain.PaymentDetails{CardNumber: "4242", CardName: "Jamie Doe"},
		Status:  "processing",
		Date:    time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := repo.Create(ctx, placed); err != nil {
		t.Fatalf("Create: %v", err)
	}

	orders, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	got := orders[0]
	if got.ID != placed.ID || got.Total != placed.Total || got.Status != "processing" {
		t.Fatalf("unexpected order %+v", got)
	}
	if len(got.Products) != 2 || got.Products[0].ProductID != 1 || got.Products[0].Quantity != 2 {
		t.Fatalf("unexpected products %+v", got.Products)
	}
	if got.Payment.CardNumber != "4242" {
		t.Fatalf("unexpected payment %+v", got.Payment)
	}

	other, err := repo.ListByUser(ctx, "someone-else")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no orders for other user, got %+v", other)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}
