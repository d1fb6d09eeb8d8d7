// Package order simulates order submission. No real payment processing
// occurs: creation waits a fixed delay, generates an identifier, and
// records the order for the user's history.
package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

// StatusProcessing is the status every freshly placed order gets.
const StatusProcessing = "processing"

type Service struct {
	repo  orderRepo
	delay time.Duration
}

type orderRepo interface {
	Create(ctx context.Context, order domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// New creates a Service. delay is the simulated processing time applied
// to every submission; it is fixed-duration and not interruptible.
func New(repo orderrepo.Repository, delay time.Duration) *Service {
	return &Service{repo: repo, delay: delay}
}

type CreateInput struct {
	UserID   string                 `json:"userId"`
	Products []domain.OrderProduct  `json:"products"`
	Total    float64                `json:"total"`
	Shipping domain.ShippingDetails `json:"shippingDetails"`
	Payment  PaymentInput           `json:"paymentDetails"`
}

// PaymentInput carries what the checkout form collected. Only the last
// four digits of the card number and the holder name survive into the
// stored order; the full PAN and CVV are dropped here.
type PaymentInput struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

// Create validates and submits the order, returning it with its
// generated identifier.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, errors.New("userId required")
	}
	if len(in.Products) == 0 {
		return nil, errors.New("products required")
	}
	for _, p := range in.Products {
		if p.Quantity < 1 {
			return nil, errors.New("quantity must be positive")
		}
	}
	if in.Total < 0 {
		return nil, errors.New("total must be non-negative")
	}

	time.Sleep(s.delay)

	placed := domain.Order{
		ID:       newOrderID(),
		UserID:   in.UserID,
		Products: in.Products,
		Total:    in.Total,
		Shipping: in.Shipping,
		Payment: domain.PaymentDetails{
			CardNumber: lastFour(in.Payment.CardNumber),
			CardName:   in.Payment.CardName,
		},
		Status: StatusProcessing,
		Date:   time.Now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, placed); err != nil {
			return nil, err
		}
	}
	return &placed, nil
}

// ListByUser returns the user's order history, most recent first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	if s.repo == nil {
		return []domain.Order{}, nil
	}
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func newOrderID() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	return fmt.Sprintf("ORD-%d-%s", rand.IntN(10000), millis[len(millis)-4:])
}

func lastFour(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
