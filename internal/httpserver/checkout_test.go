package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain"
)

const checkoutBody = `{
	"shippingDetails": {"fullName":"Jamie Doe","email":"jamie@example.com","address":"1 Main St","city":"Springfield","state":"IL","zipCode":"62701","country":"US"},
	"paymentDetails": {"cardNumber":"4111 1111 1111 1234","cardName":"Jamie Doe","expiryDate":"12/27","cvv":"123"}
}`

func fillCart(t *testing.T, env *testEnv, token string) {
	t.Helper()
	rec := env.do(http.MethodPost, "/api/cart/items", token, `{"id":1,"title":"Backpack","price":20,"quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("fill cart: %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCheckoutHandler_OfflineRefused(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t, "user@example.com")
	fillCart(t, env, token)
	env.network.Set(false)

	rec := env.do(http.MethodPost, "/api/checkout", token, checkoutBody)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "offline") {
		t.Fatalf("expected offline warning, got %s", rec.Body.String())
	}
	if env.orders.calls != 0 {
		t.Fatalf("expected no order submission while offline")
	}
	if cart := getCart(t, env, token); len(cart.Items) != 1 {
		t.Fatalf("cart should be intact after refusal, got %+v", cart.Items)
	}
}

func TestCheckoutHandler_SuccessClearsCart(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t, "user@example.com")
	fillCart(t, env, token)
	env.orders.order = &domain.Order{ID: "ORD-42-1234", Status: "processing", Total: 50}

	rec := env.do(http.MethodPost, "/api/checkout", token, checkoutBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"id":"ORD-42-1234"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if env.orders.calls != 1 {
		t.Fatalf("expected one order submission, got %d", env.orders.calls)
	}
	if cart := getCart(t, env, token); len(cart.Items) != 0 {
		t.Fatalf("cart should be empty after checkout, got %+v", cart.Items)
	}
}

func TestCheckoutHandler_SubmissionFailureKeepsCart(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t, "user@example.com")
	fillCart(t, env, token)
	env.orders.err = errors.New("orders backend down")

	rec := env.do(http.MethodPost, "/api/checkout", token, checkoutBody)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cart := getCart(t, env, token); len(cart.Items) != 1 {
		t.Fatalf("cart should be intact after failure, got %+v", cart.Items)
	}
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t, "user@example.com")

	rec := env.do(http.MethodPost, "/api/checkout", token, checkoutBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCheckoutHandler_AnonymousRejected(t *testing.T) {
	env := newTestEnv(t)
	token := env.anonToken(t)
	fillCart(t, env, token)

	rec := env.do(http.MethodPost, "/api/checkout", token, checkoutBody)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListOrdersHandler(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t, "user@example.com")
	env.orders.orders = []domain.Order{{ID: "ORD-1-0001", Status: "processing"}}

	rec := env.do(http.MethodGet, "/api/orders", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"id":"ORD-1-0001"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListOrdersHandler_AnonymousRejected(t *testing.T) {
	env := newTestEnv(t)
	token := env.anonToken(t)

	rec := env.do(http.MethodGet, "/api/orders", token, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}
