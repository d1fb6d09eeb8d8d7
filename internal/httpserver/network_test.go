package httpserver

import (
	"net/http"
	"testing"
)

func TestNetworkHandlers(t *testing.T) {
	env := newTestEnv(t)
	token := env.anonToken(t)

	rec := env.do(http.MethodGet, "/api/network", token, "")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"isOnline":true}` {
		t.Fatalf("get network: %d body=%s", rec.Code, rec.Body.String())
	}

	rec = env.do(http.MethodPut, "/api/network", token, `{"isOnline":false}`)
	if rec.Code != http.StatusOK || rec.Body.String() != `{"isOnline":false}` {
		t.Fatalf("set network: %d body=%s", rec.Code, rec.Body.String())
	}
	if env.network.IsOnline() {
		t.Fatalf("expected observer to report offline")
	}

	rec = env.do(http.MethodPut, "/api/network", token, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing state, got %d body=%s", rec.Code, rec.Body.String())
	}
}
