package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"manufacturer-api/internal/config"
)

func TestCreatePaymentIntent(t *testing.T) {
	var gotForm map[string][]string
	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotForm = r.PostForm
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc","status":"requires_payment_method"}`))
	}))
	defer ts.Close()

	c := NewStripeClient(&config.Stripe{
		BaseAPIURL: ts.URL,
		SecretKey:  "sk_test_xyz",
	})

	intent, err := c.CreatePaymentIntent(context.Background(), 1999)
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}

	if intent.ClientSecret != "pi_123_secret_abc" {
		t.Errorf("client secret = %q", intent.ClientSecret)
	}
	if gotAuth != "Bearer sk_test_xyz" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if got := gotForm["amount"]; len(got) != 1 || got[0] != "1999" {
		t.Errorf("amount = %v, want [1999]", got)
	}
	if got := gotForm["currency"]; len(got) != 1 || got[0] != "usd" {
		t.Errorf("currency = %v, want [usd]", got)
	}
	if got := gotForm["payment_method_types[]"]; len(got) != 1 || got[0] != "card" {
		t.Errorf("payment_method_types = %v, want [card]", got)
	}
}

func TestCreatePaymentIntentProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer ts.Close()

	c := NewStripeClient(&config.Stripe{BaseAPIURL: ts.URL, SecretKey: "sk_test_xyz"})

	if _, err := c.CreatePaymentIntent(context.Background(), 500); err == nil {
		t.Error("expected provider error to surface")
	}
}
