package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSONCarriesBearerAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	ctx := WithBearer(context.Background(), "tok-123")
	var out struct {
		ID int `json:"id"`
	}
	err := DoJSON(ctx, srv.Client(), http.MethodPost, srv.URL, map[string]string{"a": "b"}, &out)
	if err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out.ID != 7 {
		t.Fatalf("decoded id = %d", out.ID)
	}
}

func TestDoJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Credenciales inválidas"}`))
	}))
	defer srv.Close()

	err := DoJSON(context.Background(), srv.Client(), http.MethodPost, srv.URL, nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := StatusOf(err); got != http.StatusUnauthorized {
		t.Fatalf("StatusOf = %d", got)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Message != "Credenciales inválidas" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoJSONNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := DoJSON(context.Background(), srv.Client(), http.MethodGet, srv.URL, nil, nil)
	if got := StatusOf(err); got != http.StatusServiceUnavailable {
		t.Fatalf("StatusOf = %d (%v)", got, err)
	}
}

func TestStatusOfUnrelatedError(t *testing.T) {
	if got := StatusOf(context.Canceled); got != 0 {
		t.Fatalf("StatusOf(context.Canceled) = %d", got)
	}
}
