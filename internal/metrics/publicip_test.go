package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ip":"203.0.113.7","city":"Oslo","country":"NO","org":"AS1 Example"}`))
	}))
	defer srv.Close()

	r := NewPublicIPResolver(srv.URL)
	info, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if info.IP != "203.0.113.7" || info.City != "Oslo" || info.Country != "NO" {
		t.Errorf("unexpected payload: %+v", info)
	}
}

func TestResolveRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := NewPublicIPResolver(srv.URL)
	if _, err := r.Resolve(context.Background()); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestSamplerKeepsStaleIPOnFailure(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ip":"203.0.113.7"}`))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer bad.Close()

	s := NewSampler(&MockProvider{}, SamplerOptions{IPEndpoint: good.URL})
	s.resolveIP(context.Background())
	if ip, ok := s.PublicIP(); !ok || ip.IP != "203.0.113.7" {
		t.Fatalf("expected successful lookup, got %+v ok=%v", ip, ok)
	}

	s.resolver.Endpoint = bad.URL
	s.resolveIP(context.Background())
	if ip, ok := s.PublicIP(); !ok || ip.IP != "203.0.113.7" {
		t.Errorf("failed refresh must keep the stale value, got %+v ok=%v", ip, ok)
	}
}

func TestSamplerReportsUnavailableBeforeFirstSuccess(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer bad.Close()

	s := NewSampler(&MockProvider{}, SamplerOptions{IPEndpoint: bad.URL})
	s.resolveIP(context.Background())
	if _, ok := s.PublicIP(); ok {
		t.Error("no prior success: PublicIP must report unavailable")
	}
}
