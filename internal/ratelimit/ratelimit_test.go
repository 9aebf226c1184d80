package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(time.Second, 3)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		if !l.Allow("client") {
			t.Errorf("request %d should be allowed", i+1)
		}
	}

	if l.Allow("client") {
		t.Error("4th request should be blocked")
	}

	// an unrelated key has its own window
	if !l.Allow("other") {
		t.Error("different key should be allowed")
	}

	time.Sleep(1100 * time.Millisecond)

	if !l.Allow("client") {
		t.Error("request after window expiry should be allowed")
	}
}

func TestLimiter_Remaining(t *testing.T) {
	l := NewLimiter(time.Second, 5)
	defer l.Stop()

	if got := l.Remaining("client"); got != 5 {
		t.Errorf("expected 5 remaining, got %d", got)
	}

	l.Allow("client")
	l.Allow("client")

	if got := l.Remaining("client"); got != 3 {
		t.Errorf("expected 3 remaining, got %d", got)
	}
}

func TestLimiter_Middleware(t *testing.T) {
	l := NewLimiter(time.Second, 1)
	defer l.Stop()

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("first request expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request expected 429, got %d", rec.Code)
	}
}
