package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tourli/internal/model"
)

func testConfig(baseURL string) model.WeatherConfig {
	return model.WeatherConfig{
		APIKey:            "test-key",
		BaseURL:           baseURL,
		Timeout:           2 * time.Second,
		CacheTTL:          time.Minute,
		RequestsPerSecond: 100,
		Burst:             100,
	}
}

const owmBody = `{
	"main": {"temp": 22.5, "humidity": 64},
	"weather": [{"description": "clear sky"}],
	"wind": {"speed": 3.2}
}`

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Agadir" {
			t.Errorf("city param = %q, want Agadir", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("units param = %q, want metric", got)
		}
		if got := r.URL.Query().Get("appid"); got != "test-key" {
			t.Errorf("appid param = %q", got)
		}
		w.Write([]byte(owmBody))
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	w, err := c.Fetch(context.Background(), "Agadir")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if w.Temperature != 22.5 || w.Humidity != 64 || w.Condition != "clear sky" || w.WindSpeed != 3.2 {
		t.Errorf("unexpected weather: %+v", w)
	}
}

func TestFetchCaches(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(owmBody))
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	for i := 0; i < 3; i++ {
		if _, err := c.Fetch(context.Background(), "Rabat"); err != nil {
			t.Fatalf("Fetch %d: %v", i, err)
		}
	}
	// cache key is the normalized name, so spelling variants hit too
	if _, err := c.Fetch(context.Background(), "RABAT"); err != nil {
		t.Fatalf("Fetch variant: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("provider called %d times, want 1", n)
	}
}

func TestFetchNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "city not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	if _, err := c.Fetch(context.Background(), "Atlantis"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetchIncompletePayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather": [{"description": "hazy"}]}`))
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	if _, err := c.Fetch(context.Background(), "Agadir"); err == nil {
		t.Error("expected error for payload missing main/wind")
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	if _, err := c.Fetch(context.Background(), "Agadir"); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestFetchNoAPIKey(t *testing.T) {
	cfg := testConfig("http://unused.invalid")
	cfg.APIKey = ""
	c := NewClient(cfg)
	if _, err := c.Fetch(context.Background(), "Agadir"); err == nil {
		t.Error("expected error without API key")
	}
}
