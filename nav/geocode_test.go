package nav

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func withServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	ts := httptest.NewServer(h)
	old := BaseURL
	BaseURL = ts.URL
	geoCache.clear()
	t.Cleanup(func() {
		BaseURL = old
		geoCache.clear()
		ts.Close()
	})
}

func TestGeocode(t *testing.T) {
	var hits int64
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		if !strings.HasPrefix(r.URL.Path, "/maps/api/geocode/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		addr := r.URL.Query().Get("address")
		if !strings.Contains(addr, "Plaza Urquiza") || !strings.Contains(addr, City) {
			t.Errorf("address %q missing place or city scope", addr)
		}
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":-26.8241,"lng":-65.2226}}}]}`))
	})

	lat, lon, err := Geocode(context.Background(), "Plaza Urquiza")
	if err != nil {
		t.Fatal(err)
	}
	if lat != -26.8241 || lon != -65.2226 {
		t.Errorf("got %f,%f", lat, lon)
	}

	// second lookup is served from the cache, case-insensitively
	if _, _, err := Geocode(context.Background(), "  plaza urquiza "); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Errorf("provider hit %d times, want 1", n)
	}
}

func TestGeocodeMiss(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero results", `{"status":"ZERO_RESULTS","results":[]}`},
		{"ok but empty", `{"status":"OK","results":[]}`},
		{"garbage", `{]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			if _, _, err := Geocode(context.Background(), "la luna"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestGeocodeMissIsNotCached(t *testing.T) {
	var hits int64
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&hits, 1) == 1 {
			w.WriteHeader(500)
			return
		}
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":-26.8,"lng":-65.2}}}]}`))
	})

	if _, _, err := Geocode(context.Background(), "Casa Histórica"); err == nil {
		t.Fatal("expected an error from the first call")
	}
	lat, _, err := Geocode(context.Background(), "Casa Histórica")
	if err != nil {
		t.Fatal(err)
	}
	if lat != -26.8 {
		t.Errorf("lat = %f", lat)
	}
}
