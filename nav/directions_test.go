package nav

import (
	"context"
	"net/http"
	"testing"
)

const directionsBody = `{
  "status": "OK",
  "routes": [{"legs": [{"steps": [
    {"html_instructions": "Head <b>north</b> on <b>Av. Sarmiento</b>"},
    {"html_instructions": "Turn <b>right</b> onto <b>Muñecas</b><div style=\"font-size:0.9em\">Destination will be on the left</div>"},
    {"html_instructions": ""}
  ]}]}]
}`

func TestWalkingRoute(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("mode") != "walking" {
			t.Errorf("mode = %q, want walking", q.Get("mode"))
		}
		if q.Get("origin") == "" || q.Get("destination") == "" {
			t.Error("missing origin or destination")
		}
		w.Write([]byte(directionsBody))
	})

	steps, err := WalkingRoute(context.Background(), -26.83, -65.22, -26.8241, -65.2226)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"Head north on Av. Sarmiento",
		"Turn right onto Muñecas Destination will be on the left",
	}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps %v, want %d", len(steps), steps, len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, steps[i], want[i])
		}
	}
}

func TestWalkingRouteNotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero results", `{"status":"ZERO_RESULTS","routes":[]}`},
		{"no legs", `{"status":"OK","routes":[{"legs":[]}]}`},
		{"only empty steps", `{"status":"OK","routes":[{"legs":[{"steps":[{"html_instructions":"  "}]}]}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			if _, err := WalkingRoute(context.Background(), 0, 0, 1, 1); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Head north", "Head north"},
		{"Head   north\n on Av. Sarmiento", "Head north on Av. Sarmiento"},
		{"Head <b>north</b> on <b>Av. Sarmiento</b>", "Head north on Av. Sarmiento"},
		{`Turn left<div style="font-size:0.9em">Destination on the right</div>`, "Turn left Destination on the right"},
		{"", ""},
		{"<b></b>", ""},
	}

	for _, tc := range tests {
		if got := StripMarkup(tc.in); got != tc.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
