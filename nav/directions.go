package nav

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WalkingRoute returns ordered maneuver instructions for a walking route.
// Instruction text comes back from the provider with embedded HTML markup;
// it is stripped here so the steps read cleanly over voice.
func WalkingRoute(ctx context.Context, fromLat, fromLon, toLat, toLon float64) ([]string, error) {
	u := fmt.Sprintf("%s/maps/api/directions/json?origin=%f,%f&destination=%f,%f&mode=walking&key=%s",
		BaseURL, fromLat, fromLon, toLat, toLon, Key)

	resp, err := DirectionsGet(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("routing failed: %v", err)
	}
	defer resp.Body.Close()

	var data struct {
		Status string `json:"status"`
		Routes []struct {
			Legs []struct {
				Steps []struct {
					HTMLInstructions string `json:"html_instructions"`
				} `json:"steps"`
			} `json:"legs"`
		} `json:"routes"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode failed: %v", err)
	}

	if data.Status != "OK" || len(data.Routes) == 0 || len(data.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	var steps []string
	for _, step := range data.Routes[0].Legs[0].Steps {
		text := StripMarkup(step.HTMLInstructions)
		if text == "" {
			continue
		}
		steps = append(steps, text)
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	return steps, nil
}

// StripMarkup drops HTML tags from an instruction and collapses the
// whitespace the tags leave behind. Tags become word boundaries: the
// provider abuts inline <div> notes directly against the previous word.
func StripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(strings.ReplaceAll(s, "<", " <")))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
