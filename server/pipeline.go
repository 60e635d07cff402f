package server

import (
	"lazarillo.ai/agent"
	"lazarillo.ai/nav"
)

// LivePipeline wires the real collaborators: OpenAI for destination
// resolution, translation and place info, Google Maps for geocoding and
// walking directions.
func LivePipeline() *Pipeline {
	return &Pipeline{
		Resolve:   agent.DetectDestination,
		Geocode:   nav.Geocode,
		Route:     nav.WalkingRoute,
		Translate: agent.TranslateSteps,
		Describe:  agent.DescribePlace,
	}
}
