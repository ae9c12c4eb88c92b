package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

// ItineraryGenerator produces a trip plan between two places. Implementations
// must return a result whose waypoint order is the travel order and whose
// steps come from the same generation, so the two stay consistent by
// construction.
type ItineraryGenerator interface {
	Generate(ctx context.Context, origin, destination, vacationWants string) (*resp.TripResult, error)
}

// NewItineraryGeneratorFromEnv picks the generation strategy. The sample
// generator is the default and needs no credentials; the AI-backed ones fall
// back to it on any upstream failure.
func NewItineraryGeneratorFromEnv() ItineraryGenerator {
	switch os.Getenv("TRIP_GENERATOR") {
	case "gemini":
		gen, err := NewGeminiGenerator(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("Gemini generator unavailable, using sample itinerary: %v", err)
			return NewSampleGenerator()
		}
		return gen
	case "openai":
		return NewOpenAIGenerator(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	default:
		return NewSampleGenerator()
	}
}

// generatedItinerary is the JSON shape the AI strategies prompt for: the
// TripResult graph without ids or action links, which are filled in locally.
type generatedItinerary struct {
	TotalDistance string `json:"totalDistance"`
	TotalDuration string `json:"totalDuration"`
	Waypoints     []struct {
		Name        string `json:"name"`
		Attractions []struct {
			Name        string  `json:"name"`
			Category    string  `json:"category"`
			Rating      float64 `json:"rating"`
			Description string  `json:"description"`
		} `json:"attractions"`
		Warnings []struct {
			Title       string `json:"title"`
			Type        string `json:"type"`
			Severity    string `json:"severity"`
			Description string `json:"description"`
		} `json:"warnings"`
		Hotels []struct {
			Name          string   `json:"name"`
			Rating        float64  `json:"rating"`
			PricePerNight float64  `json:"pricePerNight"`
			Amenities     []string `json:"amenities"`
		} `json:"hotels"`
	} `json:"waypoints"`
	Steps []string `json:"steps"`
}

func itineraryPrompt(origin, destination, vacationWants string) string {
	prompt := fmt.Sprintf(
		"Generate a detailed road trip plan from %s to %s as JSON with fields "+
			"totalDistance, totalDuration, steps (ordered driving directions, the first "+
			"mentioning the origin and the last the destination) and waypoints (ordered "+
			"stops, each with name, attractions [name, category, rating, description], "+
			"warnings [title, type, severity one of low|medium|high, description] and "+
			"hotels [name, rating, pricePerNight, amenities]).",
		origin, destination)
	if vacationWants != "" {
		prompt += " Requirements: " + vacationWants
	}
	return prompt
}

// buildTripResult converts a parsed AI itinerary into the domain shape,
// assigning fresh ids and booking links.
func buildTripResult(raw *generatedItinerary, origin, destination string) (*resp.TripResult, error) {
	if len(raw.Waypoints) == 0 || len(raw.Steps) == 0 {
		return nil, fmt.Errorf("generated itinerary has no waypoints or steps")
	}

	waypoints := make([]resp.Waypoint, 0, len(raw.Waypoints))
	for _, wp := range raw.Waypoints {
		out := resp.Waypoint{
			ID:          uuid.NewString(),
			Name:        wp.Name,
			Attractions: []resp.Attraction{},
			Warnings:    []resp.Warning{},
			Deals:       []resp.Deal{},
			Hotels:      []resp.Hotel{},
		}
		for _, a := range wp.Attractions {
			out.Attractions = append(out.Attractions, resp.Attraction{
				ID:          uuid.NewString(),
				Name:        a.Name,
				Category:    a.Category,
				Rating:      a.Rating,
				Description: a.Description,
			})
		}
		for _, w := range wp.Warnings {
			severity := resp.WarningSeverity(w.Severity)
			switch severity {
			case resp.SeverityLow, resp.SeverityMedium, resp.SeverityHigh:
			default:
				severity = resp.SeverityLow
			}
			out.Warnings = append(out.Warnings, resp.Warning{
				ID:          uuid.NewString(),
				Title:       w.Title,
				Type:        w.Type,
				Severity:    severity,
				Description: w.Description,
			})
		}
		for _, h := range wp.Hotels {
			amenities := h.Amenities
			if amenities == nil {
				amenities = []string{}
			}
			out.Hotels = append(out.Hotels, resp.Hotel{
				ID:            uuid.NewString(),
				Name:          h.Name,
				Rating:        h.Rating,
				PricePerNight: h.PricePerNight,
				Action:        resp.ActionLink{Type: resp.ActionLinkURL, DisplayText: "Book Now", Target: "#"},
				ExpertHelpAction: &resp.ActionLink{
					Type:        resp.ActionLinkSkill,
					DisplayText: "Expert Help",
					Target:      "contact_hotel_expert",
				},
				Amenities: amenities,
			})
		}
		waypoints = append(waypoints, out)
	}

	return &resp.TripResult{
		Origin:        origin,
		Destination:   destination,
		TotalDistance: raw.TotalDistance,
		TotalDuration: raw.TotalDuration,
		Waypoints:     waypoints,
		Steps:         raw.Steps,
	}, nil
}

func parseGeneratedItinerary(data []byte, origin, destination string) (*resp.TripResult, error) {
	var raw generatedItinerary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse generated itinerary: %w", err)
	}
	return buildTripResult(&raw, origin, destination)
}
