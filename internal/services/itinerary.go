package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

// SampleGenerator returns a deterministic Las Vegas / Grand Canyon itinerary
// with the requested origin and destination spliced into the steps. It is the
// reference strategy and the fallback for the AI-backed ones.
type SampleGenerator struct{}

func NewSampleGenerator() *SampleGenerator {
	return &SampleGenerator{}
}

func (g *SampleGenerator) Generate(_ context.Context, origin, destination, _ string) (*resp.TripResult, error) {
	claimDeal := resp.ActionLink{Type: resp.ActionLinkURL, DisplayText: "Claim Deal", Target: "#"}
	bookNow := resp.ActionLink{Type: resp.ActionLinkURL, DisplayText: "Book Now", Target: "#"}
	expertHelp := resp.ActionLink{Type: resp.ActionLinkSkill, DisplayText: "Expert Help", Target: "contact_hotel_expert"}

	showTickets := resp.Deal{
		ID:          uuid.NewString(),
		Provider:    "Vegas Fun",
		Title:       "2-for-1 Show Tickets",
		Description: "Get two tickets for the price of one for select shows.",
		Action:      claimDeal,
	}

	waypoints := []resp.Waypoint{
		{
			ID:   uuid.NewString(),
			Name: "Las Vegas, NV",
			Attractions: []resp.Attraction{
				{
					ID:          uuid.NewString(),
					Name:        "The Strip",
					Category:    "Sightseeing",
					Rating:      4.8,
					Description: "The iconic street with casinos, hotels, and entertainment.",
					Deals:       []resp.Deal{showTickets},
				},
				{
					ID:          uuid.NewString(),
					Name:        "High Roller",
					Category:    "Experience",
					Rating:      4.7,
					Description: "The world's tallest observation wheel.",
				},
			},
			Warnings: []resp.Warning{
				{
					ID:          uuid.NewString(),
					Title:       "Extreme Heat",
					Type:        "Weather",
					Severity:    resp.SeverityMedium,
					Description: "Temperatures can exceed 100°F. Stay hydrated.",
				},
			},
			Deals: []resp.Deal{
				showTickets,
				{
					ID:          uuid.NewString(),
					Provider:    "City Eats",
					Title:       "15% off at Celebrity Chef Restaurants",
					Description: "Enjoy a discount at participating restaurants.",
					Action: resp.ActionLink{
						Type:        resp.ActionLinkSkill,
						DisplayText: "See Restaurants",
						Target:      "show_restaurants_list",
					},
				},
			},
			Hotels: []resp.Hotel{
				{
					ID: uuid.NewString(), Name: "The Bellagio", Rating: 4.7, PricePerNight: 350,
					Action: bookNow, ExpertHelpAction: &expertHelp,
					Amenities: []string{"Pool", "Spa", "Free WiFi", "Casino"},
				},
				{
					ID: uuid.NewString(), Name: "Caesars Palace", Rating: 4.6, PricePerNight: 300,
					Action: bookNow, ExpertHelpAction: &expertHelp,
					Amenities: []string{"Pool", "Restaurant", "Free WiFi", "Casino"},
				},
				{
					ID: uuid.NewString(), Name: "Excalibur Hotel & Casino", Rating: 3.5, PricePerNight: 95,
					Action: bookNow, ExpertHelpAction: &expertHelp,
					Amenities: []string{"Pool", "Pet-Friendly", "Casino"},
				},
			},
		},
		{
			ID:   uuid.NewString(),
			Name: "Grand Canyon National Park, AZ",
			Attractions: []resp.Attraction{
				{
					ID:          uuid.NewString(),
					Name:        "South Rim Trail",
					Category:    "Hiking",
					Rating:      4.9,
					Description: "A scenic trail with breathtaking views of the canyon.",
				},
			},
			Warnings: []resp.Warning{
				{
					ID:          uuid.NewString(),
					Title:       "Wildlife Sighting",
					Type:        "Animal",
					Severity:    resp.SeverityLow,
					Description: "Elk and deer are common. Do not feed wildlife.",
				},
			},
			Deals: []resp.Deal{
				{
					ID:          uuid.NewString(),
					Provider:    "Canyon Adventures",
					Title:       "10% Off Mule Tours",
					Description: "Book a mule tour of the canyon rim and save 10%.",
					Action: resp.ActionLink{
						Type:        resp.ActionLinkURL,
						DisplayText: "Book Tour",
						Target:      "#",
					},
				},
			},
			Hotels: []resp.Hotel{
				{
					ID: uuid.NewString(), Name: "El Tovar Hotel", Rating: 4.5, PricePerNight: 400,
					Action: bookNow, ExpertHelpAction: &expertHelp,
					Amenities: []string{"Restaurant", "Historic", "Free WiFi"},
				},
				{
					ID: uuid.NewString(), Name: "Yavapai Lodge", Rating: 3.8, PricePerNight: 220,
					Action: bookNow, ExpertHelpAction: &expertHelp,
					Amenities: []string{"Restaurant", "Pet-Friendly", "Free Breakfast"},
				},
			},
		},
	}

	return &resp.TripResult{
		Origin:        origin,
		Destination:   destination,
		TotalDistance: "580 miles",
		TotalDuration: "9 hours 30 mins",
		Waypoints:     waypoints,
		Steps: []string{
			fmt.Sprintf("Start from %s.", origin),
			"Take I-15 N towards Las Vegas.",
			"Arrive at Las Vegas, NV.",
			"From Las Vegas, take US-93 S to I-40 E.",
			"Take AZ-64 N to Grand Canyon Village.",
			"Arrive at Grand Canyon National Park, AZ.",
			fmt.Sprintf("Continue on AZ-64 E and other routes towards %s.", destination),
			fmt.Sprintf("Arrive at your destination: %s.", destination),
		},
	}, nil
}
