package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	resp "roadtrip/internal/models/response_models"
)

// GeminiGenerator asks Gemini for a JSON itinerary. Any upstream or parse
// failure falls back to the sample itinerary so trip planning keeps working
// without the API.
type GeminiGenerator struct {
	client   *genai.Client
	model    string
	fallback *SampleGenerator
}

func NewGeminiGenerator(apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:   client,
		model:    model,
		fallback: NewSampleGenerator(),
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, origin, destination, vacationWants string) (*resp.TripResult, error) {
	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)

	res, err := m.GenerateContent(ctx, genai.Text(itineraryPrompt(origin, destination, vacationWants)))
	if err != nil {
		log.Printf("Gemini API error, falling back to sample itinerary: %v", err)
		return g.fallback.Generate(ctx, origin, destination, vacationWants)
	}

	payload := firstTextPart(res)
	if payload == "" {
		log.Printf("Gemini returned no text, falling back to sample itinerary")
		return g.fallback.Generate(ctx, origin, destination, vacationWants)
	}

	result, err := parseGeneratedItinerary([]byte(payload), origin, destination)
	if err != nil {
		log.Printf("Gemini itinerary unusable, falling back to sample: %v", err)
		return g.fallback.Generate(ctx, origin, destination, vacationWants)
	}
	return result, nil
}

func firstTextPart(res *genai.GenerateContentResponse) string {
	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				return string(text)
			}
		}
	}
	return ""
}
