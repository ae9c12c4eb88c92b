package services

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"

	resp "roadtrip/internal/models/response_models"
)

// OpenAIGenerator mirrors GeminiGenerator over the OpenAI chat API, with the
// same sample-itinerary fallback.
type OpenAIGenerator struct {
	client   *openai.Client
	model    string
	fallback *SampleGenerator
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		client:   openai.NewClient(apiKey),
		model:    model,
		fallback: NewSampleGenerator(),
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, origin, destination, vacationWants string) (*resp.TripResult, error) {
	res, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a road trip planner. Respond with JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: itineraryPrompt(origin, destination, vacationWants),
			},
		},
	})
	if err != nil || len(res.Choices) == 0 {
		log.Printf("OpenAI API error, falling back to sample itinerary: %v", err)
		return g.fallback.Generate(ctx, origin, destination, vacationWants)
	}

	result, err := parseGeneratedItinerary([]byte(res.Choices[0].Message.Content), origin, destination)
	if err != nil {
		log.Printf("OpenAI itinerary unusable, falling back to sample: %v", err)
		return g.fallback.Generate(ctx, origin, destination, vacationWants)
	}
	return result, nil
}
