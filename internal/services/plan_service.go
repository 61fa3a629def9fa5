package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrGeneratorNotConfigured is returned when the Gemini API key is absent or
// still one of the known placeholder values. Distinct from provider failures
// so callers can surface setup guidance.
var ErrGeneratorNotConfigured = errors.New("Gemini API key is not configured. Please add your API key to the .env file.")

var placeholderKeys = map[string]struct{}{
	"":                         {},
	"dummy-key-for-build":      {},
	"your_gemini_api_key_here": {},
}

type PlanService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewPlanService builds the generator. A missing or placeholder key is not a
// construction error: the service boots and every Generate call reports
// ErrGeneratorNotConfigured instead.
func NewPlanService(apiKey string) (*PlanService, error) {
	if _, placeholder := placeholderKeys[strings.TrimSpace(apiKey)]; placeholder {
		return &PlanService{}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &PlanService{client: client, model: model}, nil
}

func (s *PlanService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Generate produces the diet plan text for a submitted profile. One attempt,
// no retry. The returned text is opaque to the caller.
func (s *PlanService) Generate(ctx context.Context, sub LeadSubmission) (string, error) {
	if s.model == nil {
		return "", ErrGeneratorNotConfigured
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(dietPrompt(sub)))
	if err != nil {
		return "", fmt.Errorf("failed to generate diet plan: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	plan := strings.TrimSpace(sb.String())
	if plan == "" {
		return "", errors.New("no content generated")
	}
	return plan, nil
}

func dietPrompt(sub LeadSubmission) string {
	restrictions := sub.DietaryRestrictions
	if restrictions == "" {
		restrictions = "None"
	}
	injuries := sub.Injuries
	if injuries == "" {
		injuries = "None"
	}

	return fmt.Sprintf(`You are a professional nutritionist and fitness expert. Create a comprehensive, personalized diet plan for the following client:

**Client Information:**
- Name: %s
- Age: %d years
- Weight: %g kg
- Height: %d cm
- Fitness Level: %s
- Primary Goal: %s
- Workout Days per Week: %d
- Dietary Restrictions: %s
- Injuries/Medical Conditions: %s

**Please provide:**

1. **Daily Caloric Needs**: Calculate BMR and total daily energy expenditure
2. **Macronutrient Breakdown**: Protein, carbs, and fats in grams and percentages
3. **7-Day Meal Plan**: Detailed meals for breakfast, lunch, dinner, and 2 snacks
4. **Portion Sizes**: Specific quantities for each food item
5. **Meal Timing**: When to eat relative to workouts
6. **Hydration Guidelines**: Daily water intake recommendations
7. **Supplement Suggestions**: If applicable (be conservative)
8. **Shopping List**: Organized by food categories
9. **Meal Prep Tips**: How to prepare meals efficiently
10. **Important Notes**: Any special considerations based on their profile

Format the response in a clear, easy-to-follow structure with proper headings and bullet points. Make it practical and actionable.`,
		sub.Name, sub.Age, sub.Weight, sub.Height, sub.FitnessLevel,
		sub.FitnessGoal, sub.WorkoutDays, restrictions, injuries)
}
