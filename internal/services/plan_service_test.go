package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGenerateFailsWithPlaceholderKey(t *testing.T) {
	for _, key := range []string{"", "dummy-key-for-build", "your_gemini_api_key_here"} {
		service, err := NewPlanService(key)
		if err != nil {
			t.Fatalf("key %q: construction must not fail: %v", key, err)
		}
		_, err = service.Generate(context.Background(), validSubmission())
		if !errors.Is(err, ErrGeneratorNotConfigured) {
			t.Fatalf("key %q: expected ErrGeneratorNotConfigured, got %v", key, err)
		}
	}
}

func TestDietPromptEmbedsProfile(t *testing.T) {
	prompt := dietPrompt(validSubmission())

	for _, want := range []string{
		"Name: Priya",
		"Age: 27 years",
		"Weight: 64.5 kg",
		"Height: 168 cm",
		"Fitness Level: Beginner",
		"Primary Goal: Weight Loss",
		"Workout Days per Week: 4",
		"Dietary Restrictions: vegetarian",
		"Injuries/Medical Conditions: None",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestDietPromptDefaultsEmptyOptionalFields(t *testing.T) {
	sub := validSubmission()
	sub.DietaryRestrictions = ""
	sub.Injuries = ""

	prompt := dietPrompt(sub)
	if !strings.Contains(prompt, "Dietary Restrictions: None") {
		t.Fatalf("empty restrictions must render as None")
	}
	if !strings.Contains(prompt, "Injuries/Medical Conditions: None") {
		t.Fatalf("empty injuries must render as None")
	}
}
