package services

import (
	"errors"
	"testing"
)

func fullPayload() map[string]any {
	return map[string]any{
		"name":                 "Priya",
		"age":                  27.0,
		"weight":               64.5,
		"height":               168.0,
		"injuries":             "none",
		"fitness_level":        "Beginner",
		"fitness_goal":         "Weight Loss",
		"workout_days":         "4",
		"dietary_restrictions": "vegetarian",
		"phone_number":         "+919876543210",
	}
}

func TestSubmissionReportsFirstMissingFieldInOrder(t *testing.T) {
	_, err := SubmissionFromPayload(map[string]any{})
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "name" {
		t.Fatalf("expected first field to be name, got %s", missing.Field)
	}
	if got := missing.Error(); got != "Missing required field: name" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestSubmissionReportsEachMissingField(t *testing.T) {
	fields := []string{
		"name", "age", "weight", "height",
		"fitness_level", "fitness_goal", "workout_days", "phone_number",
	}
	for _, field := range fields {
		payload := fullPayload()
		delete(payload, field)

		_, err := SubmissionFromPayload(payload)
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("field %s: expected MissingFieldError, got %v", field, err)
		}
		if missing.Field != field {
			t.Fatalf("expected missing field %s, got %s", field, missing.Field)
		}
	}
}

func TestSubmissionCoercesNumericStrings(t *testing.T) {
	payload := fullPayload()
	payload["age"] = "27"
	payload["weight"] = "64.5"

	sub, err := SubmissionFromPayload(payload)
	if err != nil {
		t.Fatalf("SubmissionFromPayload: %v", err)
	}
	if sub.Age != 27 || sub.Weight != 64.5 || sub.Height != 168 || sub.WorkoutDays != 4 {
		t.Fatalf("unexpected coercion: %+v", sub)
	}
}

func TestSubmissionDefaultsOptionalFields(t *testing.T) {
	payload := fullPayload()
	delete(payload, "injuries")
	delete(payload, "dietary_restrictions")

	sub, err := SubmissionFromPayload(payload)
	if err != nil {
		t.Fatalf("SubmissionFromPayload: %v", err)
	}
	if sub.Injuries != "None" {
		t.Fatalf("expected injuries default None, got %q", sub.Injuries)
	}
	if sub.DietaryRestrictions != "None" {
		t.Fatalf("expected restrictions default None, got %q", sub.DietaryRestrictions)
	}
}

func TestSubmissionTreatsZeroAgeAsMissing(t *testing.T) {
	payload := fullPayload()
	payload["age"] = 0.0

	_, err := SubmissionFromPayload(payload)
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "age" {
		t.Fatalf("expected missing age, got %v", err)
	}
}
