package services

import (
	"fmt"
	"strconv"
	"strings"
)

// LeadSubmission is a completed questionnaire ready for orchestration.
type LeadSubmission struct {
	Name                string
	Age                 int
	Weight              float64
	Height              int
	Injuries            string
	FitnessLevel        string
	FitnessGoal         string
	WorkoutDays         int
	DietaryRestrictions string
	PhoneNumber         string
}

// requiredFields fixes the order in which missing fields are reported.
// Injuries and dietary restrictions are optional and default to "None".
var requiredFields = []string{
	"name", "age", "weight", "height",
	"fitness_level", "fitness_goal", "workout_days", "phone_number",
}

// MissingFieldError names the first required field absent from a payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// SubmissionFromPayload validates and coerces a raw profile payload, as
// decoded from JSON or accumulated by the collector. Numeric fields accept
// both numbers and numeric strings; workout_days arrives as a select answer
// string.
func SubmissionFromPayload(payload map[string]any) (LeadSubmission, error) {
	for _, field := range requiredFields {
		if isMissing(payload[field]) {
			return LeadSubmission{}, &MissingFieldError{Field: field}
		}
	}

	sub := LeadSubmission{
		Name:                asString(payload["name"]),
		Age:                 int(asFloat(payload["age"])),
		Weight:              asFloat(payload["weight"]),
		Height:              int(asFloat(payload["height"])),
		Injuries:            asString(payload["injuries"]),
		FitnessLevel:        asString(payload["fitness_level"]),
		FitnessGoal:         asString(payload["fitness_goal"]),
		WorkoutDays:         int(asFloat(payload["workout_days"])),
		DietaryRestrictions: asString(payload["dietary_restrictions"]),
		PhoneNumber:         asString(payload["phone_number"]),
	}
	if sub.Injuries == "" {
		sub.Injuries = "None"
	}
	if sub.DietaryRestrictions == "" {
		sub.DietaryRestrictions = "None"
	}
	return sub, nil
}

func isMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	default:
		return false
	}
}

func asString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	if value == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

func asFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
