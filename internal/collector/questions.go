package collector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	KindText   = "text"
	KindNumber = "number"
	KindSelect = "select"
)

// Question is one step of the fixed funnel. Validate is nil for steps that
// accept any input.
type Question struct {
	Key         string             `json:"key"`
	Prompt      string             `json:"prompt"`
	Kind        string             `json:"kind"`
	Options     []string           `json:"options,omitempty"`
	Placeholder string             `json:"placeholder,omitempty"`
	Validate    func(string) error `json:"-"`
}

var phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var questions = []Question{
	{
		Key:         "name",
		Prompt:      "Hi! I'm your personal fitness coach. What's your first name?",
		Kind:        KindText,
		Placeholder: "Enter your first name",
	},
	{
		Key:         "age",
		Prompt:      "Nice to meet you! What's your age?",
		Kind:        KindNumber,
		Placeholder: "e.g. 25",
		Validate: func(value string) error {
			num, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || num < 13 || num > 100 {
				return fmt.Errorf("Please enter a valid age between 13 and 100")
			}
			return nil
		},
	},
	{
		Key:         "weight",
		Prompt:      "What's your current weight in kg?",
		Kind:        KindNumber,
		Placeholder: "e.g. 70",
		Validate: func(value string) error {
			num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || num < 30 || num > 300 {
				return fmt.Errorf("Please enter a valid weight between 30-300 kg")
			}
			return nil
		},
	},
	{
		Key:         "height",
		Prompt:      "What's your height in cm?",
		Kind:        KindNumber,
		Placeholder: "e.g. 175",
		Validate: func(value string) error {
			num, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || num < 120 || num > 250 {
				return fmt.Errorf("Please enter a valid height between 120-250 cm")
			}
			return nil
		},
	},
	{
		Key:         "injuries",
		Prompt:      "Do you have any injuries or medical conditions I should know about? (Type 'none' if you don't have any)",
		Kind:        KindText,
		Placeholder: "e.g. none, diabetes, asthma",
	},
	{
		Key:     "fitness_level",
		Prompt:  "What's your current fitness level?",
		Kind:    KindSelect,
		Options: []string{"Beginner", "Intermediate", "Advanced"},
	},
	{
		Key:     "fitness_goal",
		Prompt:  "What's your primary fitness goal?",
		Kind:    KindSelect,
		Options: []string{"Weight Loss", "Muscle Gain", "Maintenance", "Strength"},
	},
	{
		Key:     "workout_days",
		Prompt:  "How many days per week can you commit to working out?",
		Kind:    KindSelect,
		Options: []string{"1", "2", "3", "4", "5", "6", "7"},
	},
	{
		Key:         "dietary_restrictions",
		Prompt:      "Do you have any dietary restrictions or allergies? (Type 'none' if you don't have any)",
		Kind:        KindText,
		Placeholder: "e.g. none, vegetarian, gluten-free",
	},
	{
		Key:         "phone_number",
		Prompt:      "Perfect! What's your WhatsApp number? I'll send your personalized diet plan there! (Include country code, e.g., +91 9876543210)",
		Kind:        KindText,
		Placeholder: "+91 9876543210",
		Validate: func(value string) error {
			stripped := strings.Join(strings.Fields(value), "")
			if !phonePattern.MatchString(stripped) {
				return fmt.Errorf("Please enter a valid WhatsApp number with country code")
			}
			return nil
		},
	},
}

// Questions returns the fixed funnel question list in order.
func Questions() []Question {
	return questions
}
