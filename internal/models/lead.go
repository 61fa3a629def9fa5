package models

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID                  uuid.UUID           `json:"id"`
	Name                string              `json:"name"`
	Age                 int                 `json:"age"`
	Weight              float64             `json:"weight"`
	Height              int                 `json:"height"`
	Injuries            string              `json:"injuries"`
	FitnessLevel        string              `json:"fitness_level"`
	FitnessGoal         string              `json:"fitness_goal"`
	WorkoutDays         int                 `json:"workout_days"`
	DietaryRestrictions string              `json:"dietary_restrictions"`
	PhoneNumber         string              `json:"phone_number"`
	WhatsAppSent        bool                `json:"whatsapp_sent"`
	ConversationLog     []ConversationEntry `json:"conversation_log"`
	CreatedAt           time.Time           `json:"created_at"`
}

// ConversationEntry is stored in the leads.conversation_log column. The
// orchestration never appends to it; the column exists for forward
// compatibility with a persisted chat transcript.
type ConversationEntry struct {
	MessageType string    `json:"message_type"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

type DietPlan struct {
	ID          uuid.UUID  `json:"id"`
	LeadID      uuid.UUID  `json:"lead_id"`
	PlanContent string     `json:"plan_content"`
	GeneratedAt time.Time  `json:"generated_at"`
	SentAt      *time.Time `json:"sent_at"`
}
