package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/farhan1515/GYM-BOT/internal/metrics"
	"github.com/farhan1515/GYM-BOT/internal/models"
)

// ErrLeadStore marks a failed profile insert, the only step whose failure
// aborts the orchestration after validation.
var ErrLeadStore = errors.New("failed to save user data")

type leadStore interface {
	Create(ctx context.Context, lead *models.Lead) error
	MarkWhatsAppSent(ctx context.Context, id uuid.UUID) error
}

type planStore interface {
	Create(ctx context.Context, plan *models.DietPlan) error
	MarkDelivered(ctx context.Context, leadID uuid.UUID) error
}

type planGenerator interface {
	Generate(ctx context.Context, sub LeadSubmission) (string, error)
}

type planDeliverer interface {
	Send(ctx context.Context, to, message string) (*DeliveryResult, error)
}

// leadSink receives a best-effort copy of each lead (the spreadsheet
// append). May be nil when unconfigured.
type leadSink interface {
	AppendLead(ctx context.Context, lead *models.Lead, planContent string) error
}

type LeadService struct {
	leadRepo  leadStore
	planRepo  planStore
	generator planGenerator
	notifier  planDeliverer
	sink      leadSink
}

func NewLeadService(
	leadRepo leadStore,
	planRepo planStore,
	generator planGenerator,
	notifier planDeliverer,
	sink leadSink,
) *LeadService {
	return &LeadService{
		leadRepo:  leadRepo,
		planRepo:  planRepo,
		generator: generator,
		notifier:  notifier,
		sink:      sink,
	}
}

type GenerateResult struct {
	LeadID   uuid.UUID
	DietPlan string
}

// GeneratePlan runs the funnel's one orchestration sequence: persist the
// lead, generate the plan, persist the plan, deliver it. Every step after
// the lead insert degrades gracefully — a stored lead with no plan, an
// unstored plan, or an undelivered plan are all accepted terminal states.
func (s *LeadService) GeneratePlan(ctx context.Context, sub LeadSubmission) (*GenerateResult, error) {
	lead := &models.Lead{
		Name:                sub.Name,
		Age:                 sub.Age,
		Weight:              sub.Weight,
		Height:              sub.Height,
		Injuries:            sub.Injuries,
		FitnessLevel:        sub.FitnessLevel,
		FitnessGoal:         sub.FitnessGoal,
		WorkoutDays:         sub.WorkoutDays,
		DietaryRestrictions: sub.DietaryRestrictions,
		PhoneNumber:         sub.PhoneNumber,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		log.Printf("Error inserting lead: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrLeadStore, err)
	}
	metrics.IncLeadCreated()

	planText, err := s.generator.Generate(ctx, sub)
	if err != nil {
		// The lead row stays behind as a partial lead.
		if errors.Is(err, ErrGeneratorNotConfigured) {
			metrics.IncPlanFailure("configuration")
		} else {
			metrics.IncPlanFailure("provider")
		}
		log.Printf("Plan generation failed for lead %s: %v", lead.ID, err)
		return nil, err
	}
	metrics.IncPlanGenerated()

	plan := &models.DietPlan{LeadID: lead.ID, PlanContent: planText}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		// The generated plan is still returned to the caller.
		log.Printf("Error saving diet plan for lead %s: %v", lead.ID, err)
	}

	if s.sink != nil {
		if err := s.sink.AppendLead(ctx, lead, planText); err != nil {
			log.Printf("Sheet append failed for lead %s: %v", lead.ID, err)
		}
	}

	s.deliverPlan(ctx, lead, planText)

	return &GenerateResult{LeadID: lead.ID, DietPlan: planText}, nil
}

// deliverPlan is the best-effort boundary around the notifier: nothing in
// here may alter the orchestration's return path.
func (s *LeadService) deliverPlan(ctx context.Context, lead *models.Lead, planText string) {
	message := fmt.Sprintf(
		"Hi %s! 🎉 Here's your personalized diet plan:\n\n%s\n\nFor more fitness tips and exclusive gym offers, stay tuned! Our team will contact you soon.",
		lead.Name, planText,
	)

	result, err := s.notifier.Send(ctx, lead.PhoneNumber, message)
	if err != nil {
		metrics.IncDelivery("failed")
		log.Printf("WhatsApp sending failed for lead %s: %v", lead.ID, err)
		return
	}
	if result.Simulated {
		metrics.IncDelivery("simulated")
	} else {
		metrics.IncDelivery("sent")
	}

	if err := s.leadRepo.MarkWhatsAppSent(ctx, lead.ID); err != nil {
		log.Printf("Error marking lead %s as sent: %v", lead.ID, err)
		return
	}
	if err := s.planRepo.MarkDelivered(ctx, lead.ID); err != nil {
		log.Printf("Error stamping delivery for lead %s: %v", lead.ID, err)
	}
}
