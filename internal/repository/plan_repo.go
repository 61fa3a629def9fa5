package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/farhan1515/GYM-BOT/internal/models"
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *models.DietPlan) error {
	query := `
		INSERT INTO diet_plans (id, lead_id, plan_content)
		VALUES ($1, $2, $3)
		RETURNING generated_at
	`
	plan.ID = uuid.New()
	return r.db.QueryRow(ctx, query, plan.ID, plan.LeadID, plan.PlanContent).
		Scan(&plan.GeneratedAt)
}

func (r *PlanRepository) GetByLeadID(ctx context.Context, leadID uuid.UUID) (*models.DietPlan, error) {
	query := `
		SELECT id, lead_id, plan_content, generated_at, sent_at
		FROM diet_plans
		WHERE lead_id = $1
	`
	var plan models.DietPlan
	err := r.db.QueryRow(ctx, query, leadID).Scan(
		&plan.ID,
		&plan.LeadID,
		&plan.PlanContent,
		&plan.GeneratedAt,
		&plan.SentAt,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// MarkDelivered stamps sent_at on the plan belonging to the lead. Only
// called after a delivery attempt reported success.
func (r *PlanRepository) MarkDelivered(ctx context.Context, leadID uuid.UUID) error {
	query := `UPDATE diet_plans SET sent_at = NOW() WHERE lead_id = $1`
	_, err := r.db.Exec(ctx, query, leadID)
	return err
}
