package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/farhan1515/GYM-BOT/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type LeadRepository struct {
	db DBTX
}

func NewLeadRepository(db DBTX) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (id, name, age, weight, height, injuries, fitness_level,
						   fitness_goal, workout_days, dietary_restrictions, phone_number,
						   whatsapp_sent, conversation_log)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, $12)
		RETURNING created_at
	`
	lead.ID = uuid.New()
	if lead.ConversationLog == nil {
		lead.ConversationLog = []models.ConversationEntry{}
	}
	return r.db.QueryRow(ctx, query,
		lead.ID,
		lead.Name,
		lead.Age,
		lead.Weight,
		lead.Height,
		lead.Injuries,
		lead.FitnessLevel,
		lead.FitnessGoal,
		lead.WorkoutDays,
		lead.DietaryRestrictions,
		lead.PhoneNumber,
		lead.ConversationLog,
	).Scan(&lead.CreatedAt)
}

func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	query := `
		SELECT id, name, age, weight, height, injuries, fitness_level, fitness_goal,
			   workout_days, dietary_restrictions, phone_number, whatsapp_sent,
			   conversation_log, created_at
		FROM leads
		WHERE id = $1
	`
	var lead models.Lead
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Age,
		&lead.Weight,
		&lead.Height,
		&lead.Injuries,
		&lead.FitnessLevel,
		&lead.FitnessGoal,
		&lead.WorkoutDays,
		&lead.DietaryRestrictions,
		&lead.PhoneNumber,
		&lead.WhatsAppSent,
		&lead.ConversationLog,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) ListAll(ctx context.Context) ([]models.Lead, error) {
	query := `
		SELECT id, name, age, weight, height, injuries, fitness_level, fitness_goal,
			   workout_days, dietary_restrictions, phone_number, whatsapp_sent,
			   conversation_log, created_at
		FROM leads
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var lead models.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Age,
			&lead.Weight,
			&lead.Height,
			&lead.Injuries,
			&lead.FitnessLevel,
			&lead.FitnessGoal,
			&lead.WorkoutDays,
			&lead.DietaryRestrictions,
			&lead.PhoneNumber,
			&lead.WhatsAppSent,
			&lead.ConversationLog,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) MarkWhatsAppSent(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE leads SET whatsapp_sent = TRUE WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
