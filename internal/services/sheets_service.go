package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/farhan1515/GYM-BOT/internal/models"
)

// SheetsService appends each lead to a Google Sheet as a secondary sink.
// Always best-effort: the orchestration logs and ignores its failures.
type SheetsService struct {
	service *sheets.Service
	sheetID string
}

func NewSheetsService(credentialsFile, sheetID string) (*SheetsService, error) {
	credentialsJSON, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %v", err)
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %v", err)
	}

	srv, err := sheets.NewService(context.Background(), option.WithHTTPClient(config.Client(context.Background())))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %v", err)
	}

	return &SheetsService{service: srv, sheetID: sheetID}, nil
}

func (s *SheetsService) AppendLead(ctx context.Context, lead *models.Lead, planContent string) error {
	createdAt := lead.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	row := []interface{}{
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
		planContent,
		createdAt.Format(time.RFC3339),
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.sheetID, "Sheet1!A1", &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("unable to append lead row: %v", err)
	}
	return nil
}
