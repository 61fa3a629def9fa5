package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/farhan1515/GYM-BOT/internal/models"
)

type leadLister interface {
	ListAll(ctx context.Context) ([]models.Lead, error)
}

type DashboardService struct {
	leadRepo leadLister
}

func NewDashboardService(leadRepo leadLister) *DashboardService {
	return &DashboardService{leadRepo: leadRepo}
}

type DashboardStats struct {
	TotalLeads     int `json:"total_leads"`
	TodayLeads     int `json:"today_leads"`
	WhatsAppSent   int `json:"whatsapp_sent"`
	ConversionRate int `json:"conversion_rate"`
}

var exportHeaders = []string{
	"Name", "Age", "Weight (kg)", "Height (cm)", "Fitness Level",
	"Fitness Goal", "Workout Days", "Phone Number", "WhatsApp Sent", "Created At",
}

// ListLeads returns all leads newest-first, optionally narrowed by the
// dashboard search term.
func (s *DashboardService) ListLeads(ctx context.Context, search string) ([]models.Lead, error) {
	leads, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterLeads(leads, search), nil
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	leads, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(leads, time.Now())
	return &stats, nil
}

func ComputeStats(leads []models.Lead, now time.Time) DashboardStats {
	today := now.Format("2006-01-02")
	stats := DashboardStats{TotalLeads: len(leads)}
	for _, lead := range leads {
		if lead.CreatedAt.Format("2006-01-02") == today {
			stats.TodayLeads++
		}
		if lead.WhatsAppSent {
			stats.WhatsAppSent++
		}
	}
	if stats.TotalLeads > 0 {
		stats.ConversionRate = int(math.Round(float64(stats.WhatsAppSent) / float64(stats.TotalLeads) * 100))
	}
	return stats
}

// FilterLeads keeps leads where the term matches name or goal
// case-insensitively, or appears verbatim in the phone number.
func FilterLeads(leads []models.Lead, term string) []models.Lead {
	if term == "" {
		return leads
	}
	lowered := strings.ToLower(term)

	filtered := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		switch {
		case strings.Contains(strings.ToLower(lead.Name), lowered),
			strings.Contains(lead.PhoneNumber, term),
			strings.Contains(strings.ToLower(lead.FitnessGoal), lowered):
			filtered = append(filtered, lead)
		}
	}
	return filtered
}

// ExportCSV materializes the filtered leads with every field quoted,
// missing values as empty strings. encoding/csv only quotes when forced,
// so the rows are written by hand.
func ExportCSV(leads []models.Lead) []byte {
	var sb strings.Builder
	writeRow(&sb, exportHeaders)
	for _, lead := range leads {
		writeRow(&sb, exportRow(lead))
	}
	return []byte(sb.String())
}

// ExportXLSX writes the same columns as ExportCSV into a workbook.
func ExportXLSX(leads []models.Lead) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headerRow := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, err
	}

	for i, lead := range leads {
		row := make([]interface{}, 0, len(exportHeaders))
		for _, field := range exportRow(lead) {
			row = append(row, field)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(lead models.Lead) []string {
	sent := "No"
	if lead.WhatsAppSent {
		sent = "Yes"
	}
	created := ""
	if !lead.CreatedAt.IsZero() {
		created = lead.CreatedAt.Format("2006-01-02")
	}
	return []string{
		lead.Name,
		blankIfZeroInt(lead.Age),
		blankIfZeroFloat(lead.Weight),
		blankIfZeroInt(lead.Height),
		lead.FitnessLevel,
		lead.FitnessGoal,
		blankIfZeroInt(lead.WorkoutDays),
		lead.PhoneNumber,
		sent,
		created,
	}
}

func writeRow(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
}

func blankIfZeroInt(v int) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%d", v)
}

func blankIfZeroFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%g", v)
}
