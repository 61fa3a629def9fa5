package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/farhan1515/GYM-BOT/internal/models"
)

func buildLead(name, phone, goal string, sent bool, createdAt time.Time) models.Lead {
	return models.Lead{
		Name:         name,
		Age:          30,
		Weight:       70,
		Height:       175,
		FitnessLevel: "Intermediate",
		FitnessGoal:  goal,
		WorkoutDays:  3,
		PhoneNumber:  phone,
		WhatsAppSent: sent,
		CreatedAt:    createdAt,
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	if stats.TotalLeads != 0 || stats.ConversionRate != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

func TestComputeStatsConversionRate(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	yesterday := now.Add(-24 * time.Hour)
	leads := []models.Lead{
		buildLead("A", "+911", "Weight Loss", true, now),
		buildLead("B", "+912", "Strength", true, yesterday),
		buildLead("C", "+913", "Maintenance", true, yesterday),
		buildLead("D", "+914", "Muscle Gain", false, now),
	}

	stats := ComputeStats(leads, now)
	if stats.TotalLeads != 4 {
		t.Fatalf("expected 4 total, got %d", stats.TotalLeads)
	}
	if stats.TodayLeads != 2 {
		t.Fatalf("expected 2 today, got %d", stats.TodayLeads)
	}
	if stats.WhatsAppSent != 3 {
		t.Fatalf("expected 3 sent, got %d", stats.WhatsAppSent)
	}
	if stats.ConversionRate != 75 {
		t.Fatalf("expected conversion 75, got %d", stats.ConversionRate)
	}
}

func TestFilterLeadsMatchesAnyOfThreeFields(t *testing.T) {
	leads := []models.Lead{
		buildLead("Priya", "+919876543210", "Weight Loss", false, time.Now()),
		buildLead("Arjun", "+14155550100", "Strength", false, time.Now()),
		buildLead("Maya", "+442071234567", "Muscle Gain", false, time.Now()),
	}

	if got := FilterLeads(leads, "priya"); len(got) != 1 || got[0].Name != "Priya" {
		t.Fatalf("name filter failed: %v", got)
	}
	if got := FilterLeads(leads, "41555"); len(got) != 1 || got[0].Name != "Arjun" {
		t.Fatalf("phone filter failed: %v", got)
	}
	if got := FilterLeads(leads, "muscle"); len(got) != 1 || got[0].Name != "Maya" {
		t.Fatalf("goal filter failed: %v", got)
	}
	if got := FilterLeads(leads, ""); len(got) != 3 {
		t.Fatalf("empty term must keep all leads, got %d", len(got))
	}
	if got := FilterLeads(leads, "nomatch"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 10, 9, 30, 0, 0, time.Local)
	leads := []models.Lead{
		buildLead("Priya", "+919876543210", "Weight Loss", true, created),
		{Name: "Partial", CreatedAt: created},
	}

	content := ExportCSV(leads)

	reader := csv.NewReader(bytes.NewReader(content))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parse exported CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{
		"Name", "Age", "Weight (kg)", "Height (cm)", "Fitness Level",
		"Fitness Goal", "Workout Days", "Phone Number", "WhatsApp Sent", "Created At",
	}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Fatalf("header column %d: expected %q, got %q", i, col, rows[0][i])
		}
	}

	first := rows[1]
	if first[0] != "Priya" || first[1] != "30" || first[8] != "Yes" || first[9] != "2025-06-10" {
		t.Fatalf("unexpected first row: %v", first)
	}

	partial := rows[2]
	if partial[0] != "Partial" || partial[1] != "" || partial[2] != "" || partial[8] != "No" {
		t.Fatalf("missing values must render empty: %v", partial)
	}
}

func TestExportCSVQuotesEveryField(t *testing.T) {
	content := ExportCSV(nil)
	line := string(bytes.Split(content, []byte("\n"))[0])
	if !bytes.HasPrefix([]byte(line), []byte(`"Name","Age"`)) {
		t.Fatalf("fields must be quoted: %q", line)
	}
}

func TestExportXLSXMatchesCSVColumns(t *testing.T) {
	created := time.Date(2025, 6, 10, 9, 30, 0, 0, time.Local)
	leads := []models.Lead{buildLead("Priya", "+919876543210", "Weight Loss", false, created)}

	content, err := ExportXLSX(leads)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("read workbook rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][9] != "Created At" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Priya" || rows[1][8] != "No" {
		t.Fatalf("unexpected data row: %v", rows[1])
	}
}
