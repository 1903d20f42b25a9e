package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/repository"
)

// ExportService renders registry views as Excel workbooks for offline use by
// barangay staff. Exports honor the same filters as the JSON views.
type ExportService interface {
	// ResidentDirectoryXLSX exports the filtered resident directory.
	ResidentDirectoryXLSX(ctx context.Context, filter repository.ResidentFilter) ([]byte, error)

	// VotersByPrecinctXLSX exports the precinct-ordered voter list.
	VotersByPrecinctXLSX(ctx context.Context) ([]byte, error)
}

type exportService struct {
	residents repository.ResidentRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewExportService creates a new ExportService.
func NewExportService(residents repository.ResidentRepository, log *logger.Logger) ExportService {
	return &exportService{
		residents: residents,
		log:       log,
		now:       time.Now,
	}
}

func (s *exportService) ResidentDirectoryXLSX(ctx context.Context, filter repository.ResidentFilter) ([]byte, error) {
	residents, err := s.residents.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents for export: %w", err)
	}

	today := s.now()
	headers := []string{"Full Name", "Age", "Gender", "Civil Status", "Contact Number", "Zone", "Address"}
	rows := make([][]any, 0, len(residents))
	for i := range residents {
		r := &residents[i]
		rows = append(rows, []any{
			r.FullName(),
			r.Age(today),
			r.Gender,
			r.CivilStatus,
			r.ContactNumber,
			r.Zone,
			r.CompleteAddress(),
		})
	}

	data, err := buildWorkbook("Residents", headers, rows)
	if err != nil {
		return nil, err
	}

	s.log.Info("Resident directory exported", map[string]interface{}{
		"rows": len(rows),
	})

	return data, nil
}

func (s *exportService) VotersByPrecinctXLSX(ctx context.Context) ([]byte, error) {
	voters, err := s.residents.ListVoters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters for export: %w", err)
	}

	headers := []string{"Precinct", "Voter ID", "Full Name", "Contact Number", "Zone"}
	rows := make([][]any, 0, len(voters))
	for i := range voters {
		v := &voters[i]
		rows = append(rows, []any{
			v.PrecinctNumber,
			v.VotersID,
			v.FullName(),
			v.ContactNumber,
			v.Zone,
		})
	}

	data, err := buildWorkbook("Voters by Precinct", headers, rows)
	if err != nil {
		return nil, err
	}

	s.log.Info("Voters-by-precinct list exported", map[string]interface{}{
		"rows": len(rows),
	})

	return data, nil
}

// buildWorkbook writes a single-sheet workbook with a styled header row and
// returns the serialized bytes.
func buildWorkbook(sheetName string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute row cell: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
