package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/models"
	"github.com/gemi-dot/barangay-ims/internal/repository"
)

// dueSoonWindowDays is how far ahead a pregnancy's expected due date may be
// for the record to be flagged "due soon".
const dueSoonWindowDays = 30

// SeniorCitizensReport is the senior citizens case-worker view: active
// senior-flagged residents alongside active senior citizen case reports.
//
// NeedingAssessment is a heuristic, not a join: case reports may reference
// residents no longer flagged senior, so it is the flagged count minus the
// report count, floored at zero.
type SeniorCitizensReport struct {
	SeniorCitizens []models.Resident            `json:"seniorCitizens"`
	SeniorReports  []models.SeniorCitizenReport `json:"seniorReports"`

	TotalSeniors       int `json:"totalSeniors"`
	SeniorsWithReports int `json:"seniorsWithReports"`
	NeedingAssessment  int `json:"seniorsNeedingAssessment"`
}

// BusinessesReport is the sari-sari store / carenderia view with the type
// breakdown and compliance counts.
type BusinessesReport struct {
	Businesses []models.SariSariStoreReport `json:"businesses"`

	TotalBusinesses     int `json:"totalBusinesses"`
	SariSariCount       int `json:"sariSariCount"`
	CarenderiaCount     int `json:"carenderiaCount"`
	BothCount           int `json:"bothCount"`
	SanitationCompliant int `json:"sanitationCompliant"`
	FireSafetyCompliant int `json:"fireSafetyCompliant"`
}

// FourPsReport is the 4Ps beneficiary view with the three independent
// compliance counts.
type FourPsReport struct {
	Beneficiaries []models.FourPsBeneficiaryReport `json:"beneficiaries"`

	TotalBeneficiaries int `json:"totalBeneficiaries"`
	EducationCompliant int `json:"educationCompliant"`
	HealthCompliant    int `json:"healthCompliant"`
	FDSCompliant       int `json:"fdsCompliant"`
}

// PregnancyStatus is a pregnancy report annotated with the transient values
// the pregnancy view renders. DueSoon and Trimester are computed per request
// and never stored.
type PregnancyStatus struct {
	models.PregnancyReport

	DueSoon   bool   `json:"dueSoon"`
	Trimester string `json:"trimester"`
}

// PregnanciesReport is the pregnancy monitoring view over active ongoing
// pregnancies.
type PregnanciesReport struct {
	Pregnancies []PregnancyStatus `json:"pregnancies"`

	TotalPregnancies     int `json:"totalPregnancies"`
	HighRiskPregnancies  int `json:"highRiskPregnancies"`
	FirstTrimesterCount  int `json:"firstTrimesterCount"`
	SecondTrimesterCount int `json:"secondTrimesterCount"`
	ThirdTrimesterCount  int `json:"thirdTrimesterCount"`

	// UpcomingDeliveries holds the pregnancies due within the window, sorted
	// by expected due date ascending.
	UpcomingDeliveries []PregnancyStatus `json:"upcomingDeliveries"`
}

// ReportService computes the case-worker report views. All operations are
// read-only; empty registries produce empty lists and zero counts.
type ReportService interface {
	SeniorCitizens(ctx context.Context) (*SeniorCitizensReport, error)
	Businesses(ctx context.Context) (*BusinessesReport, error)
	FourPs(ctx context.Context) (*FourPsReport, error)
	Pregnancies(ctx context.Context) (*PregnanciesReport, error)
}

type reportService struct {
	residents repository.ResidentRepository
	reports   repository.ReportRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(
	residents repository.ResidentRepository,
	reports repository.ReportRepository,
	log *logger.Logger,
) ReportService {
	return &reportService{
		residents: residents,
		reports:   reports,
		log:       log,
		now:       time.Now,
	}
}

func (s *reportService) SeniorCitizens(ctx context.Context) (*SeniorCitizensReport, error) {
	flagged, err := s.residents.ListSeniorFlagged(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list senior-flagged residents: %w", err)
	}

	reports, err := s.reports.ListActiveSeniorReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list senior reports: %w", err)
	}

	needing := len(flagged) - len(reports)
	if needing < 0 {
		needing = 0
	}

	s.log.Info("Senior citizens report computed", map[string]interface{}{
		"flagged":            len(flagged),
		"with_reports":       len(reports),
		"needing_assessment": needing,
	})

	return &SeniorCitizensReport{
		SeniorCitizens:     flagged,
		SeniorReports:      reports,
		TotalSeniors:       len(flagged),
		SeniorsWithReports: len(reports),
		NeedingAssessment:  needing,
	}, nil
}

func (s *reportService) Businesses(ctx context.Context) (*BusinessesReport, error) {
	businesses, err := s.reports.ListActiveBusinesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}

	report := &BusinessesReport{
		Businesses:      businesses,
		TotalBusinesses: len(businesses),
	}

	for i := range businesses {
		b := &businesses[i]
		switch b.BusinessType {
		case models.BusinessSariSari:
			report.SariSariCount++
		case models.BusinessCarenderia:
			report.CarenderiaCount++
		case models.BusinessBoth:
			report.BothCount++
		}
		if b.HasProperSanitation {
			report.SanitationCompliant++
		}
		if b.HasFireSafetyMeasures {
			report.FireSafetyCompliant++
		}
	}

	s.log.Info("Businesses report computed", map[string]interface{}{
		"total": report.TotalBusinesses,
	})

	return report, nil
}

func (s *reportService) FourPs(ctx context.Context) (*FourPsReport, error) {
	beneficiaries, err := s.reports.ListActiveFourPs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list 4Ps beneficiaries: %w", err)
	}

	report := &FourPsReport{
		Beneficiaries:      beneficiaries,
		TotalBeneficiaries: len(beneficiaries),
	}

	for i := range beneficiaries {
		b := &beneficiaries[i]
		if b.EducationCompliance {
			report.EducationCompliant++
		}
		if b.HealthCompliance {
			report.HealthCompliant++
		}
		if b.FamilyDevelopmentSession {
			report.FDSCompliant++
		}
	}

	s.log.Info("4Ps report computed", map[string]interface{}{
		"total": report.TotalBeneficiaries,
	})

	return report, nil
}

func (s *reportService) Pregnancies(ctx context.Context) (*PregnanciesReport, error) {
	pregnancies, err := s.reports.ListOngoingPregnancies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pregnancies: %w", err)
	}

	today := s.now()
	dueCutoff := today.AddDate(0, 0, dueSoonWindowDays)

	report := &PregnanciesReport{
		Pregnancies:      make([]PregnancyStatus, 0, len(pregnancies)),
		TotalPregnancies: len(pregnancies),
	}

	for _, p := range pregnancies {
		status := PregnancyStatus{
			PregnancyReport: p,
			DueSoon:         !p.ExpectedDueDate.After(dueCutoff),
			Trimester:       p.Trimester(),
		}
		report.Pregnancies = append(report.Pregnancies, status)

		if p.HighRiskPregnancy {
			report.HighRiskPregnancies++
		}

		// Records with unknown gestation weeks fall outside every bucket.
		switch status.Trimester {
		case models.TrimesterFirst:
			report.FirstTrimesterCount++
		case models.TrimesterSecond:
			report.SecondTrimesterCount++
		case models.TrimesterThird:
			report.ThirdTrimesterCount++
		}

		if status.DueSoon {
			report.UpcomingDeliveries = append(report.UpcomingDeliveries, status)
		}
	}

	sort.SliceStable(report.UpcomingDeliveries, func(i, j int) bool {
		return report.UpcomingDeliveries[i].ExpectedDueDate.Before(
			report.UpcomingDeliveries[j].ExpectedDueDate)
	})

	s.log.Info("Pregnancy report computed", map[string]interface{}{
		"total":     report.TotalPregnancies,
		"high_risk": report.HighRiskPregnancies,
		"due_soon":  len(report.UpcomingDeliveries),
	})

	return report, nil
}
