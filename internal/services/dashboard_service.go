package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/models"
	"github.com/gemi-dot/barangay-ims/internal/repository"
)

// Age band boundaries in years. The banding intentionally uses a flat 365
// days per year when computing birth date cutoffs, matching the registry's
// long-standing dashboard arithmetic; it drifts from calendar age by roughly
// one day per leap year and is not reconciled with Resident.Age.
const (
	adultAgeYears  = 18
	seniorAgeYears = 60
	daysPerYear    = 365
)

// recentHealthReportDays is the trailing window for the "recent health
// reports" dashboard count.
const recentHealthReportDays = 7

// ZoneShare is one zone histogram bucket with its percentage of all active
// residents, rounded to one decimal place.
type ZoneShare struct {
	Zone       string  `json:"zone"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DashboardSummary carries every count and histogram rendered on the main
// dashboard. All counts are informational, read at slightly different moments;
// the dashboard tolerates read skew between them.
type DashboardSummary struct {
	TotalResidents  int `json:"totalResidents"`
	TotalHouseholds int `json:"totalHouseholds"`

	MaleResidents   int `json:"maleResidents"`
	FemaleResidents int `json:"femaleResidents"`

	Children int `json:"children"`
	Adults   int `json:"adults"`
	Seniors  int `json:"seniors"`

	PWDCount            int `json:"pwdCount"`
	SeniorCitizens      int `json:"seniorCitizens"`
	FourPsBeneficiaries int `json:"fourpsBeneficiaries"`
	SoloParents         int `json:"soloParents"`

	SeniorReports       int `json:"seniorReports"`
	ActiveBusinesses    int `json:"activeBusinesses"`
	ActiveFourPs        int `json:"activeFourps"`
	ActivePregnancies   int `json:"activePregnancies"`
	RecentHealthReports int `json:"recentHealthReports"`

	ZoneDistribution        []ZoneShare             `json:"zoneDistribution"`
	CivilStatusDistribution []repository.ValueCount `json:"civilStatusDistribution"`
	EmploymentDistribution  []repository.ValueCount `json:"employmentDistribution"`
}

// DashboardService computes the summary statistics for the main dashboard.
type DashboardService interface {
	// Summary assembles all dashboard counts and histograms. It is read-only
	// and fails as a whole on the first storage error.
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	residents  repository.ResidentRepository
	households repository.HouseholdRepository
	reports    repository.ReportRepository
	log        *logger.Logger
	now        func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	residents repository.ResidentRepository,
	households repository.HouseholdRepository,
	reports repository.ReportRepository,
	log *logger.Logger,
) DashboardService {
	return &dashboardService{
		residents:  residents,
		households: households,
		reports:    reports,
		log:        log,
		now:        time.Now,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	today := s.now()
	summary := &DashboardSummary{}
	var err error

	if summary.TotalResidents, err = s.residents.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to count residents: %w", err)
	}
	if summary.TotalHouseholds, err = s.households.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count households: %w", err)
	}

	if summary.MaleResidents, err = s.residents.CountActiveByGender(ctx, models.GenderMale); err != nil {
		return nil, fmt.Errorf("failed to count male residents: %w", err)
	}
	if summary.FemaleResidents, err = s.residents.CountActiveByGender(ctx, models.GenderFemale); err != nil {
		return nil, fmt.Errorf("failed to count female residents: %w", err)
	}

	// Birth date cutoffs for the age bands, flat 365-day years.
	adultCutoff := today.AddDate(0, 0, -adultAgeYears*daysPerYear)
	seniorCutoff := today.AddDate(0, 0, -seniorAgeYears*daysPerYear)

	if summary.Children, err = s.residents.CountActiveBornAfter(ctx, adultCutoff); err != nil {
		return nil, fmt.Errorf("failed to count children: %w", err)
	}
	if summary.Adults, err = s.residents.CountActiveBornInRange(ctx, seniorCutoff, adultCutoff); err != nil {
		return nil, fmt.Errorf("failed to count adults: %w", err)
	}
	if summary.Seniors, err = s.residents.CountActiveBornOnOrBefore(ctx, seniorCutoff); err != nil {
		return nil, fmt.Errorf("failed to count seniors: %w", err)
	}

	if summary.PWDCount, err = s.residents.CountActiveByCategory(ctx, repository.CategoryPWD); err != nil {
		return nil, fmt.Errorf("failed to count PWD residents: %w", err)
	}
	if summary.SeniorCitizens, err = s.residents.CountActiveByCategory(ctx, repository.CategorySeniorCitizen); err != nil {
		return nil, fmt.Errorf("failed to count senior citizens: %w", err)
	}
	if summary.FourPsBeneficiaries, err = s.residents.CountActiveByCategory(ctx, repository.Category4PsBeneficiary); err != nil {
		return nil, fmt.Errorf("failed to count 4Ps beneficiaries: %w", err)
	}
	if summary.SoloParents, err = s.residents.CountActiveByCategory(ctx, repository.CategorySoloParent); err != nil {
		return nil, fmt.Errorf("failed to count solo parents: %w", err)
	}

	if summary.SeniorReports, err = s.reports.CountActiveSeniorReports(ctx); err != nil {
		return nil, fmt.Errorf("failed to count senior reports: %w", err)
	}
	if summary.ActiveBusinesses, err = s.reports.CountActiveBusinesses(ctx); err != nil {
		return nil, fmt.Errorf("failed to count businesses: %w", err)
	}
	if summary.ActiveFourPs, err = s.reports.CountActiveFourPs(ctx); err != nil {
		return nil, fmt.Errorf("failed to count 4Ps reports: %w", err)
	}
	if summary.ActivePregnancies, err = s.reports.CountOngoingPregnancies(ctx); err != nil {
		return nil, fmt.Errorf("failed to count pregnancies: %w", err)
	}

	weekAgo := today.AddDate(0, 0, -recentHealthReportDays)
	if summary.RecentHealthReports, err = s.reports.CountHealthReportsSince(ctx, weekAgo); err != nil {
		return nil, fmt.Errorf("failed to count recent health reports: %w", err)
	}

	zones, err := s.residents.ZoneDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone distribution: %w", err)
	}
	summary.ZoneDistribution = zoneShares(zones, summary.TotalResidents)

	if summary.CivilStatusDistribution, err = s.residents.CivilStatusDistribution(ctx); err != nil {
		return nil, fmt.Errorf("failed to query civil status distribution: %w", err)
	}
	if summary.EmploymentDistribution, err = s.residents.EmploymentDistribution(ctx); err != nil {
		return nil, fmt.Errorf("failed to query employment distribution: %w", err)
	}

	s.log.Info("Dashboard summary computed", map[string]interface{}{
		"residents":  summary.TotalResidents,
		"households": summary.TotalHouseholds,
		"zones":      len(summary.ZoneDistribution),
	})

	return summary, nil
}

// zoneShares annotates raw zone counts with their percentage of the total,
// rounded to one decimal. A zero total yields zero percentages everywhere.
func zoneShares(zones []repository.ZoneCount, total int) []ZoneShare {
	shares := make([]ZoneShare, 0, len(zones))
	for _, z := range zones {
		var pct float64
		if total > 0 {
			pct = roundOneDecimal(float64(z.Count) * 100 / float64(total))
		}
		shares = append(shares, ZoneShare{
			Zone:       z.Zone,
			Count:      z.Count,
			Percentage: pct,
		})
	}
	return shares
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
