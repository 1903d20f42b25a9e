package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gemi-dot/barangay-ims/internal/database"
	"github.com/gemi-dot/barangay-ims/internal/models"
)

// ReportRepository defines data access over the five case-report tables.
// Every list method eager-fetches the owning resident's summary columns in the
// same query so report views never do per-row lookups. Removal of a resident
// cascades to its reports at the schema level, so joins never dangle.
type ReportRepository interface {
	// CountActiveSeniorReports counts active senior citizen reports.
	CountActiveSeniorReports(ctx context.Context) (int, error)

	// ListActiveSeniorReports returns active senior citizen reports with
	// their resident summaries.
	ListActiveSeniorReports(ctx context.Context) ([]models.SeniorCitizenReport, error)

	// CountActiveBusinesses counts active sari-sari store reports.
	CountActiveBusinesses(ctx context.Context) (int, error)

	// ListActiveBusinesses returns active sari-sari store reports with their
	// owner summaries.
	ListActiveBusinesses(ctx context.Context) ([]models.SariSariStoreReport, error)

	// CountActiveFourPs counts active 4Ps beneficiary reports.
	CountActiveFourPs(ctx context.Context) (int, error)

	// ListActiveFourPs returns active 4Ps beneficiary reports with their
	// beneficiary summaries.
	ListActiveFourPs(ctx context.Context) ([]models.FourPsBeneficiaryReport, error)

	// CountOngoingPregnancies counts active pregnancy reports with outcome
	// "ongoing".
	CountOngoingPregnancies(ctx context.Context) (int, error)

	// ListOngoingPregnancies returns active ongoing pregnancy reports with
	// their resident summaries, newest first.
	ListOngoingPregnancies(ctx context.Context) ([]models.PregnancyReport, error)

	// CountHealthReportsSince counts health reports with report_date on or
	// after the given date.
	CountHealthReportsSince(ctx context.Context, since time.Time) (int, error)
}

type reportRepository struct {
	db *database.Database
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *database.Database) ReportRepository {
	return &reportRepository{db: db}
}

// summaryColumns are the resident columns joined into every report list, in
// scanSummary order. The alias "res" is fixed across the join queries.
const summaryColumns = `
	res.id, res.first_name, res.middle_name, res.last_name, res.suffix,
	res.date_of_birth, res.gender, res.contact_number, res.zone`

// scanSummary scans the summaryColumns portion of a joined row.
func scanSummaryInto(s *models.ResidentSummary) []any {
	return []any{
		&s.ID, &s.FirstName, &s.MiddleName, &s.LastName, &s.Suffix,
		&s.DateOfBirth, &s.Gender, &s.ContactNumber, &s.Zone,
	}
}

func (r *reportRepository) countWhere(ctx context.Context, table, where string, args ...any) (int, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, table, where)
	if err := r.db.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

func (r *reportRepository) CountActiveSeniorReports(ctx context.Context) (int, error) {
	return r.countWhere(ctx, "senior_citizen_reports", "is_active = TRUE")
}

func (r *reportRepository) ListActiveSeniorReports(ctx context.Context) ([]models.SeniorCitizenReport, error) {
	query := `
		SELECT
			s.id, s.resident_id,
			s.pension_source, s.pension_amount, s.health_conditions, s.medications,
			s.mobility_status, s.caregiver_name, s.caregiver_contact,
			s.emergency_contact, s.emergency_contact_number,
			s.last_checkup_date, s.blood_pressure, s.blood_sugar,
			s.is_active, s.created_at, s.updated_at,` + summaryColumns + `
		FROM senior_citizen_reports s
		JOIN residents res ON res.id = s.resident_id
		WHERE s.is_active = TRUE
		ORDER BY s.id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query senior citizen reports: %w", err)
	}
	defer rows.Close()

	reports := []models.SeniorCitizenReport{}
	for rows.Next() {
		var rep models.SeniorCitizenReport
		dest := []any{
			&rep.ID, &rep.ResidentID,
			&rep.PensionSource, &rep.PensionAmount, &rep.HealthConditions, &rep.Medications,
			&rep.MobilityStatus, &rep.CaregiverName, &rep.CaregiverContact,
			&rep.EmergencyContact, &rep.EmergencyNumber,
			&rep.LastCheckupDate, &rep.BloodPressure, &rep.BloodSugar,
			&rep.IsActive, &rep.CreatedAt, &rep.UpdatedAt,
		}
		dest = append(dest, scanSummaryInto(&rep.Resident)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan senior citizen report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating senior citizen report rows: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) CountActiveBusinesses(ctx context.Context) (int, error) {
	return r.countWhere(ctx, "sari_sari_store_reports", "is_active = TRUE")
}

func (r *reportRepository) ListActiveBusinesses(ctx context.Context) ([]models.SariSariStoreReport, error) {
	query := `
		SELECT
			b.id, b.owner_id,
			b.business_name, b.business_type, b.business_address,
			b.business_permit_number, b.dti_registration, b.bir_registration, b.food_handler_permit,
			b.operating_hours, b.number_of_employees, b.average_daily_sales,
			b.has_proper_sanitation, b.has_fire_safety_measures,
			b.last_inspection_date, b.inspection_remarks,
			b.is_active, b.date_started, b.created_at, b.updated_at,` + summaryColumns + `
		FROM sari_sari_store_reports b
		JOIN residents res ON res.id = b.owner_id
		WHERE b.is_active = TRUE
		ORDER BY b.id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query business reports: %w", err)
	}
	defer rows.Close()

	reports := []models.SariSariStoreReport{}
	for rows.Next() {
		var rep models.SariSariStoreReport
		dest := []any{
			&rep.ID, &rep.OwnerID,
			&rep.BusinessName, &rep.BusinessType, &rep.BusinessAddress,
			&rep.BusinessPermitNumber, &rep.DTIRegistration, &rep.BIRRegistration, &rep.FoodHandlerPermit,
			&rep.OperatingHours, &rep.NumberOfEmployees, &rep.AverageDailySales,
			&rep.HasProperSanitation, &rep.HasFireSafetyMeasures,
			&rep.LastInspectionDate, &rep.InspectionRemarks,
			&rep.IsActive, &rep.DateStarted, &rep.CreatedAt, &rep.UpdatedAt,
		}
		dest = append(dest, scanSummaryInto(&rep.Owner)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan business report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business report rows: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) CountActiveFourPs(ctx context.Context) (int, error) {
	return r.countWhere(ctx, "four_ps_beneficiary_reports", "is_active = TRUE")
}

func (r *reportRepository) ListActiveFourPs(ctx context.Context) ([]models.FourPsBeneficiaryReport, error) {
	query := `
		SELECT
			f.id, f.beneficiary_id,
			f.household_id, f.set_of_year,
			f.education_compliance, f.health_compliance, f.family_development_sessions,
			f.number_of_children, f.pregnant_women_count,
			f.monthly_grant_amount, f.last_payout_date,
			f.is_active, f.exit_date, f.exit_reason, f.remarks,
			f.created_at, f.updated_at,` + summaryColumns + `
		FROM four_ps_beneficiary_reports f
		JOIN residents res ON res.id = f.beneficiary_id
		WHERE f.is_active = TRUE
		ORDER BY f.id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query 4Ps reports: %w", err)
	}
	defer rows.Close()

	reports := []models.FourPsBeneficiaryReport{}
	for rows.Next() {
		var rep models.FourPsBeneficiaryReport
		dest := []any{
			&rep.ID, &rep.BeneficiaryID,
			&rep.HouseholdID, &rep.SetOfYear,
			&rep.EducationCompliance, &rep.HealthCompliance, &rep.FamilyDevelopmentSession,
			&rep.NumberOfChildren, &rep.PregnantWomenCount,
			&rep.MonthlyGrantAmount, &rep.LastPayoutDate,
			&rep.IsActive, &rep.ExitDate, &rep.ExitReason, &rep.Remarks,
			&rep.CreatedAt, &rep.UpdatedAt,
		}
		dest = append(dest, scanSummaryInto(&rep.Beneficiary)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan 4Ps report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating 4Ps report rows: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) CountOngoingPregnancies(ctx context.Context) (int, error) {
	return r.countWhere(ctx, "pregnancy_reports",
		"is_active = TRUE AND pregnancy_outcome = $1", models.OutcomeOngoing)
}

func (r *reportRepository) ListOngoingPregnancies(ctx context.Context) ([]models.PregnancyReport, error) {
	query := `
		SELECT
			p.id, p.resident_id, p.pregnancy_number,
			p.last_menstrual_period, p.expected_due_date, p.age_of_gestation_weeks,
			p.pre_pregnancy_weight, p.current_weight, p.height, p.blood_pressure,
			p.high_risk_pregnancy, p.risk_factors, p.complications,
			p.attending_physician, p.health_facility,
			p.number_of_prenatal_visits, p.last_prenatal_visit, p.next_prenatal_visit,
			p.tetanus_toxoid_doses, p.iron_folate_supplements, p.calcium_supplements,
			p.birth_plan_ready, p.delivery_facility, p.birth_attendant,
			p.pregnancy_outcome, p.delivery_date, p.delivery_notes,
			p.is_active, p.created_at, p.updated_at,` + summaryColumns + `
		FROM pregnancy_reports p
		JOIN residents res ON res.id = p.resident_id
		WHERE p.is_active = TRUE AND p.pregnancy_outcome = $1
		ORDER BY p.created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query, models.OutcomeOngoing)
	if err != nil {
		return nil, fmt.Errorf("failed to query pregnancy reports: %w", err)
	}
	defer rows.Close()

	reports := []models.PregnancyReport{}
	for rows.Next() {
		var rep models.PregnancyReport
		dest := []any{
			&rep.ID, &rep.ResidentID, &rep.PregnancyNumber,
			&rep.LastMenstrualPeriod, &rep.ExpectedDueDate, &rep.GestationWeeks,
			&rep.PrePregnancyWeight, &rep.CurrentWeight, &rep.Height, &rep.BloodPressure,
			&rep.HighRiskPregnancy, &rep.RiskFactors, &rep.Complications,
			&rep.AttendingPhysician, &rep.HealthFacility,
			&rep.NumberOfPrenatalVisits, &rep.LastPrenatalVisit, &rep.NextPrenatalVisit,
			&rep.TetanusToxoidDoses, &rep.IronFolateSupplements, &rep.CalciumSupplements,
			&rep.BirthPlanReady, &rep.DeliveryFacility, &rep.BirthAttendant,
			&rep.PregnancyOutcome, &rep.DeliveryDate, &rep.DeliveryNotes,
			&rep.IsActive, &rep.CreatedAt, &rep.UpdatedAt,
		}
		dest = append(dest, scanSummaryInto(&rep.PregnantWoman)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan pregnancy report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pregnancy report rows: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) CountHealthReportsSince(ctx context.Context, since time.Time) (int, error) {
	return r.countWhere(ctx, "health_reports", "report_date >= $1", since)
}
