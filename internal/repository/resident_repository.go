package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gemi-dot/barangay-ims/internal/database"
	"github.com/gemi-dot/barangay-ims/internal/models"
)

// SpecialCategory identifies one of the boolean special-category flags on a
// resident record. Using a closed type keeps the flag-to-column mapping
// explicit instead of interpolating caller-supplied column names.
type SpecialCategory string

const (
	CategoryPWD            SpecialCategory = "pwd"
	CategorySeniorCitizen  SpecialCategory = "senior_citizen"
	CategorySoloParent     SpecialCategory = "solo_parent"
	CategoryIndigenous     SpecialCategory = "indigenous"
	Category4PsBeneficiary SpecialCategory = "4ps_beneficiary"
)

// column maps a special category to its residents table column.
func (c SpecialCategory) column() (string, error) {
	switch c {
	case CategoryPWD:
		return "is_pwd", nil
	case CategorySeniorCitizen:
		return "is_senior_citizen", nil
	case CategorySoloParent:
		return "is_solo_parent", nil
	case CategoryIndigenous:
		return "is_indigenous", nil
	case Category4PsBeneficiary:
		return "is_4ps_beneficiary", nil
	default:
		return "", fmt.Errorf("unknown special category %q", string(c))
	}
}

// ResidentFilter holds the optional filters for the resident directory.
// Each field is independently optional; the zero value means "no filter".
// Search is a case-insensitive substring match across first, middle, and last
// name and contact number (OR); Zone and Gender are exact matches (AND).
type ResidentFilter struct {
	Search string
	Zone   string
	Gender string
}

// ZoneCount is one bucket of the zone histogram.
type ZoneCount struct {
	Zone  string `json:"zone"`
	Count int    `json:"count"`
}

// ValueCount is one bucket of a categorical histogram (civil status,
// employment status).
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PrecinctCount is a per-precinct voter total.
type PrecinctCount struct {
	Precinct string `json:"precinct"`
	Count    int    `json:"count"`
}

// ResidentRepository defines data access over the residents table.
// All methods are read-only; empty results are empty slices or zero counts,
// never errors. Errors indicate actual database failures.
type ResidentRepository interface {
	// CountActive returns the number of active residents.
	CountActive(ctx context.Context) (int, error)

	// CountActiveByGender returns the number of active residents with the
	// given gender code.
	CountActiveByGender(ctx context.Context, gender string) (int, error)

	// CountActiveBornAfter counts active residents with date_of_birth
	// strictly after the cutoff.
	CountActiveBornAfter(ctx context.Context, cutoff time.Time) (int, error)

	// CountActiveBornInRange counts active residents with date_of_birth in
	// (after, through], i.e. strictly after the first cutoff and on or before
	// the second.
	CountActiveBornInRange(ctx context.Context, after, through time.Time) (int, error)

	// CountActiveBornOnOrBefore counts active residents with date_of_birth on
	// or before the cutoff.
	CountActiveBornOnOrBefore(ctx context.Context, cutoff time.Time) (int, error)

	// CountActiveByCategory counts active residents with the given
	// special-category flag set.
	CountActiveByCategory(ctx context.Context, category SpecialCategory) (int, error)

	// ZoneDistribution returns active-resident counts grouped by zone,
	// ordered by zone.
	ZoneDistribution(ctx context.Context) ([]ZoneCount, error)

	// CivilStatusDistribution returns active-resident counts grouped by civil
	// status, ordered by status.
	CivilStatusDistribution(ctx context.Context) ([]ValueCount, error)

	// EmploymentDistribution returns active-resident counts grouped by
	// employment status, ordered by status.
	EmploymentDistribution(ctx context.Context) ([]ValueCount, error)

	// ListActive returns active residents matching the filter, ordered by
	// last name then first name.
	ListActive(ctx context.Context, filter ResidentFilter) ([]models.Resident, error)

	// ListSeniorFlagged returns active residents flagged as senior citizens,
	// ordered by last name then first name.
	ListSeniorFlagged(ctx context.Context) ([]models.Resident, error)

	// DistinctActiveZones returns the sorted distinct zones of active
	// residents, for filter dropdown population.
	DistinctActiveZones(ctx context.Context) ([]string, error)

	// ListVoters returns active residents with non-empty voter ID and
	// precinct number, ordered by precinct, last name, first name.
	ListVoters(ctx context.Context) ([]models.Resident, error)

	// PrecinctTotals returns voter counts per precinct, ordered by precinct.
	// Rows follow the same non-empty voter ID and precinct rule as ListVoters.
	PrecinctTotals(ctx context.Context) ([]PrecinctCount, error)
}

// residentRepository is the pgx-backed implementation of ResidentRepository.
type residentRepository struct {
	db *database.Database
}

// NewResidentRepository creates a new ResidentRepository.
func NewResidentRepository(db *database.Database) ResidentRepository {
	return &residentRepository{db: db}
}

// residentColumns lists every residents column in scanResident order.
const residentColumns = `
	id,
	first_name, middle_name, last_name, suffix,
	contact_number, email,
	date_of_birth, place_of_birth, gender, civil_status, citizenship,
	house_number, street, zone, barangay, city_municipality, province, zip_code,
	educational_attainment, employment_status, occupation, monthly_income,
	father_name, mother_name, spouse_name,
	emergency_contact_name, emergency_contact_number, emergency_contact_relationship,
	philhealth_number, sss_gsis_number, tin_number, voters_id, precinct_number,
	is_pwd, pwd_type, is_senior_citizen, is_solo_parent, is_indigenous, is_4ps_beneficiary,
	blood_type, allergies, medical_conditions,
	date_registered, is_active, created_at, updated_at`

// scanResident scans one residents row in residentColumns order.
func scanResident(row interface{ Scan(dest ...any) error }, r *models.Resident) error {
	return row.Scan(
		&r.ID,
		&r.FirstName, &r.MiddleName, &r.LastName, &r.Suffix,
		&r.ContactNumber, &r.Email,
		&r.DateOfBirth, &r.PlaceOfBirth, &r.Gender, &r.CivilStatus, &r.Citizenship,
		&r.HouseNumber, &r.Street, &r.Zone, &r.Barangay, &r.CityMunicipality, &r.Province, &r.ZipCode,
		&r.EducationalAttainment, &r.EmploymentStatus, &r.Occupation, &r.MonthlyIncome,
		&r.FatherName, &r.MotherName, &r.SpouseName,
		&r.EmergencyContactName, &r.EmergencyContactNumber, &r.EmergencyContactRelationship,
		&r.PhilHealthNumber, &r.SSSGSISNumber, &r.TINNumber, &r.VotersID, &r.PrecinctNumber,
		&r.IsPWD, &r.PWDType, &r.IsSeniorCitizen, &r.IsSoloParent, &r.IsIndigenous, &r.Is4PsBeneficiary,
		&r.BloodType, &r.Allergies, &r.MedicalConditions,
		&r.DateRegistered, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
}

func (r *residentRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM residents WHERE is_active = TRUE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active residents: %w", err)
	}
	return count, nil
}

func (r *residentRepository) CountActiveByGender(ctx context.Context, gender string) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM residents WHERE is_active = TRUE AND gender = $1`,
		gender,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count residents by gender %q: %w", gender, err)
	}
	return count, nil
}

func (r *residentRepository) CountActiveBornAfter(ctx context.Context, cutoff time.Time) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM residents WHERE is_active = TRUE AND date_of_birth > $1`,
		cutoff,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count residents born after %s: %w", cutoff.Format("2006-01-02"), err)
	}
	return count, nil
}

func (r *residentRepository) CountActiveBornInRange(ctx context.Context, after, through time.Time) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM residents
		 WHERE is_active = TRUE AND date_of_birth > $1 AND date_of_birth <= $2`,
		after, through,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count residents in birth range: %w", err)
	}
	return count, nil
}

func (r *residentRepository) CountActiveBornOnOrBefore(ctx context.Context, cutoff time.Time) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM residents WHERE is_active = TRUE AND date_of_birth <= $1`,
		cutoff,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count residents born on or before %s: %w", cutoff.Format("2006-01-02"), err)
	}
	return count, nil
}

func (r *residentRepository) CountActiveByCategory(ctx context.Context, category SpecialCategory) (int, error) {
	col, err := category.column()
	if err != nil {
		return 0, err
	}

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM residents WHERE is_active = TRUE AND %s = TRUE`, col)
	if err := r.db.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count residents in category %q: %w", string(category), err)
	}
	return count, nil
}

func (r *residentRepository) ZoneDistribution(ctx context.Context) ([]ZoneCount, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT zone, COUNT(*) FROM residents
		 WHERE is_active = TRUE
		 GROUP BY zone ORDER BY zone`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone distribution: %w", err)
	}
	defer rows.Close()

	results := []ZoneCount{}
	for rows.Next() {
		var zc ZoneCount
		if err := rows.Scan(&zc.Zone, &zc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan zone distribution row: %w", err)
		}
		results = append(results, zc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zone distribution rows: %w", err)
	}
	return results, nil
}

func (r *residentRepository) CivilStatusDistribution(ctx context.Context) ([]ValueCount, error) {
	return r.valueDistribution(ctx, "civil_status")
}

func (r *residentRepository) EmploymentDistribution(ctx context.Context) ([]ValueCount, error) {
	return r.valueDistribution(ctx, "employment_status")
}

// valueDistribution groups active residents by one of the fixed categorical
// columns. The column name is supplied only by the two wrappers above.
func (r *residentRepository) valueDistribution(ctx context.Context, column string) ([]ValueCount, error) {
	query := fmt.Sprintf(
		`SELECT %s, COUNT(*) FROM residents
		 WHERE is_active = TRUE
		 GROUP BY %s ORDER BY %s`, column, column, column)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s distribution: %w", column, err)
	}
	defer rows.Close()

	results := []ValueCount{}
	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s distribution row: %w", column, err)
		}
		results = append(results, vc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s distribution rows: %w", column, err)
	}
	return results, nil
}

func (r *residentRepository) ListActive(ctx context.Context, filter ResidentFilter) ([]models.Resident, error) {
	// Build the WHERE clause field by field. Each optional filter contributes
	// one explicit condition; there is no dynamic query composition beyond
	// appending these fixed fragments.
	query := `SELECT ` + residentColumns + ` FROM residents WHERE is_active = TRUE`
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(
			` AND (first_name ILIKE $%d OR last_name ILIKE $%d OR middle_name ILIKE $%d OR contact_number ILIKE $%d)`,
			n, n, n, n)
	}
	if filter.Zone != "" {
		args = append(args, filter.Zone)
		query += fmt.Sprintf(` AND zone = $%d`, len(args))
	}
	if filter.Gender != "" {
		args = append(args, filter.Gender)
		query += fmt.Sprintf(` AND gender = $%d`, len(args))
	}

	query += ` ORDER BY last_name, first_name`

	return r.queryResidents(ctx, query, args...)
}

func (r *residentRepository) ListSeniorFlagged(ctx context.Context) ([]models.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents
		WHERE is_active = TRUE AND is_senior_citizen = TRUE
		ORDER BY last_name, first_name`
	return r.queryResidents(ctx, query)
}

func (r *residentRepository) DistinctActiveZones(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT DISTINCT zone FROM residents WHERE is_active = TRUE ORDER BY zone`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct zones: %w", err)
	}
	defer rows.Close()

	zones := []string{}
	for rows.Next() {
		var zone string
		if err := rows.Scan(&zone); err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zone rows: %w", err)
	}
	return zones, nil
}

func (r *residentRepository) ListVoters(ctx context.Context) ([]models.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents
		WHERE is_active = TRUE AND voters_id <> '' AND precinct_number <> ''
		ORDER BY precinct_number, last_name, first_name`
	return r.queryResidents(ctx, query)
}

func (r *residentRepository) PrecinctTotals(ctx context.Context) ([]PrecinctCount, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT precinct_number, COUNT(*) FROM residents
		 WHERE is_active = TRUE AND voters_id <> '' AND precinct_number <> ''
		 GROUP BY precinct_number ORDER BY precinct_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query precinct totals: %w", err)
	}
	defer rows.Close()

	results := []PrecinctCount{}
	for rows.Next() {
		var pc PrecinctCount
		if err := rows.Scan(&pc.Precinct, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan precinct total row: %w", err)
		}
		results = append(results, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating precinct total rows: %w", err)
	}
	return results, nil
}

// queryResidents runs a residentColumns select and scans all rows.
func (r *residentRepository) queryResidents(ctx context.Context, query string, args ...any) ([]models.Resident, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query residents: %w", err)
	}
	defer rows.Close()

	residents := []models.Resident{}
	for rows.Next() {
		var resident models.Resident
		if err := scanResident(rows, &resident); err != nil {
			return nil, fmt.Errorf("failed to scan resident row: %w", err)
		}
		residents = append(residents, resident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resident rows: %w", err)
	}
	return residents, nil
}
