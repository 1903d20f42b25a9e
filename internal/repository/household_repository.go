package repository

import (
	"context"
	"fmt"

	"github.com/gemi-dot/barangay-ims/internal/database"
	"github.com/gemi-dot/barangay-ims/internal/models"
)

// HouseholdRepository defines data access over the households table.
// Households are maintained by the intake workflows; this layer only reads.
type HouseholdRepository interface {
	// Count returns the total number of households. Households have no
	// active flag, so every row counts.
	Count(ctx context.Context) (int, error)

	// List returns all households ordered by household number, with member
	// IDs loaded from the junction table.
	List(ctx context.Context) ([]models.Household, error)
}

type householdRepository struct {
	db *database.Database
}

// NewHouseholdRepository creates a new HouseholdRepository.
func NewHouseholdRepository(db *database.Database) HouseholdRepository {
	return &householdRepository{db: db}
}

func (r *householdRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM households`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count households: %w", err)
	}
	return count, nil
}

func (r *householdRepository) List(ctx context.Context) ([]models.Household, error) {
	// Member IDs come back as an array aggregated from the junction table so
	// a household list is a single query instead of one per household.
	query := `
		SELECT
			h.id,
			h.household_head_id,
			h.household_number,
			COALESCE(ARRAY_AGG(m.resident_id) FILTER (WHERE m.resident_id IS NOT NULL), '{}'),
			h.total_monthly_income,
			h.house_ownership,
			h.created_at,
			h.updated_at
		FROM households h
		LEFT JOIN household_members m ON m.household_id = h.id
		GROUP BY h.id
		ORDER BY h.household_number`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query households: %w", err)
	}
	defer rows.Close()

	households := []models.Household{}
	for rows.Next() {
		var h models.Household
		var memberIDs []int64
		err := rows.Scan(
			&h.ID,
			&h.HouseholdHeadID,
			&h.HouseholdNumber,
			&memberIDs,
			&h.TotalMonthlyIncome,
			&h.HouseOwnership,
			&h.CreatedAt,
			&h.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan household row: %w", err)
		}
		h.MemberIDs = make([]uint, 0, len(memberIDs))
		for _, id := range memberIDs {
			h.MemberIDs = append(h.MemberIDs, uint(id))
		}
		households = append(households, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating household rows: %w", err)
	}
	return households, nil
}
