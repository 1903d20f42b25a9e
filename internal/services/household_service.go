package services

import (
	"context"
	"fmt"

	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/models"
	"github.com/gemi-dot/barangay-ims/internal/repository"
)

// HouseholdRoster is the full household listing with member IDs loaded.
type HouseholdRoster struct {
	Households []models.Household `json:"households"`
	Total      int                `json:"total"`
}

// HouseholdService provides the household roster view.
type HouseholdService interface {
	// Roster returns all households ordered by household number, each with
	// its member IDs.
	Roster(ctx context.Context) (*HouseholdRoster, error)
}

type householdService struct {
	households repository.HouseholdRepository
	log        *logger.Logger
}

// NewHouseholdService creates a new HouseholdService.
func NewHouseholdService(households repository.HouseholdRepository, log *logger.Logger) HouseholdService {
	return &householdService{
		households: households,
		log:        log,
	}
}

func (s *householdService) Roster(ctx context.Context) (*HouseholdRoster, error) {
	households, err := s.households.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list households: %w", err)
	}

	s.log.Info("Household roster computed", map[string]interface{}{
		"households": len(households),
	})

	return &HouseholdRoster{
		Households: households,
		Total:      len(households),
	}, nil
}
