package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/models"
	"github.com/gemi-dot/barangay-ims/internal/repository"
)

// ResidentDirectory is the filtered resident listing plus the distinct zone
// set used to populate the zone filter dropdown.
type ResidentDirectory struct {
	Residents []models.Resident `json:"residents"`
	Zones     []string          `json:"zones"`
	Total     int               `json:"total"`
}

// ResidentService provides the resident directory view.
type ResidentService interface {
	// Directory returns active residents matching the filter, ordered by
	// last then first name, together with the distinct zones of all active
	// residents. Blank filter fields mean "no filter applied".
	Directory(ctx context.Context, filter repository.ResidentFilter) (*ResidentDirectory, error)
}

type residentService struct {
	residents repository.ResidentRepository
	log       *logger.Logger
}

// NewResidentService creates a new ResidentService.
func NewResidentService(residents repository.ResidentRepository, log *logger.Logger) ResidentService {
	return &residentService{
		residents: residents,
		log:       log,
	}
}

func (s *residentService) Directory(ctx context.Context, filter repository.ResidentFilter) (*ResidentDirectory, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Zone = strings.TrimSpace(filter.Zone)
	filter.Gender = strings.TrimSpace(filter.Gender)

	residents, err := s.residents.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}

	// Zones always cover all active residents, not just the filtered set, so
	// the dropdown keeps every choice visible.
	zones, err := s.residents.DistinctActiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	s.log.Info("Resident directory computed", map[string]interface{}{
		"results": len(residents),
		"search":  filter.Search != "",
		"zone":    filter.Zone,
		"gender":  filter.Gender,
	})

	return &ResidentDirectory{
		Residents: residents,
		Zones:     zones,
		Total:     len(residents),
	}, nil
}
