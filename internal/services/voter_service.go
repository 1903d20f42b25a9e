package services

import (
	"context"
	"fmt"

	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/models"
	"github.com/gemi-dot/barangay-ims/internal/repository"
)

// PrecinctGroup is one precinct with its voters ordered by last then first
// name. Groups are returned as an ordered slice; precinct order is ascending.
type PrecinctGroup struct {
	Precinct string            `json:"precinct"`
	Voters   []models.Resident `json:"voters"`
}

// VotersByPrecinct is the precinct-grouped voter report.
type VotersByPrecinct struct {
	Precincts []PrecinctGroup `json:"precincts"`
	Total     int             `json:"total"`
}

// PrecinctChart is the per-precinct voter totals in chart-friendly form:
// parallel label and total slices, plus the raw counts.
type PrecinctChart struct {
	Labels []string                   `json:"labels"`
	Totals []int                      `json:"totals"`
	Data   []repository.PrecinctCount `json:"data"`
}

// VoterService provides the voter registry views. Only active residents with
// a non-empty voter ID and precinct number ever appear; residents with a
// precinct but no voter ID stay out of every voter view.
type VoterService interface {
	// Voters lists registered voters ordered by precinct, last name, first
	// name.
	Voters(ctx context.Context) ([]models.Resident, error)

	// ByPrecinct groups registered voters by precinct, keeping the per-
	// precinct name ordering.
	ByPrecinct(ctx context.Context) (*VotersByPrecinct, error)

	// PrecinctTotals returns voter counts per precinct for chart display.
	PrecinctTotals(ctx context.Context) (*PrecinctChart, error)
}

type voterService struct {
	residents repository.ResidentRepository
	log       *logger.Logger
}

// NewVoterService creates a new VoterService.
func NewVoterService(residents repository.ResidentRepository, log *logger.Logger) VoterService {
	return &voterService{
		residents: residents,
		log:       log,
	}
}

func (s *voterService) Voters(ctx context.Context) ([]models.Resident, error) {
	voters, err := s.residents.ListVoters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}

	s.log.Info("Voter report computed", map[string]interface{}{
		"voters": len(voters),
	})

	return voters, nil
}

func (s *voterService) ByPrecinct(ctx context.Context) (*VotersByPrecinct, error) {
	voters, err := s.residents.ListVoters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}

	// Rows arrive ordered by precinct, so one pass splits them into groups
	// while preserving both precinct order and per-precinct name order.
	grouped := &VotersByPrecinct{Precincts: []PrecinctGroup{}, Total: len(voters)}
	for _, voter := range voters {
		n := len(grouped.Precincts)
		if n == 0 || grouped.Precincts[n-1].Precinct != voter.PrecinctNumber {
			grouped.Precincts = append(grouped.Precincts, PrecinctGroup{
				Precinct: voter.PrecinctNumber,
			})
			n++
		}
		grouped.Precincts[n-1].Voters = append(grouped.Precincts[n-1].Voters, voter)
	}

	s.log.Info("Voters-by-precinct report computed", map[string]interface{}{
		"voters":    len(voters),
		"precincts": len(grouped.Precincts),
	})

	return grouped, nil
}

func (s *voterService) PrecinctTotals(ctx context.Context) (*PrecinctChart, error) {
	totals, err := s.residents.PrecinctTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query precinct totals: %w", err)
	}

	chart := &PrecinctChart{
		Labels: make([]string, 0, len(totals)),
		Totals: make([]int, 0, len(totals)),
		Data:   totals,
	}
	for _, t := range totals {
		chart.Labels = append(chart.Labels, t.Precinct)
		chart.Totals = append(chart.Totals, t.Count)
	}

	s.log.Info("Precinct totals computed", map[string]interface{}{
		"precincts": len(totals),
	})

	return chart, nil
}
