package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gemi-dot/barangay-ims/internal/models"
	"github.com/gemi-dot/barangay-ims/internal/repository"
)

// MockResidentRepository is a mock implementation of repository.ResidentRepository.
type MockResidentRepository struct {
	mock.Mock
}

func (m *MockResidentRepository) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockResidentRepository) CountActiveByGender(ctx context.Context, gender string) (int, error) {
	args := m.Called(ctx, gender)
	return args.Int(0), args.Error(1)
}

func (m *MockResidentRepository) CountActiveBornAfter(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

func (m *MockResidentRepository) CountActiveBornInRange(ctx context.Context, after, through time.Time) (int, error) {
	args := m.Called(ctx, after, through)
	return args.Int(0), args.Error(1)
}

func (m *MockResidentRepository) CountActiveBornOnOrBefore(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

func (m *MockResidentRepository) CountActiveByCategory(ctx context.Context, category repository.SpecialCategory) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *MockResidentRepository) ZoneDistribution(ctx context.Context) ([]repository.ZoneCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ZoneCount), args.Error(1)
}

func (m *MockResidentRepository) CivilStatusDistribution(ctx context.Context) ([]repository.ValueCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ValueCount), args.Error(1)
}

func (m *MockResidentRepository) EmploymentDistribution(ctx context.Context) ([]repository.ValueCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ValueCount), args.Error(1)
}

func (m *MockResidentRepository) ListActive(ctx context.Context, filter repository.ResidentFilter) ([]models.Resident, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resident), args.Error(1)
}

func (m *MockResidentRepository) ListSeniorFlagged(ctx context.Context) ([]models.Resident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resident), args.Error(1)
}

func (m *MockResidentRepository) DistinctActiveZones(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResidentRepository) ListVoters(ctx context.Context) ([]models.Resident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resident), args.Error(1)
}

func (m *MockResidentRepository) PrecinctTotals(ctx context.Context) ([]repository.PrecinctCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PrecinctCount), args.Error(1)
}

// MockHouseholdRepository is a mock implementation of repository.HouseholdRepository.
type MockHouseholdRepository struct {
	mock.Mock
}

func (m *MockHouseholdRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockHouseholdRepository) List(ctx context.Context) ([]models.Household, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Household), args.Error(1)
}

// MockReportRepository is a mock implementation of repository.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CountActiveSeniorReports(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportRepository) ListActiveSeniorReports(ctx context.Context) ([]models.SeniorCitizenReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SeniorCitizenReport), args.Error(1)
}

func (m *MockReportRepository) CountActiveBusinesses(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportRepository) ListActiveBusinesses(ctx context.Context) ([]models.SariSariStoreReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SariSariStoreReport), args.Error(1)
}

func (m *MockReportRepository) CountActiveFourPs(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportRepository) ListActiveFourPs(ctx context.Context) ([]models.FourPsBeneficiaryReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FourPsBeneficiaryReport), args.Error(1)
}

func (m *MockReportRepository) CountOngoingPregnancies(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportRepository) ListOngoingPregnancies(ctx context.Context) ([]models.PregnancyReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PregnancyReport), args.Error(1)
}

func (m *MockReportRepository) CountHealthReportsSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}
