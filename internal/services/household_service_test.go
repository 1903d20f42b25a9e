package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/models"
)

func TestHouseholdRoster_Success(t *testing.T) {
	// Arrange
	mockHouseholds := new(MockHouseholdRepository)
	service := NewHouseholdService(mockHouseholds, logger.New("test"))

	ctx := context.Background()
	income := 15000.0
	households := []models.Household{
		{ID: 1, HouseholdHeadID: 10, HouseholdNumber: "HH-001", MemberIDs: []uint{10, 11, 12}, HouseOwnership: models.OwnershipOwned},
		{ID: 2, HouseholdHeadID: 20, HouseholdNumber: "HH-002", MemberIDs: []uint{20}, TotalMonthlyIncome: &income, HouseOwnership: models.OwnershipRented},
	}
	mockHouseholds.On("List", ctx).Return(households, nil)

	// Act
	roster, err := service.Roster(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, households, roster.Households)
	assert.Equal(t, 2, roster.Total)
	assert.Equal(t, []uint{10, 11, 12}, roster.Households[0].MemberIDs)
	mockHouseholds.AssertExpectations(t)
}

func TestHouseholdRoster_Empty(t *testing.T) {
	// Arrange
	mockHouseholds := new(MockHouseholdRepository)
	service := NewHouseholdService(mockHouseholds, logger.New("test"))

	ctx := context.Background()
	mockHouseholds.On("List", ctx).Return([]models.Household{}, nil)

	// Act
	roster, err := service.Roster(ctx)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, roster.Households)
	assert.Equal(t, 0, roster.Total)
}

func TestHouseholdRoster_RepositoryError(t *testing.T) {
	// Arrange
	mockHouseholds := new(MockHouseholdRepository)
	service := NewHouseholdService(mockHouseholds, logger.New("test"))

	ctx := context.Background()
	mockHouseholds.On("List", ctx).Return(nil, errors.New("connection refused"))

	// Act
	roster, err := service.Roster(ctx)

	// Assert
	require.Error(t, err)
	assert.Nil(t, roster)
	assert.Contains(t, err.Error(), "failed to list households")
}
