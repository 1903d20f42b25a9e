package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/models"
	"github.com/gemi-dot/barangay-ims/internal/repository"
)

func TestDirectory_Success(t *testing.T) {
	// Arrange
	mockResidents := new(MockResidentRepository)
	service := NewResidentService(mockResidents, logger.New("test"))

	ctx := context.Background()
	filter := repository.ResidentFilter{Zone: "3"}
	residents := []models.Resident{
		{ID: 1, FirstName: "Juan", LastName: "Dela Cruz", Zone: "3"},
		{ID: 2, FirstName: "Maria", LastName: "Santos", Zone: "3"},
	}
	mockResidents.On("ListActive", ctx, filter).Return(residents, nil)
	mockResidents.On("DistinctActiveZones", ctx).Return([]string{"1", "2", "3"}, nil)

	// Act
	directory, err := service.Directory(ctx, filter)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, residents, directory.Residents)
	assert.Equal(t, 2, directory.Total)
	// The zone dropdown covers all active residents, not just the filtered set.
	assert.Equal(t, []string{"1", "2", "3"}, directory.Zones)
	mockResidents.AssertExpectations(t)
}

func TestDirectory_TrimsFilterFields(t *testing.T) {
	// Arrange
	mockResidents := new(MockResidentRepository)
	service := NewResidentService(mockResidents, logger.New("test"))

	ctx := context.Background()
	trimmed := repository.ResidentFilter{Search: "an", Zone: "2", Gender: "F"}
	mockResidents.On("ListActive", ctx, trimmed).Return([]models.Resident{}, nil)
	mockResidents.On("DistinctActiveZones", ctx).Return([]string{}, nil)

	// Act
	_, err := service.Directory(ctx, repository.ResidentFilter{
		Search: "  an ",
		Zone:   " 2",
		Gender: "F ",
	})

	// Assert
	require.NoError(t, err)
	mockResidents.AssertExpectations(t)
}

func TestDirectory_ListError(t *testing.T) {
	// Arrange
	mockResidents := new(MockResidentRepository)
	service := NewResidentService(mockResidents, logger.New("test"))

	ctx := context.Background()
	mockResidents.On("ListActive", ctx, repository.ResidentFilter{}).
		Return(nil, errors.New("connection refused"))

	// Act
	directory, err := service.Directory(ctx, repository.ResidentFilter{})

	// Assert
	require.Error(t, err)
	assert.Nil(t, directory)
	assert.Contains(t, err.Error(), "failed to list residents")
}
