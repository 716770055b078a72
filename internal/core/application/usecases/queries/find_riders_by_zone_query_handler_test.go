package queries_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRiderRepository is a mock implementation of ports.RiderRepository.
type MockRiderRepository struct {
	mock.Mock
}

func (m *MockRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.ID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetByUserID(ctx context.Context, userID kernel.ID) (*rider.Rider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetAllActive(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) FindByZone(ctx context.Context, location string) ([]*rider.Rider, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

// zoneRider builds an active rider serving the given zones.
func zoneRider(t *testing.T, id int64, name string, zones ...string) *rider.Rider {
	t.Helper()

	riderID, err := kernel.NewID(id)
	require.NoError(t, err)
	userID, err := kernel.NewID(id + 1000)
	require.NoError(t, err)

	r, err := rider.NewRider(riderID, userID, name,
		"rider@example.com", "+8801799999999", rider.VehicleBike, "DHA-11-2233")
	require.NoError(t, err)

	for _, label := range zones {
		zone, zoneErr := kernel.NewZone(label)
		require.NoError(t, zoneErr)
		require.NoError(t, r.AddZone(zone))
	}

	return r
}

func TestFindRidersByZoneQueryHandler_Handle_ServerSearchSucceeds(t *testing.T) {
	// Given
	ctx := context.Background()
	repo := new(MockRiderRepository)
	handler := queries.NewFindRidersByZoneQueryHandler(repo, slog.Default())

	matched := zoneRider(t, 1, "Karim Mia", "Dhaka North", "Uttara")
	repo.On("FindByZone", ctx, "dhaka").Return([]*rider.Rider{matched}, nil).Once()

	query, err := queries.NewFindRidersByZoneQuery("dhaka")
	require.NoError(t, err)

	// When
	result, err := handler.Handle(ctx, query)

	// Then
	require.NoError(t, err)
	assert.Equal(t, queries.SourceServer, result.Source)
	assert.False(t, result.NoRidersFound)
	require.Len(t, result.Riders, 1)
	assert.Equal(t, int64(1), result.Riders[0].ID)
	assert.Equal(t, "Karim Mia", result.Riders[0].Name)
	assert.Equal(t, []string{"Dhaka North", "Uttara"}, result.Riders[0].Zones)
	repo.AssertExpectations(t)
}

func TestFindRidersByZoneQueryHandler_Handle_FallsBackToLocalFiltering(t *testing.T) {
	// Given
	ctx := context.Background()
	repo := new(MockRiderRepository)
	handler := queries.NewFindRidersByZoneQueryHandler(repo, slog.Default())

	north := zoneRider(t, 1, "Karim Mia", "Dhaka North")
	chattogram := zoneRider(t, 2, "Tanvir Alam", "Chattogram")

	repo.On("FindByZone", ctx, "dhaka").
		Return(nil, errors.New("search index unavailable")).Once()
	repo.On("GetAllActive", ctx).
		Return([]*rider.Rider{north, chattogram}, nil).Once()

	query, err := queries.NewFindRidersByZoneQuery("dhaka")
	require.NoError(t, err)

	// When
	result, err := handler.Handle(ctx, query)

	// Then
	require.NoError(t, err)
	assert.Equal(t, queries.SourceLocalFallback, result.Source)
	require.Len(t, result.Riders, 1)
	assert.Equal(t, "Karim Mia", result.Riders[0].Name)
	repo.AssertExpectations(t)
}

func TestFindRidersByZoneQueryHandler_Handle_BothPathsFail_ReturnsError(t *testing.T) {
	// Given
	ctx := context.Background()
	repo := new(MockRiderRepository)
	handler := queries.NewFindRidersByZoneQueryHandler(repo, slog.Default())

	repo.On("FindByZone", ctx, "dhaka").
		Return(nil, errors.New("search index unavailable")).Once()
	repo.On("GetAllActive", ctx).
		Return(nil, errors.New("database down")).Once()

	query, err := queries.NewFindRidersByZoneQuery("dhaka")
	require.NoError(t, err)

	// When
	result, err := handler.Handle(ctx, query)

	// Then
	require.Error(t, err)
	assert.Empty(t, result.Riders)
	repo.AssertExpectations(t)
}

func TestFindRidersByZoneQueryHandler_Handle_NoMatches_ReportsNoRidersFound(t *testing.T) {
	// Given
	ctx := context.Background()
	repo := new(MockRiderRepository)
	handler := queries.NewFindRidersByZoneQueryHandler(repo, slog.Default())

	repo.On("FindByZone", ctx, "Barishal").Return([]*rider.Rider{}, nil).Once()

	query, err := queries.NewFindRidersByZoneQuery("Barishal")
	require.NoError(t, err)

	// When
	result, err := handler.Handle(ctx, query)

	// Then
	require.NoError(t, err)
	assert.True(t, result.NoRidersFound)
	assert.NotNil(t, result.Riders)
	assert.Empty(t, result.Riders)
	repo.AssertExpectations(t)
}

func TestFindRidersByZoneQueryHandler_Handle_BlankLocation_ReturnsAllActive(t *testing.T) {
	// Given
	ctx := context.Background()
	repo := new(MockRiderRepository)
	handler := queries.NewFindRidersByZoneQueryHandler(repo, slog.Default())

	riders := []*rider.Rider{
		zoneRider(t, 1, "Karim Mia", "Dhaka North"),
		zoneRider(t, 2, "Tanvir Alam", "Chattogram"),
	}
	repo.On("FindByZone", ctx, "").Return(riders, nil).Once()

	query, err := queries.NewFindRidersByZoneQuery("")
	require.NoError(t, err)

	// When
	result, err := handler.Handle(ctx, query)

	// Then
	require.NoError(t, err)
	assert.Len(t, result.Riders, 2)
	assert.False(t, result.NoRidersFound)
	repo.AssertExpectations(t)
}

func TestFindRidersByZoneQueryHandler_Handle_UnconstructedQuery_ReturnsError(t *testing.T) {
	// Given
	handler := queries.NewFindRidersByZoneQueryHandler(new(MockRiderRepository), slog.Default())

	// When
	_, err := handler.Handle(context.Background(), queries.FindRidersByZoneQuery{})

	// Then
	require.ErrorIs(t, err, queries.ErrFindRidersByZoneQueryIsNotConstructed)
}
