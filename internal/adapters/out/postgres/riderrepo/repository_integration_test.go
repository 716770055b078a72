package riderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/riderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// RiderRepositoryIntegrationTestSuite provides integration tests for RiderRepository
// using PostgreSQL containers to verify persistence and zone search behavior.
type RiderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *riderrepo.GormRiderRepository
	tracker    *MockAggregateTracker
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&riderrepo.RiderDTO{}, &riderrepo.RiderZoneDTO{}))
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE riders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = riderrepo.NewGormRiderRepository(suite.db, suite.tracker)
}

func (suite *RiderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RiderRepositoryIntegrationTestSuite) TestAdd_ValidRider_PersistsRiderAndZones() {
	ctx := context.Background()

	testRider := suite.createTestRider(11, "Karim Mia", "Dhaka North", "Uttara")
	suite.tracker.On("TrackAggregate", testRider.ID(), testRider).Once()

	err := suite.repository.Add(ctx, testRider)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)

	suite.Equal("Karim Mia", retrieved.Name())
	suite.Equal(rider.VehicleBike, retrieved.VehicleType())
	suite.Len(retrieved.Zones(), 2)
	suite.True(retrieved.ServesZone("Uttara"))
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGet_NonExistentRider_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID, err := kernel.NewID(4040)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetByUserID_ExistingRider_ReturnsRider() {
	ctx := context.Background()

	testRider := suite.createTestRider(12, "Jashim Uddin", "Mirpur")
	suite.tracker.On("TrackAggregate", testRider.ID(), testRider).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	retrieved, err := suite.repository.GetByUserID(ctx, testRider.UserID())
	suite.Require().NoError(err)

	suite.Equal(testRider.ID(), retrieved.ID())
	suite.Equal(testRider.UserID(), retrieved.UserID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestUpdate_ZoneSetReplacedWholesale() {
	ctx := context.Background()

	testRider := suite.createTestRider(13, "Sumon Ahmed", "Dhanmondi", "Mohammadpur")
	suite.tracker.On("TrackAggregate", testRider.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	gulshan, err := kernel.NewZone("Gulshan")
	suite.Require().NoError(err)

	dhanmondi, err := kernel.NewZone("Dhanmondi")
	suite.Require().NoError(err)
	testRider.RemoveZone(dhanmondi)
	mohammadpur, err := kernel.NewZone("Mohammadpur")
	suite.Require().NoError(err)
	testRider.RemoveZone(mohammadpur)
	suite.Require().NoError(testRider.AddZone(gulshan))

	suite.Require().NoError(suite.repository.Update(ctx, testRider))

	retrieved, err := suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)

	suite.Len(retrieved.Zones(), 1)
	suite.True(retrieved.ServesZone("Gulshan"))
	suite.False(retrieved.ServesZone("Dhanmondi"))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestUpdate_DeliveryCounterPersists() {
	ctx := context.Background()

	testRider := suite.createTestRider(14, "Rasel Khan", "Banani")
	suite.tracker.On("TrackAggregate", testRider.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	testRider.RecordDelivery()
	testRider.RecordDelivery()
	suite.Require().NoError(suite.repository.Update(ctx, testRider))

	retrieved, err := suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)

	suite.Equal(2, retrieved.TotalDeliveries())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetAllActive_SkipsInactiveRiders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Times(2)

	active := suite.createTestRider(15, "Arif Hossain", "Uttara")
	inactive := suite.createTestRider(16, "Belal Mia", "Savar")
	inactive.Deactivate()

	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, inactive))

	riders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Len(riders, 1)
	suite.Equal(active.ID(), riders[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestFindByZone_MatchesSubstringCaseInsensitive() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Times(3)

	north := suite.createTestRider(17, "Monir Hossain", "Dhaka North", "Gazipur")
	south := suite.createTestRider(18, "Shafiq Islam", "Dhaka South")
	chattogram := suite.createTestRider(19, "Tanvir Alam", "Chattogram")

	for _, r := range []*rider.Rider{north, south, chattogram} {
		suite.Require().NoError(suite.repository.Add(ctx, r))
	}

	riders, err := suite.repository.FindByZone(ctx, "dhaka")
	suite.Require().NoError(err)

	suite.Len(riders, 2)
	ids := []kernel.ID{riders[0].ID(), riders[1].ID()}
	suite.Contains(ids, north.ID())
	suite.Contains(ids, south.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestFindByZone_BlankLocation_ReturnsAllActive() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestRider(20, "Rubel Mia", "Khulna")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestRider(21, "Habib Rahman", "Sylhet")))

	riders, err := suite.repository.FindByZone(ctx, "")
	suite.Require().NoError(err)

	suite.Len(riders, 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestFindByZone_NoMatch_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestRider(22, "Ripon Sarkar", "Rajshahi")))

	riders, err := suite.repository.FindByZone(ctx, "Barishal")
	suite.Require().NoError(err)

	suite.Empty(riders)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestRider creates an active bike rider serving the given zones.
// The user id is derived from the rider id to keep fixtures unique.
func (suite *RiderRepositoryIntegrationTestSuite) createTestRider(id int64, name string, zones ...string) *rider.Rider {
	riderID, err := kernel.NewID(id)
	suite.Require().NoError(err)
	userID, err := kernel.NewID(id + 1000)
	suite.Require().NoError(err)

	testRider, err := rider.NewRider(riderID, userID, name,
		"rider@example.com", "+8801799999999", rider.VehicleBike, "DHA-11-2233")
	suite.Require().NoError(err)

	for _, label := range zones {
		zone, zoneErr := kernel.NewZone(label)
		suite.Require().NoError(zoneErr)
		suite.Require().NoError(testRider.AddZone(zone))
	}

	return testRider
}

func TestRiderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RiderRepositoryIntegrationTestSuite))
}
