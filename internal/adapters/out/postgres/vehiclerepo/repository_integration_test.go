package vehiclerepo_test

import (
	"context"
	"testing"
	"time"

	"fixmate/internal/adapters/out/postgres/vehiclerepo"
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/vehicle"
	"fixmate/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// VehicleRepositoryIntegrationTestSuite provides integration tests for VehicleRepository
// using PostgreSQL containers to verify database persistence behavior.
type VehicleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *vehiclerepo.GormVehicleRepository
	tracker    *MockAggregateTracker
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&vehiclerepo.VehicleDTO{}))
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vehicles").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = vehiclerepo.NewGormVehicleRepository(suite.db, suite.tracker)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestAdd_ValidVehicle_Success() {
	ctx := context.Background()

	testVehicle, err := vehicle.NewVehicle(
		kernel.NewUUID(), "Toyota", "Corolla", 2019, "AB-123-CD", kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", testVehicle.ID(), testVehicle).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testVehicle))

	var count int64
	suite.Require().NoError(suite.db.Model(&vehiclerepo.VehicleDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGet_ExistingVehicle_RoundTrips() {
	ctx := context.Background()

	ownerID := kernel.NewUUID()
	testVehicle, err := vehicle.NewVehicle(
		kernel.NewUUID(), "Honda", "Civic", 2021, "XY-987-ZW", ownerID,
	)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, testVehicle))

	loaded, err := suite.repository.Get(ctx, testVehicle.ID())
	suite.Require().NoError(err)

	suite.True(testVehicle.ID().IsEqual(loaded.ID()))
	suite.Equal("Honda", loaded.Make())
	suite.Equal("Civic", loaded.Model())
	suite.Equal(2021, loaded.Year())
	suite.Equal("XY-987-ZW", loaded.LicensePlate())
	suite.True(ownerID.IsEqual(loaded.OwnerID()))
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGet_NonExistentVehicle_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestVehicleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleRepositoryIntegrationTestSuite))
}
