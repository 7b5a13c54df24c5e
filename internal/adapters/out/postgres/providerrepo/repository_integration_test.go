package providerrepo_test

import (
	"context"
	"testing"
	"time"

	"fixmate/internal/adapters/out/postgres/providerrepo"
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/provider"
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

// ProviderRepositoryIntegrationTestSuite provides integration tests for ProviderRepository
// using PostgreSQL containers to verify database persistence behavior.
type ProviderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *providerrepo.GormProviderRepository
	tracker    *MockAggregateTracker
}

func (suite *ProviderRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&providerrepo.ProviderDTO{}))
}

func (suite *ProviderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE service_providers").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = providerrepo.NewGormProviderRepository(suite.db, suite.tracker)
}

func (suite *ProviderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProviderRepositoryIntegrationTestSuite) createTestProvider(
	name string, spec provider.Specialization,
) *provider.ServiceProvider {
	p, err := provider.NewServiceProvider(kernel.NewUUID(), name, spec)
	suite.Require().NoError(err)
	return p
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestAdd_ValidProvider_Success() {
	ctx := context.Background()

	testProvider := suite.createTestProvider("Jane Smith", provider.Mechanic)
	suite.tracker.On("TrackAggregate", testProvider.ID(), testProvider).Once()

	err := suite.repository.Add(ctx, testProvider)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&providerrepo.ProviderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestGet_ExistingProvider_RoundTrips() {
	ctx := context.Background()

	testProvider := suite.createTestProvider("Jane Smith", provider.Electrician)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, testProvider))

	loaded, err := suite.repository.Get(ctx, testProvider.ID())
	suite.Require().NoError(err)

	suite.True(testProvider.ID().IsEqual(loaded.ID()))
	suite.Equal("Jane Smith", loaded.FullName())
	suite.Equal(provider.Electrician, loaded.Specialization())
	suite.True(loaded.IsAvailable())
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestGet_NonExistentProvider_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestUpdate_AvailabilityFlip_Persists() {
	ctx := context.Background()

	testProvider := suite.createTestProvider("Jane Smith", provider.Mechanic)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, testProvider))

	testProvider.SetAvailability(false)
	suite.Require().NoError(suite.repository.Update(ctx, testProvider))

	loaded, err := suite.repository.Get(ctx, testProvider.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsAvailable())

	// And back again.
	loaded.SetAvailability(true)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	final, err := suite.repository.Get(ctx, testProvider.ID())
	suite.Require().NoError(err)
	suite.True(final.IsAvailable())
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestUpdate_NonExistentProvider_ReturnsNotFound() {
	ctx := context.Background()

	testProvider := suite.createTestProvider("Ghost", provider.Towing)

	err := suite.repository.Update(ctx, testProvider)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersUnavailable() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	available := suite.createTestProvider("Alice Available", provider.Mechanic)
	busy := suite.createTestProvider("Bob Busy", provider.Diagnostics)
	busy.SetAvailability(false)

	suite.Require().NoError(suite.repository.Add(ctx, available))
	suite.Require().NoError(suite.repository.Add(ctx, busy))

	result, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(available.ID().IsEqual(result[0].ID()))
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestGetAllAvailable_OrdersByName() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	zoe := suite.createTestProvider("Zoe", provider.Mechanic)
	adam := suite.createTestProvider("Adam", provider.Electrician)

	suite.Require().NoError(suite.repository.Add(ctx, zoe))
	suite.Require().NoError(suite.repository.Add(ctx, adam))

	result, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Adam", result[0].FullName())
	suite.Equal("Zoe", result[1].FullName())
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestGetAllAvailable_Empty_ReturnsEmptySlice() {
	ctx := context.Background()

	result, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestProviderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderRepositoryIntegrationTestSuite))
}
