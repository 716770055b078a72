package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through
// the repositories.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.ID, _ any) {}

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_PendingOrder_MapsDisplayFields() {
	testOrder := suite.seedOrder(501)

	query := queries.NewGetOrdersQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal(testOrder.ID().Int64(), row.ID)
	suite.Equal(testOrder.SecureID().String(), row.SecureID)
	suite.Equal("Rahim Uddin", row.CustomerName)
	suite.Equal("rahim@example.com", row.CustomerEmail)
	suite.InDelta(900.0, row.TotalPrice, 0.001)
	suite.Equal(1, row.ItemCount)
	suite.Equal("pending", row.Status)
	suite.Equal("Pending", row.StatusDisplay)
	suite.NotEmpty(row.StatusBadge)
	suite.Empty(row.CourierService)
	suite.Empty(row.TrackingID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ShippedOrder_IncludesShippingColumns() {
	testOrder := suite.seedOrder(502)

	riderID, err := kernel.NewID(7)
	suite.Require().NoError(err)
	shipping, err := order.NewShippingInfo("Pathao", "PTH-9911", "2026-08-30", "", riderID)
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.Approve())
	suite.Require().NoError(testOrder.Ship(shipping))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), testOrder))

	query := queries.NewGetOrdersQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("shipped", result[0].Status)
	suite.Equal("Shipped", result[0].StatusDisplay)
	suite.Equal("Pathao", result[0].CourierService)
	suite.Equal("PTH-9911", result[0].TrackingID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_MultipleOrders_NewestFirst() {
	older := suite.seedOrder(503)
	newer := suite.seedOrder(504)

	query := queries.NewGetOrdersQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID().Int64(), result[0].ID)
	suite.Equal(older.ID().Int64(), result[1].ID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_UnconstructedQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

// seedOrder persists a fresh pending order fixture.
func (suite *GetOrdersQueryHandlerTestSuite) seedOrder(id int64) *order.Order {
	orderID, err := kernel.NewID(id)
	suite.Require().NoError(err)

	customer := order.Customer{
		Name:  "Rahim Uddin",
		Email: "rahim@example.com",
		Phone: "+8801711111111",
	}
	items := []order.LineItem{
		{ProductID: 42, Quantity: 2, UnitPrice: 450},
	}

	testOrder, err := order.NewOrder(orderID, kernel.NewSecureID(), customer, items, 900, "House 12, Road 5, Dhanmondi, Dhaka")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
