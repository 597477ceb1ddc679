package inventory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/inventory"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type LedgerIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	pool     *pgxpool.Pool
	ledger   *inventory.Ledger
}

func (suite *LedgerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	database, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.database = database

	pool, err := pgxpool.New(ctx, database.DSN)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.ledger = inventory.NewLedger(pool, 5*time.Second)
}

func (suite *LedgerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *LedgerIntegrationTestSuite) TearDownSuite() {
	suite.pool.Close()
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *LedgerIntegrationTestSuite) TestEligibleRecords_ExpiryThenReceipt() {
	ctx := context.Background()
	productID, warehouseID := kernel.NewUUID(), kernel.NewUUID()

	undated := record(productID, warehouseID, "undated", "5")
	dated := record(productID, warehouseID, "dated", "2.5")
	empty := record(productID, warehouseID, "empty", "4")
	expiry := received.AddDate(0, 2, 0)

	suite.Require().NoError(suite.ledger.Receive(ctx, undated, received.Add(-time.Hour), nil))
	suite.Require().NoError(suite.ledger.Receive(ctx, dated, received, &expiry))
	suite.Require().NoError(suite.ledger.Receive(ctx, empty, received, nil))
	suite.Require().NoError(suite.ledger.Reserve(ctx, empty.ID, kernel.MustQuantity("4")))

	records, err := suite.ledger.EligibleRecords(ctx, productID, warehouseID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal(dated.ID, records[0].ID)
	suite.Equal("2.5", records[0].Available.String())
	suite.Equal(undated.ID, records[1].ID)
	suite.True(records[1].Location.IsEqual(undated.Location))
}

func (suite *LedgerIntegrationTestSuite) TestReserve_FailsWithoutSideEffects() {
	ctx := context.Background()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "3")
	suite.Require().NoError(suite.ledger.Receive(ctx, r, received, nil))

	err := suite.ledger.Reserve(ctx, r.ID, kernel.MustQuantity("4"))
	suite.Require().ErrorIs(err, allocation.ErrInsufficientInventory)

	reserved, err := suite.ledger.Reserved(ctx, r.ID)
	suite.Require().NoError(err)
	suite.True(reserved.IsZero())
}

func (suite *LedgerIntegrationTestSuite) TestConcurrentReservesNeverOversell() {
	ctx := context.Background()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "5")
	suite.Require().NoError(suite.ledger.Receive(ctx, r, received, nil))

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range 12 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if suite.ledger.Reserve(ctx, r.ID, kernel.MustQuantity("1")) == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	suite.Equal(int32(5), succeeded.Load())
	reserved, err := suite.ledger.Reserved(ctx, r.ID)
	suite.Require().NoError(err)
	suite.Equal("5", reserved.String())
}

func (suite *LedgerIntegrationTestSuite) TestRelease() {
	ctx := context.Background()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "5")
	suite.Require().NoError(suite.ledger.Receive(ctx, r, received, nil))
	suite.Require().NoError(suite.ledger.Reserve(ctx, r.ID, kernel.MustQuantity("2")))

	suite.Require().NoError(suite.ledger.Release(ctx, r.ID, kernel.MustQuantity("3")))
	reserved, err := suite.ledger.Reserved(ctx, r.ID)
	suite.Require().NoError(err)
	suite.True(reserved.IsZero())

	err = suite.ledger.Release(ctx, kernel.NewUUID(), kernel.MustQuantity("1"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LedgerIntegrationTestSuite) TestCommit() {
	ctx := context.Background()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "10")
	suite.Require().NoError(suite.ledger.Receive(ctx, r, received, nil))
	suite.Require().NoError(suite.ledger.Reserve(ctx, r.ID, kernel.MustQuantity("4")))

	suite.Require().NoError(suite.ledger.Commit(ctx, r.ID, kernel.MustQuantity("3")))
	reserved, err := suite.ledger.Reserved(ctx, r.ID)
	suite.Require().NoError(err)
	suite.Equal("1", reserved.String())
	onHand, err := suite.ledger.OnHand(ctx, r.ID)
	suite.Require().NoError(err)
	suite.Equal("7", onHand.String())

	err = suite.ledger.Commit(ctx, r.ID, kernel.MustQuantity("2"))
	suite.Require().ErrorIs(err, allocation.ErrInsufficientInventory)
	onHand, err = suite.ledger.OnHand(ctx, r.ID)
	suite.Require().NoError(err)
	suite.Equal("7", onHand.String())

	err = suite.ledger.Commit(ctx, kernel.NewUUID(), kernel.MustQuantity("1"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LedgerIntegrationTestSuite) TestCancelledContextIsRetryable() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.ledger.EligibleRecords(ctx, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.True(errs.IsRetryable(err))
}

func TestLedgerIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(LedgerIntegrationTestSuite))
}
