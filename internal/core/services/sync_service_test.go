package services_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/services"
)

type SyncServiceTestSuite struct {
	suite.Suite
	mockQueue        *MockOfflineQueue
	mockMovementRepo *MockMovementRepository
	monitor          *stubMonitor
	service          *services.SyncService
}

func (suite *SyncServiceTestSuite) SetupTest() {
	suite.mockQueue = new(MockOfflineQueue)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.monitor = &stubMonitor{online: true}
	suite.service = services.NewSyncService(suite.mockQueue, suite.mockMovementRepo, suite.monitor, slog.Default())
}

func op(id string) domain.OfflineOperation {
	return domain.OfflineOperation{
		OperationID: id,
		Kind:        domain.OpCreateMovement,
		CapturedAt:  time.Now().UTC(),
		Payload: domain.Movement{
			MovementID:       "mov-" + id,
			Direction:        domain.Expense,
			OriginalAmount:   decimal.RequireFromString("10"),
			OriginalCurrency: domain.USD,
			FinalAmountUSD:   decimal.RequireFromString("10"),
		},
	}
}

func (suite *SyncServiceTestSuite) TestSync_EmptyQueueSucceeds() {
	ctx := context.Background()
	suite.mockQueue.On("List", ctx).Return([]domain.OfflineOperation{}, nil).Once()

	result, err := suite.service.Sync(ctx)

	suite.NoError(err)
	suite.True(result.Success)
	suite.Zero(result.Synced)
}

func (suite *SyncServiceTestSuite) TestSync_DrainsInOrderAndRemovesEach() {
	ctx := context.Background()
	ops := []domain.OfflineOperation{op("a"), op("b")}

	suite.mockQueue.On("List", ctx).Return(ops, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, ops[0].Payload).Return(nil).Once()
	suite.mockQueue.On("Remove", ctx, "a").Return(nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, ops[1].Payload).Return(nil).Once()
	suite.mockQueue.On("Remove", ctx, "b").Return(nil).Once()

	result, err := suite.service.Sync(ctx)

	suite.NoError(err)
	suite.True(result.Success)
	suite.Equal(2, result.Synced)
	suite.Zero(result.Failed)
	suite.mockQueue.AssertExpectations(suite.T())
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestSync_FailureIsIsolatedPerOperation() {
	ctx := context.Background()
	ops := []domain.OfflineOperation{op("a"), op("b"), op("c")}

	suite.mockQueue.On("List", ctx).Return(ops, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, ops[0].Payload).Return(nil).Once()
	suite.mockQueue.On("Remove", ctx, "a").Return(nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, ops[1].Payload).Return(errors.New("boom")).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, ops[2].Payload).Return(nil).Once()
	suite.mockQueue.On("Remove", ctx, "c").Return(nil).Once()

	result, err := suite.service.Sync(ctx)

	suite.NoError(err)
	suite.False(result.Success)
	suite.Equal(2, result.Synced)
	suite.Equal(1, result.Failed)
	suite.Len(result.FailedOperations, 1)
	suite.Equal("b", result.FailedOperations[0].OperationID)
	// The failed operation is never removed from the queue.
	suite.mockQueue.AssertNotCalled(suite.T(), "Remove", ctx, "b")
}

func (suite *SyncServiceTestSuite) TestSync_DuplicateMeansAlreadySynced() {
	ctx := context.Background()
	ops := []domain.OfflineOperation{op("a")}

	suite.mockQueue.On("List", ctx).Return(ops, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, ops[0].Payload).Return(apperrors.ErrDuplicate).Once()
	suite.mockQueue.On("Remove", ctx, "a").Return(nil).Once()

	result, err := suite.service.Sync(ctx)

	suite.NoError(err)
	suite.True(result.Success)
	suite.Equal(1, result.Synced)
	suite.Zero(result.Failed)
	suite.mockQueue.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestSync_SecondTriggerWhileRunningIsRejected() {
	ctx := context.Background()
	ops := []domain.OfflineOperation{op("a")}

	saveStarted := make(chan struct{})
	release := make(chan struct{})

	suite.mockQueue.On("List", ctx).Return(ops, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, ops[0].Payload).
		Run(func(args mock.Arguments) {
			close(saveStarted)
			<-release
		}).Return(nil).Once()
	suite.mockQueue.On("Remove", ctx, "a").Return(nil).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := suite.service.Sync(ctx)
		suite.NoError(err)
	}()

	<-saveStarted
	suite.True(suite.service.Syncing())

	_, err := suite.service.Sync(ctx)
	suite.ErrorIs(err, apperrors.ErrSyncInProgress)

	close(release)
	<-done
	suite.False(suite.service.Syncing())
}

func (suite *SyncServiceTestSuite) TestPendingCount_StorageFailureDegradesToZero() {
	ctx := context.Background()
	suite.mockQueue.On("List", ctx).Return(nil, errors.New("disk gone")).Once()

	suite.Zero(suite.service.PendingCount(ctx))
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}
