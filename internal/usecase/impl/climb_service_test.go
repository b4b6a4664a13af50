package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	domainerrors "github.com/ajlevin/csc365-final-project/internal/domain/errors"
	"github.com/ajlevin/csc365-final-project/internal/domain/repository"
	mockRepo "github.com/ajlevin/csc365-final-project/internal/mocks/repository"
	"github.com/ajlevin/csc365-final-project/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type climbServiceFixtures struct {
	service   usecase.ClimbUsecase
	txManager *mockRepo.MockTransactionManager
	climbRepo *mockRepo.MockClimbRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestClimbService(t *testing.T) climbServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	climbRepo := mockRepo.NewMockClimbRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewClimbService(ClimbServiceParams{
		TxManager: txManager,
		ClimbRepo: climbRepo,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return climbServiceFixtures{
		service:   service,
		txManager: txManager,
		climbRepo: climbRepo,
		userRepo:  userRepo,
	}
}

func TestClimbService_LogClimb_Success(t *testing.T) {
	fx := createTestClimbService(t)

	ctx := context.Background()
	input := &usecase.LogClimbInput{UserID: 7, RouteID: 11}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClimbRepo := mockRepo.NewMockClimbRepository(t)

			mockFactory.EXPECT().ClimbRepo().Return(mockClimbRepo)

			mockClimbRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Climb")).
				Run(func(ctx context.Context, climb *entity.Climb) {
					assert.Equal(t, int64(7), climb.UserID)
					assert.Equal(t, int64(11), climb.RouteID)
					climb.ID = 101
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.LogClimb(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(101), output.ClimbingID)
}

func TestClimbService_LogClimb_UnknownReference(t *testing.T) {
	fx := createTestClimbService(t)

	ctx := context.Background()
	input := &usecase.LogClimbInput{UserID: 999, RouteID: 11}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(repository.ErrClimbInvalidReference, "foreign key violation"))

	output, err := fx.service.LogClimb(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrClimbInvalidReference))
}

func TestClimbService_LogClimb_PersistenceError(t *testing.T) {
	fx := createTestClimbService(t)

	ctx := context.Background()
	input := &usecase.LogClimbInput{UserID: 7, RouteID: 11}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("insert failed"))

	output, err := fx.service.LogClimb(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrClimbInvalidReference))
}

func TestClimbService_ListUserClimbs_Success(t *testing.T) {
	fx := createTestClimbService(t)

	ctx := context.Background()
	now := time.Now()
	climbs := []*entity.Climb{
		{ID: 2, UserID: 7, RouteID: 11, ClimbedAt: now},
		{ID: 1, UserID: 7, RouteID: 12, ClimbedAt: now.Add(-time.Hour)},
	}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	fx.climbRepo.EXPECT().ListByUser(ctx, int64(7)).Return(climbs, nil)

	outputs, err := fx.service.ListUserClimbs(ctx, 7)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, int64(2), outputs[0].ClimbingID)
	assert.Equal(t, int64(11), outputs[0].RouteID)
}

func TestClimbService_ListUserClimbs_Empty(t *testing.T) {
	fx := createTestClimbService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	fx.climbRepo.EXPECT().ListByUser(ctx, int64(7)).Return([]*entity.Climb{}, nil)

	outputs, err := fx.service.ListUserClimbs(ctx, 7)

	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestClimbService_ListUserClimbs_UnknownUser(t *testing.T) {
	fx := createTestClimbService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, int64(999)).Return(nil, repository.ErrUserNotFound)

	outputs, err := fx.service.ListUserClimbs(ctx, 999)

	assert.Error(t, err)
	assert.Nil(t, outputs)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
