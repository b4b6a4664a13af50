package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

type routeServiceFixtures struct {
	service   usecase.RouteUsecase
	txManager *mockRepo.MockTransactionManager
	routeRepo *mockRepo.MockRouteRepository
}

func createTestRouteService(t *testing.T) routeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	routeRepo := mockRepo.NewMockRouteRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRouteService(RouteServiceParams{
		TxManager: txManager,
		RouteRepo: routeRepo,
		Logger:    logger,
	})

	return routeServiceFixtures{
		service:   service,
		txManager: txManager,
		routeRepo: routeRepo,
	}
}

func gradePtr(s string) *string { return &s }

func TestRouteService_CreateRoute_Success(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	input := &usecase.CreateRouteInput{
		Name:     "The Nose",
		Location: "El Capitan",
		Grade:    gradePtr("5.14a"),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRouteRepo := mockRepo.NewMockRouteRepository(t)

			mockFactory.EXPECT().RouteRepo().Return(mockRouteRepo)

			mockRouteRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Route")).
				Run(func(ctx context.Context, route *entity.Route) {
					assert.Equal(t, input.Name, route.Name)
					require.NotNil(t, route.Grade)
					assert.Equal(t, "5.14a", *route.Grade)
					route.ID = 11
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateRoute(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(11), output.RouteID)
}

func TestRouteService_CreateRoute_UngradedRoute(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	input := &usecase.CreateRouteInput{Name: "Mystery Slab", Location: "Gym"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRouteRepo := mockRepo.NewMockRouteRepository(t)

			mockFactory.EXPECT().RouteRepo().Return(mockRouteRepo)

			mockRouteRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Route")).
				Run(func(ctx context.Context, route *entity.Route) {
					assert.Nil(t, route.Grade)
					route.ID = 12
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateRoute(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(12), output.RouteID)
}

func TestRouteService_CreateRoute_PersistenceError(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	input := &usecase.CreateRouteInput{Name: "The Nose"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("insert failed"))

	output, err := fx.service.CreateRoute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestRouteService_GetRoute_Success(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	route := &entity.Route{ID: 11, Name: "The Nose", Location: "El Capitan", Grade: gradePtr("5.14a")}

	fx.routeRepo.EXPECT().FindByID(ctx, int64(11)).Return(route, nil)

	output, err := fx.service.GetRoute(ctx, 11)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(11), output.RouteID)
	assert.Equal(t, "The Nose", output.Name)
}

func TestRouteService_GetRoute_NotFound(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	fx.routeRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrRouteNotFound)

	output, err := fx.service.GetRoute(ctx, 404)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRouteNotFound))
}

func TestRouteService_ListRoutes_Success(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	routes := []*entity.Route{
		{ID: 1, Name: "The Nose", Location: "El Capitan", Grade: gradePtr("5.14a")},
		{ID: 2, Name: "Mystery Slab", Location: "Gym"},
	}

	fx.routeRepo.EXPECT().List(ctx).Return(routes, nil)

	outputs, err := fx.service.ListRoutes(ctx)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, int64(1), outputs[0].RouteID)
	assert.Nil(t, outputs[1].Grade)
}

func TestRouteService_ListRoutes_Error(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	fx.routeRepo.EXPECT().List(ctx).Return(nil, errors.New("connection reset"))

	outputs, err := fx.service.ListRoutes(ctx)

	assert.Error(t, err)
	assert.Nil(t, outputs)
}
