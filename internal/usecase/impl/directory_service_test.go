package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	mockRepo "directory/internal/mocks/repository"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// directoryServiceFixtures holds all test dependencies for directory service tests.
type directoryServiceFixtures struct {
	service      usecase.DirectoryUsecase
	cityRepo     *mockRepo.MockCityRepository
	businessRepo *mockRepo.MockBusinessRepository
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	cityRepo := mockRepo.NewMockCityRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Directory.DefaultLimit = 20
	cfg.Directory.MaxLimit = 100

	service := NewDirectoryService(DirectoryServiceParams{
		CityRepo:     cityRepo,
		BusinessRepo: businessRepo,
		Config:       cfg,
		Logger:       logger,
	})

	return directoryServiceFixtures{
		service:      service,
		cityRepo:     cityRepo,
		businessRepo: businessRepo,
	}
}

func TestDirectoryService_ListCities_ClampsPaging(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	cities := []*entity.City{{ID: uuid.New(), Name: "Austin"}}

	tests := []struct {
		name      string
		input     usecase.ListCitiesInput
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", usecase.ListCitiesInput{}, 1, 20},
		{"negative page", usecase.ListCitiesInput{Page: -3, Limit: 10}, 1, 10},
		{"limit capped", usecase.ListCitiesInput{Page: 2, Limit: 5000}, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.cityRepo.EXPECT().
				FindPage(ctx, tt.wantPage, tt.wantLimit, "").
				Return(&repository.CityPage{Cities: cities, Total: 1}, nil).
				Once()

			out, err := fx.service.ListCities(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, out.Page)
			assert.Equal(t, tt.wantLimit, out.Limit)
			assert.Equal(t, int64(1), out.Total)
			assert.Equal(t, cities, out.Cities)
		})
	}
}

func TestDirectoryService_ListCities_PassesSearch(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.cityRepo.EXPECT().
		FindPage(ctx, 1, 20, "aus").
		Return(&repository.CityPage{}, nil)

	_, err := fx.service.ListCities(ctx, usecase.ListCitiesInput{Search: "aus"})

	require.NoError(t, err)
}

func TestDirectoryService_GetCityWithBusinesses(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	city := &entity.City{ID: uuid.New(), Name: "Austin"}
	businesses := []*entity.Business{{ID: uuid.New(), CityID: city.ID, Name: "Franklin Barbecue"}}

	fx.cityRepo.EXPECT().FindByID(ctx, city.ID).Return(city, nil)
	fx.businessRepo.EXPECT().FindByCity(ctx, city.ID).Return(businesses, nil)

	out, err := fx.service.GetCityWithBusinesses(ctx, city.ID)

	require.NoError(t, err)
	assert.Equal(t, city, out.City)
	assert.Equal(t, businesses, out.Businesses)
}

func TestDirectoryService_GetCityWithBusinesses_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	cityID := uuid.New()

	fx.cityRepo.EXPECT().FindByID(ctx, cityID).Return(nil, repository.ErrCityNotFound)

	out, err := fx.service.GetCityWithBusinesses(ctx, cityID)

	require.ErrorIs(t, err, domainerrors.ErrCityNotFound)
	assert.Nil(t, out)
	fx.businessRepo.AssertNotCalled(t, "FindByCity", mock.Anything, mock.Anything)
}

func TestDirectoryService_GetBusinessBySlug(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), Slug: "franklin-barbecue"}

	fx.businessRepo.EXPECT().FindBySlug(ctx, business.Slug).Return(business, nil)

	out, err := fx.service.GetBusinessBySlug(ctx, business.Slug)

	require.NoError(t, err)
	assert.Equal(t, business, out)
}

func TestDirectoryService_GetBusinessBySlug_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrBusinessNotFound)

	out, err := fx.service.GetBusinessBySlug(ctx, "missing")

	require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	assert.Nil(t, out)
}

func TestDirectoryService_CreateCity(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	input := usecase.CityInput{
		Name:      "Austin",
		Slug:      "austin",
		Latitude:  "30.2672",
		Longitude: "-97.7431",
	}

	fx.cityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.City")).
		Run(func(ctx context.Context, city *entity.City) {
			city.ID = uuid.New()
		}).
		Return(nil)

	city, err := fx.service.CreateCity(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, city.ID)
	assert.Equal(t, "austin", city.Slug)
}

func TestDirectoryService_CreateCity_SlugConflict(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.cityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.City")).
		Return(domainerrors.ErrSlugConflict)

	city, err := fx.service.CreateCity(ctx, usecase.CityInput{Name: "Austin", Slug: "austin"})

	require.ErrorIs(t, err, domainerrors.ErrSlugConflict)
	assert.Nil(t, city)
}

func TestDirectoryService_UpdateCity_PreservesIdentity(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	existing := &entity.City{ID: uuid.New(), Name: "Austin", Slug: "austin"}

	fx.cityRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.cityRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.City")).
		Run(func(ctx context.Context, city *entity.City) {
			assert.Equal(t, existing.ID, city.ID)
			assert.Equal(t, "Austin, TX", city.Name)
		}).
		Return(nil)

	city, err := fx.service.UpdateCity(ctx, existing.ID, usecase.CityInput{Name: "Austin, TX", Slug: "austin"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, city.ID)
}

func TestDirectoryService_SetCityFeatured(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	cityID := uuid.New()

	fx.cityRepo.EXPECT().SetFeatured(ctx, cityID, true).Return(nil)

	require.NoError(t, fx.service.SetCityFeatured(ctx, cityID, true))
}

func TestDirectoryService_SetCityFeatured_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	cityID := uuid.New()

	fx.cityRepo.EXPECT().SetFeatured(ctx, cityID, false).Return(repository.ErrCityNotFound)

	err := fx.service.SetCityFeatured(ctx, cityID, false)

	require.ErrorIs(t, err, domainerrors.ErrCityNotFound)
}

func TestDirectoryService_DeleteCity(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	cityID := uuid.New()

	fx.cityRepo.EXPECT().Delete(ctx, cityID).Return(nil)

	require.NoError(t, fx.service.DeleteCity(ctx, cityID))
}

func TestDirectoryService_CreateBusiness(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	input := usecase.BusinessInput{
		CityID:         uuid.New(),
		Name:           "Franklin Barbecue",
		Slug:           "franklin-barbecue",
		Active:         true,
		BusinessStatus: "approved",
	}

	fx.businessRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(ctx context.Context, business *entity.Business) {
			business.ID = uuid.New()
		}).
		Return(nil)

	business, err := fx.service.CreateBusiness(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, business.ID)
	assert.True(t, business.IsApproved())
}

func TestDirectoryService_UpdateBusiness_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)

	business, err := fx.service.UpdateBusiness(ctx, businessID, usecase.BusinessInput{Name: "X"})

	require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	assert.Nil(t, business)
}

func TestDirectoryService_DeleteBusiness(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().Delete(ctx, businessID).Return(nil)

	require.NoError(t, fx.service.DeleteBusiness(ctx, businessID))
}
