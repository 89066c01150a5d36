// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	cityRepo     repository.CityRepository
	businessRepo repository.BusinessRepository
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	CityRepo     repository.CityRepository
	BusinessRepo repository.BusinessRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		cityRepo:     params.CityRepo,
		businessRepo: params.BusinessRepo,
		defaultLimit: params.Config.Directory.DefaultLimit,
		maxLimit:     params.Config.Directory.MaxLimit,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// clampPaging normalizes page and limit to the configured bounds.
func (srv *directoryService) clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	if limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	return page, limit
}

// ListCities returns one page of cities ordered for display.
func (srv *directoryService) ListCities(ctx context.Context, input usecase.ListCitiesInput) (*usecase.CityListOutput, error) {
	page, limit := srv.clampPaging(input.Page, input.Limit)

	cityPage, err := srv.cityRepo.FindPage(ctx, page, limit, input.Search)
	if err != nil {
		srv.log(ctx).Error("Failed to list cities", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cities")
	}

	return &usecase.CityListOutput{
		Page:   page,
		Limit:  limit,
		Total:  cityPage.Total,
		Cities: cityPage.Cities,
	}, nil
}

// GetCityWithBusinesses returns a city detail embedding its visible businesses.
func (srv *directoryService) GetCityWithBusinesses(ctx context.Context, cityID uuid.UUID) (*usecase.CityDetailOutput, error) {
	city, err := srv.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city")
	}

	businesses, err := srv.businessRepo.FindByCity(ctx, cityID)
	if err != nil {
		srv.log(ctx).Error("Failed to load city businesses", slog.Any("cityID", cityID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load city businesses")
	}

	return &usecase.CityDetailOutput{City: city, Businesses: businesses}, nil
}

// GetBusinessBySlug returns a single visible business for the public detail page.
func (srv *directoryService) GetBusinessBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	business, err := srv.businessRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by slug")
	}

	return business, nil
}

// CreateCity adds a new city to the directory.
func (srv *directoryService) CreateCity(ctx context.Context, input usecase.CityInput) (*entity.City, error) {
	city := cityFromInput(input)

	if err := srv.cityRepo.Create(ctx, city); err != nil {
		srv.log(ctx).Error("Failed to create city", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("City created", slog.Any("cityID", city.ID), slog.String("slug", city.Slug))

	return city, nil
}

// UpdateCity replaces the writable fields of an existing city.
func (srv *directoryService) UpdateCity(ctx context.Context, id uuid.UUID, input usecase.CityInput) (*entity.City, error) {
	existing, err := srv.cityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city for update")
	}

	city := cityFromInput(input)
	city.ID = existing.ID
	city.CreatedAt = existing.CreatedAt

	if err := srv.cityRepo.Update(ctx, city); err != nil {
		return nil, err
	}

	return city, nil
}

// DeleteCity removes a city.
func (srv *directoryService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	if err := srv.cityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return domainerrors.ErrCityNotFound
		}

		return errors.Wrap(err, "failed to delete city")
	}

	srv.log(ctx).Info("City deleted", slog.Any("cityID", id))

	return nil
}

// SetCityFeatured toggles the featured flag.
func (srv *directoryService) SetCityFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	if err := srv.cityRepo.SetFeatured(ctx, id, featured); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return domainerrors.ErrCityNotFound
		}

		return errors.Wrap(err, "failed to set city featured flag")
	}

	return nil
}

// CreateBusiness adds a new business listing.
func (srv *directoryService) CreateBusiness(ctx context.Context, input usecase.BusinessInput) (*entity.Business, error) {
	business := businessFromInput(input)

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		srv.log(ctx).Error("Failed to create business", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Business created", slog.Any("businessID", business.ID), slog.String("slug", business.Slug))

	return business, nil
}

// UpdateBusiness replaces the writable fields of an existing listing.
func (srv *directoryService) UpdateBusiness(ctx context.Context, id uuid.UUID, input usecase.BusinessInput) (*entity.Business, error) {
	existing, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business for update")
	}

	business := businessFromInput(input)
	business.ID = existing.ID
	business.CreatedAt = existing.CreatedAt

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}

// DeleteBusiness removes a business listing.
func (srv *directoryService) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	if err := srv.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to delete business")
	}

	srv.log(ctx).Info("Business deleted", slog.Any("businessID", id))

	return nil
}

func cityFromInput(input usecase.CityInput) *entity.City {
	return &entity.City{
		Name:         input.Name,
		Slug:         input.Slug,
		Featured:     input.Featured,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		DisplayOrder: input.DisplayOrder,
		PictureURL:   input.PictureURL,
	}
}

func businessFromInput(input usecase.BusinessInput) *entity.Business {
	return &entity.Business{
		CityID:         input.CityID,
		Name:           input.Name,
		Slug:           input.Slug,
		Description:    input.Description,
		Address:        input.Address,
		CityName:       input.CityName,
		State:          input.State,
		Country:        input.Country,
		Zipcode:        input.Zipcode,
		Active:         input.Active,
		Blocked:        input.Blocked,
		BusinessStatus: input.BusinessStatus,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		LogoURL:        input.LogoURL,
		MarkerURL:      input.MarkerURL,
		ClaimedFee:     input.ClaimedFee,
		ExternalID:     input.ExternalID,
	}
}
