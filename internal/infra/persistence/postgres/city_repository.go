// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessCountSubquery annotates each city row with its attached business count.
const businessCountSubquery = "(SELECT COUNT(*) FROM businesses b WHERE b.city_id = cities.id AND b.active AND NOT b.blocked) AS business_count"

// cityRepository implements the repository.CityRepository interface.
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{
		db: db,
	}
}

// FindPage retrieves one page of cities ordered by display order then name.
func (repo *cityRepository) FindPage(ctx context.Context, page, limit int, search string) (*repository.CityPage, error) {
	if page < 1 {
		page = 1
	}

	query := repo.db.WithContext(ctx).Model(&model.CityModel{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count cities")
	}

	var cityModels []*model.CityModel
	if err := query.
		Select("cities.*, " + businessCountSubquery).
		Order("display_order ASC, name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find city page")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return &repository.CityPage{Cities: cities, Total: total}, nil
}

// FindByID retrieves a single city by its unique ID.
func (repo *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Select("cities.*, "+businessCountSubquery).
		Where("id = ?", id).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by ID")
	}

	return toCityDomain(&cityM), nil
}

// FindBySlug retrieves a single city by its URL slug.
func (repo *cityRepository) FindBySlug(ctx context.Context, slug string) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Select("cities.*, "+businessCountSubquery).
		Where("slug = ?", slug).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by slug")
	}

	return toCityDomain(&cityM), nil
}

// Create persists a new city.
func (repo *cityRepository) Create(ctx context.Context, city *entity.City) error {
	cityM := fromCityDomain(city)

	if err := repo.db.WithContext(ctx).Create(cityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugConflict.WrapMessage("city slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required city information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create city")
	}

	// Update the entity with generated values
	city.ID = cityM.ID
	city.CreatedAt = cityM.CreatedAt
	city.UpdatedAt = cityM.UpdatedAt

	return nil
}

// Update modifies an existing city record.
func (repo *cityRepository) Update(ctx context.Context, city *entity.City) error {
	cityM := fromCityDomain(city)

	if err := repo.db.WithContext(ctx).Save(cityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugConflict.WrapMessage("city slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required city information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update city")
	}

	city.UpdatedAt = cityM.UpdatedAt

	return nil
}

// Delete removes a city by its ID.
func (repo *cityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CityModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete city")
	}

	// If no rows were affected, the city was not found.
	if result.RowsAffected == 0 {
		return repository.ErrCityNotFound
	}

	return nil
}

// SetFeatured flips the featured flag on a city row.
func (repo *cityRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CityModel{}).
		Where("id = ?", id).
		Update("featured", featured)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set featured flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCityNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCityDomain converts a GORM CityModel to a domain City entity.
func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:            data.ID,
		Name:          data.Name,
		Slug:          data.Slug,
		Featured:      data.Featured,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		DisplayOrder:  data.DisplayOrder,
		PictureURL:    data.PictureURL,
		BusinessCount: data.BusinessCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCityDomain converts a domain City entity to a GORM CityModel.
func fromCityDomain(data *entity.City) *model.CityModel {
	if data == nil {
		return nil
	}

	return &model.CityModel{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		Featured:     data.Featured,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		DisplayOrder: data.DisplayOrder,
		PictureURL:   data.PictureURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
