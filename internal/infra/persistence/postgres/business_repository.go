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

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// visible limits queries to listings the public site may show.
func visible(db *gorm.DB) *gorm.DB {
	return db.Where("active = ? AND blocked = ?", true, false)
}

// FindPage retrieves one page of visible businesses, optionally scoped to a
// city and filtered by a name search. A uuid.Nil cityID means all cities.
func (repo *businessRepository) FindPage(ctx context.Context, cityID uuid.UUID, page, limit int, search string) (*repository.BusinessPage, error) {
	if page < 1 {
		page = 1
	}

	query := visible(repo.db.WithContext(ctx).Model(&model.BusinessModel{}))
	if cityID != uuid.Nil {
		query = query.Where("city_id = ?", cityID)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count businesses")
	}

	var businessModels []*model.BusinessModel
	if err := query.
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find business page")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return &repository.BusinessPage{Businesses: businesses, Total: total}, nil
}

// FindByCity retrieves every visible business attached to a city, for the
// map-browser payload which is not paginated.
func (repo *businessRepository) FindByCity(ctx context.Context, cityID uuid.UUID) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := visible(repo.db.WithContext(ctx)).
		Where("city_id = ?", cityID).
		Order("name ASC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by city")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// FindByID retrieves a single business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// FindBySlug retrieves a single visible business by its URL slug.
func (repo *businessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := visible(repo.db.WithContext(ctx)).
		Where("slug = ?", slug).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by slug")
	}

	return toBusinessDomain(&businessM), nil
}

// Create persists a new business listing.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugConflict.WrapMessage("business slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCityNotFound.WrapMessage("referenced city does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Update modifies an existing business record.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Save(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugConflict.WrapMessage("business slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCityNotFound.WrapMessage("referenced city does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update business")
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Delete removes a business by its ID.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BusinessModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:             data.ID,
		CityID:         data.CityID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		Address:        data.Address,
		CityName:       data.CityName,
		State:          data.State,
		Country:        data.Country,
		Zipcode:        data.Zipcode,
		Active:         data.Active,
		Blocked:        data.Blocked,
		BusinessStatus: data.BusinessStatus,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		LogoURL:        data.LogoURL,
		MarkerURL:      data.MarkerURL,
		ClaimedFee:     data.ClaimedFee,
		ExternalID:     data.ExternalID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:             data.ID,
		CityID:         data.CityID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		Address:        data.Address,
		CityName:       data.CityName,
		State:          data.State,
		Country:        data.Country,
		Zipcode:        data.Zipcode,
		Active:         data.Active,
		Blocked:        data.Blocked,
		BusinessStatus: data.BusinessStatus,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		LogoURL:        data.LogoURL,
		MarkerURL:      data.MarkerURL,
		ClaimedFee:     data.ClaimedFee,
		ExternalID:     data.ExternalID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
