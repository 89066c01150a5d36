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
	"gorm.io/gorm/clause"
)

// claimRepository implements the repository.ClaimRepository interface.
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository is the constructor for claimRepository.
func NewClaimRepository(db *gorm.DB) repository.ClaimRepository {
	return &claimRepository{
		db: db,
	}
}

// CreateItem persists a new cart item. The unique index on (user_id,
// business_id) turns a double-claim into ErrDuplicateClaim.
func (repo *claimRepository) CreateItem(ctx context.Context, item *entity.ClaimCartItem) error {
	itemM := fromClaimItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateClaim
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("claimed business does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create claim cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// FindItemsByUser retrieves the user's cart items, newest first.
func (repo *claimRepository) FindItemsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ClaimCartItem, error) {
	var itemModels []*model.ClaimCartItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find claim cart items")
	}

	items := make([]*entity.ClaimCartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toClaimItemDomain(itemM))
	}

	return items, nil
}

// FindItemByID retrieves a single cart item by its ID.
func (repo *claimRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.ClaimCartItem, error) {
	var itemM model.ClaimCartItemModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find claim cart item by ID")
	}

	return toClaimItemDomain(&itemM), nil
}

// DeleteItem removes a cart item by its ID.
func (repo *claimRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClaimCartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete claim cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClaimItemNotFound
	}

	return nil
}

// DeleteItemsByUser clears the user's cart. Deleting an already empty cart is
// not an error.
func (repo *claimRepository) DeleteItemsByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ClaimCartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete claim cart items by user")
	}

	return nil
}

// CountPendingByUser returns the number of pending cart items for the badge.
func (repo *claimRepository) CountPendingByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ClaimCartItemModel{}).
		Where("user_id = ? AND status = ?", userID, entity.ClaimItemStatusPending).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending claim cart items")
	}

	return count, nil
}

// SaveBatch upserts the user's single batch id row, overwriting whatever id
// was stored before.
func (repo *claimRepository) SaveBatch(ctx context.Context, batch *entity.ClaimBatch) error {
	batchM := fromClaimBatchDomain(batch)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"batch_id", "updated_at"}),
		}).
		Create(batchM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save claim batch")
	}

	batch.UpdatedAt = batchM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toClaimItemDomain converts a GORM ClaimCartItemModel to a domain entity.
func toClaimItemDomain(data *model.ClaimCartItemModel) *entity.ClaimCartItem {
	if data == nil {
		return nil
	}

	return &entity.ClaimCartItem{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		BatchID:    data.BatchID,
		Amount:     data.Amount,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
	}
}

// fromClaimItemDomain converts a domain ClaimCartItem to a GORM model.
func fromClaimItemDomain(data *entity.ClaimCartItem) *model.ClaimCartItemModel {
	if data == nil {
		return nil
	}

	return &model.ClaimCartItemModel{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		BatchID:    data.BatchID,
		Amount:     data.Amount,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
	}
}

// fromClaimBatchDomain converts a domain ClaimBatch to a GORM model.
func fromClaimBatchDomain(data *entity.ClaimBatch) *model.ClaimBatchModel {
	if data == nil {
		return nil
	}

	return &model.ClaimBatchModel{
		UserID:    data.UserID,
		BatchID:   data.BatchID,
		UpdatedAt: data.UpdatedAt,
	}
}
