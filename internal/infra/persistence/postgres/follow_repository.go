package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// followRepository implements the domain.FollowRepository interface using GORM.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

// Create persists a new follow edge. The composite unique index on
// (follower_id, following_id) is the authority on duplicates, so concurrent
// follow requests resolve to exactly one edge.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := fromFollowDomain(follow)

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEdge
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow edge")
	}

	follow.ID = followM.ID
	follow.CreatedAt = followM.CreatedAt

	return nil
}

// Find retrieves the edge for a specific (follower, following) pair.
func (repo *followRepository) Find(ctx context.Context, followerID, followingID int64) (*entity.Follow, error) {
	var followM model.FollowModel
	if err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&followM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFollowNotFound
		}

		return nil, errors.Wrap(err, "failed to find follow edge")
	}

	return toFollowDomain(&followM), nil
}

// Delete removes the edge for a specific (follower, following) pair.
func (repo *followRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete follow edge")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFollowNotFound
	}

	return nil
}

// ListFollowers retrieves the edges pointing at userID, newest first.
func (repo *followRepository) ListFollowers(ctx context.Context, userID int64, offset, limit int) ([]*entity.Follow, error) {
	var followModels []model.FollowModel
	if err := repo.db.WithContext(ctx).
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&followModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return toFollowDomains(followModels), nil
}

// ListFollowing retrieves the edges originating from userID, newest first.
func (repo *followRepository) ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]*entity.Follow, error) {
	var followModels []model.FollowModel
	if err := repo.db.WithContext(ctx).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&followModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return toFollowDomains(followModels), nil
}

// CountFollowers returns the number of users following userID.
func (repo *followRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("following_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count followers")
	}

	return count, nil
}

// CountFollowing returns the number of users userID follows.
func (repo *followRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count following")
	}

	return count, nil
}

// --- Mapper Functions ---

// toFollowDomain converts a GORM FollowModel to a domain Follow entity.
func toFollowDomain(data *model.FollowModel) *entity.Follow {
	if data == nil {
		return nil
	}

	return &entity.Follow{
		ID:          data.ID,
		FollowerID:  data.FollowerID,
		FollowingID: data.FollowingID,
		CreatedAt:   data.CreatedAt,
	}
}

func toFollowDomains(models []model.FollowModel) []*entity.Follow {
	follows := make([]*entity.Follow, 0, len(models))
	for i := range models {
		follows = append(follows, toFollowDomain(&models[i]))
	}

	return follows
}

// fromFollowDomain converts a domain Follow entity to a GORM FollowModel.
func fromFollowDomain(data *entity.Follow) *model.FollowModel {
	if data == nil {
		return nil
	}

	return &model.FollowModel{
		ID:          data.ID,
		FollowerID:  data.FollowerID,
		FollowingID: data.FollowingID,
	}
}
