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

// likeRepository implements the domain.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Create persists a new like edge. The composite unique index on
// (user_id, post_id) is the authority on duplicates.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEdge
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like edge")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Find retrieves the edge for a specific (user, post) pair.
func (repo *likeRepository) Find(ctx context.Context, userID, postID int64) (*entity.Like, error) {
	var likeM model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like edge")
	}

	return toLikeDomain(&likeM), nil
}

// Delete removes the edge for a specific (user, post) pair.
func (repo *likeRepository) Delete(ctx context.Context, userID, postID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.LikeModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete like edge")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// ListByPostID retrieves a post's likes, newest first.
func (repo *likeRepository) ListByPostID(ctx context.Context, postID int64, offset, limit int) ([]*entity.Like, error) {
	var likeModels []model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&likeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes by post")
	}

	return toLikeDomains(likeModels), nil
}

// ListByUserID retrieves a user's likes, newest first.
func (repo *likeRepository) ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*entity.Like, error) {
	var likeModels []model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&likeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes by user")
	}

	return toLikeDomains(likeModels), nil
}

// CountByPostID returns the number of likes on a post.
func (repo *likeRepository) CountByPostID(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

// --- Mapper Functions ---

// toLikeDomain converts a GORM LikeModel to a domain Like entity.
func toLikeDomain(data *model.LikeModel) *entity.Like {
	if data == nil {
		return nil
	}

	return &entity.Like{
		ID:        data.ID,
		UserID:    data.UserID,
		PostID:    data.PostID,
		CreatedAt: data.CreatedAt,
	}
}

func toLikeDomains(models []model.LikeModel) []*entity.Like {
	likes := make([]*entity.Like, 0, len(models))
	for i := range models {
		likes = append(likes, toLikeDomain(&models[i]))
	}

	return likes
}

// fromLikeDomain converts a domain Like entity to a GORM LikeModel.
func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:     data.ID,
		UserID: data.UserID,
		PostID: data.PostID,
	}
}
