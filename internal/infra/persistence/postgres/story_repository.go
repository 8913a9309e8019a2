package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storyRepository implements the domain.StoryRepository interface using GORM.
//
// Visibility (is_active AND not yet expired) is evaluated inside the queries
// themselves, so viewer reads stay correct however far the background sweep
// is lagging.
type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository is the constructor for storyRepository.
func NewStoryRepository(db *gorm.DB) repository.StoryRepository {
	return &storyRepository{db: db}
}

// Create persists a new story.
func (repo *storyRepository) Create(ctx context.Context, story *entity.Story) error {
	storyM := fromStoryDomain(story)

	if err := repo.db.WithContext(ctx).Create(storyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required story content")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create story")
	}

	story.ID = storyM.ID
	story.CreatedAt = storyM.CreatedAt

	return nil
}

// FindByID retrieves a single story by its unique ID regardless of visibility.
func (repo *storyRepository) FindByID(ctx context.Context, id int64) (*entity.Story, error) {
	var storyM model.StoryModel
	if err := repo.db.WithContext(ctx).First(&storyM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find story by id")
	}

	return toStoryDomain(&storyM), nil
}

// ListVisible retrieves all stories visible at the given instant, newest first.
func (repo *storyRepository) ListVisible(ctx context.Context, now time.Time, offset, limit int) ([]*entity.Story, error) {
	var storyModels []model.StoryModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND (expire_at IS NULL OR expire_at > ?)", true, now).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&storyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visible stories")
	}

	return toStoryDomains(storyModels), nil
}

// ListVisibleByUserID retrieves one user's stories visible at the given instant.
func (repo *storyRepository) ListVisibleByUserID(ctx context.Context, userID int64, now time.Time, offset, limit int) ([]*entity.Story, error) {
	var storyModels []model.StoryModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND (expire_at IS NULL OR expire_at > ?)", userID, true, now).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&storyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visible stories by user")
	}

	return toStoryDomains(storyModels), nil
}

// ListByUserID retrieves all of a user's stories regardless of visibility.
func (repo *storyRepository) ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*entity.Story, error) {
	var storyModels []model.StoryModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&storyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stories by user")
	}

	return toStoryDomains(storyModels), nil
}

// Deactivate flips a story to inactive. Flipping an already inactive story
// affects zero rows, which still counts as success; the flip is monotonic.
func (repo *storyRepository) Deactivate(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoryModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate story")
	}

	return nil
}

// SweepExpired flips every active story whose expiry has passed to inactive
// in a single batch statement. Re-running with no newly expired stories
// affects zero rows.
func (repo *storyRepository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.StoryModel{}).
		Where("is_active = ? AND expire_at IS NOT NULL AND expire_at <= ?", true, now).
		Update("is_active", false)
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to sweep expired stories")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toStoryDomain converts a GORM StoryModel to a domain Story entity.
func toStoryDomain(data *model.StoryModel) *entity.Story {
	if data == nil {
		return nil
	}

	return &entity.Story{
		ID:         data.ID,
		UserID:     data.UserID,
		ContentURL: data.ContentURL,
		State:      entity.LifecycleState(data.IsActive),
		CreatedAt:  data.CreatedAt,
		ExpireAt:   data.ExpireAt,
	}
}

func toStoryDomains(models []model.StoryModel) []*entity.Story {
	stories := make([]*entity.Story, 0, len(models))
	for i := range models {
		stories = append(stories, toStoryDomain(&models[i]))
	}

	return stories
}

// fromStoryDomain converts a domain Story entity to a GORM StoryModel.
func fromStoryDomain(data *entity.Story) *model.StoryModel {
	if data == nil {
		return nil
	}

	return &model.StoryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		ContentURL: data.ContentURL,
		IsActive:   bool(data.State),
		ExpireAt:   data.ExpireAt,
	}
}
