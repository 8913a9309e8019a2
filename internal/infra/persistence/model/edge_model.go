package model

import (
	"time"
)

// FollowModel mirrors the 'followers' table. The composite unique index is
// the authority on duplicate follow detection.
type FollowModel struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	FollowerID  int64 `gorm:"uniqueIndex:idx_follower_following;not null"`
	FollowingID int64 `gorm:"uniqueIndex:idx_follower_following;not null"`
	CreatedAt   time.Time

	Follower  *UserModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following *UserModel `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "followers"
}

// LikeModel mirrors the 'likes' table. One like per user per post, enforced
// by the composite unique index.
type LikeModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"uniqueIndex:idx_user_post;not null"`
	PostID    int64 `gorm:"uniqueIndex:idx_user_post;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
