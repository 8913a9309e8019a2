package model

import (
	"time"
)

// PostModel mirrors the 'posts' table. Deleting a post cascades to its
// comments and likes at the database level.
type PostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time

	Comments []CommentModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Likes    []LikeModel    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	PostID    int64  `gorm:"index;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
