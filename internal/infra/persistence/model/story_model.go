package model

import (
	"time"
)

// StoryModel mirrors the 'stories' table. IsActive is the soft-delete and
// sweep flag; ExpireAt bounds visibility regardless of the flag.
type StoryModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"index;not null"`
	ContentURL string `gorm:"type:varchar(512);not null"`
	IsActive   bool   `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	ExpireAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StoryModel) TableName() string {
	return "stories"
}
