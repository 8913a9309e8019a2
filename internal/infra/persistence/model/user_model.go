package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are bigserial values generated
// by PostgreSQL.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	Username     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Phone        string `gorm:"type:varchar(32);uniqueIndex"`
	Address      string `gorm:"type:varchar(255)"`
	ProfilePic   string `gorm:"type:varchar(512)"`
	Bio          string `gorm:"type:text"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time

	Posts    []PostModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments []CommentModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Likes    []LikeModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Stories  []StoryModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
