package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileModel mirrors the 'profiles' table. List-valued columns are stored as JSON.
type ProfileModel struct {
	UserID             uuid.UUID `gorm:"type:text;primaryKey"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string    `gorm:"type:varchar(120);not null"`
	Age                int
	AboutText          string `gorm:"type:text"`
	MomentCareer       string `gorm:"type:varchar(60)"`
	Location           string `gorm:"type:varchar(120)"`
	LocationVisibility string `gorm:"type:varchar(20);not null;default:PUBLIC"`
	ProfileImage       string `gorm:"type:varchar(255)"`
	LinkedIn           string `gorm:"type:varchar(255)"`
	GitHub             string `gorm:"type:varchar(255)"`
	Portfolio          string `gorm:"type:varchar(255)"`
	Instagram          string `gorm:"type:varchar(255)"`
	Twitter            string `gorm:"type:varchar(255)"`
	SocialLinksOrder   datatypes.JSONSlice[string]
	Habilities         datatypes.JSONSlice[string]
	UserFocus          string `gorm:"type:varchar(20)"`
	EducationLevel     string `gorm:"type:varchar(60)"`
	ContestType        string `gorm:"type:varchar(60)"`
	CollegeCourse      string `gorm:"type:varchar(120)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// FriendshipModel mirrors the 'friendships' table. Each friendship is stored once per direction.
type FriendshipModel struct {
	UserID    uuid.UUID `gorm:"type:text;primaryKey"`
	FriendID  uuid.UUID `gorm:"type:text;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}

// SubscriptionModel mirrors the 'subscriptions' table.
type SubscriptionModel struct {
	UserID    uuid.UUID `gorm:"type:text;primaryKey"`
	Plan      string    `gorm:"type:varchar(40);not null"`
	Active    bool      `gorm:"not null;default:true"`
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
