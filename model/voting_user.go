package model

import (
	"time"

	"gorm.io/gorm"
)

// VotingUser is a registered voter.
type VotingUser struct {
	ID          uint   `gorm:"primarykey"`
	Email       string `gorm:"uniqueIndex;size:100;not null"`
	Pesel       string `gorm:"size:11;not null"`
	Password    string `gorm:"size:64;not null"` // bcrypt hash
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (VotingUser) TableName() string {
	return "voting_users"
}

func (u *VotingUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == 0 {
		u.ID = GenerateID()
	}
	return nil
}
