package model

import (
	"time"

	"github.com/google/uuid"
)

type StaffUser struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'trainer'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (StaffUser) TableName() string {
	return "staff_users"
}
