package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification stores the alert history written by the churn alert consumer.
type Notification struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MemberId  uuid.UUID      `gorm:"type:uuid;not null;index:idx_notifications_member_created,priority:1"`
	TypeCode  string         `gorm:"type:varchar(50);not null;index"`
	Title     string         `gorm:"type:varchar(200);not null"`
	Message   string         `gorm:"type:text;not null"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP;index:idx_notifications_member_created,priority:2"`
}

func (Notification) TableName() string {
	return "notifications"
}
