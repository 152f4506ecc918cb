package model

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Age       *int
	Gender    *string   `gorm:"type:varchar(50)"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Ativo';index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Member) TableName() string {
	return "members"
}

type Attendance struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MemberId        uuid.UUID `gorm:"type:uuid;not null;index:idx_attendances_member_date,priority:1"`
	ClassType       string    `gorm:"type:varchar(100);not null"`
	Date            time.Time `gorm:"not null;index:idx_attendances_member_date,priority:2,sort:desc"`
	DurationMinutes float64
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type Payment struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MemberId       uuid.UUID `gorm:"type:uuid;not null;index:idx_payments_member_due,priority:1"`
	Amount         float64   `gorm:"not null"`
	DueDate        time.Time `gorm:"not null;index:idx_payments_member_due,priority:2,sort:desc"`
	PaidAt         *time.Time
	Status         string  `gorm:"type:varchar(20);not null;default:'pendente';index"`
	GatewayOrderId *string `gorm:"type:varchar(100);index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Payment) TableName() string {
	return "payments"
}

type Feedback struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MemberId  uuid.UUID `gorm:"type:uuid;not null;index:idx_feedbacks_member_date,priority:1"`
	Date      time.Time `gorm:"not null;index:idx_feedbacks_member_date,priority:2,sort:desc"`
	Rating    *float64
	Comment   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
