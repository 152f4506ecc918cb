package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id        uuid.UUID
	MemberId  uuid.UUID
	TypeCode  string
	Title     string
	Message   string
	Metadata  map[string]interface{}
	CreatedAt time.Time
}

const NotificationTypeHighChurnRisk = "CHURN_RISK_HIGH"
