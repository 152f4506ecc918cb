package entity

import (
	"time"

	"github.com/google/uuid"
)

type MemberStatus string

// Status labels are stored exactly as the legacy dashboard writes them.
const (
	MemberStatusActive   MemberStatus = "Ativo"
	MemberStatusInactive MemberStatus = "Inativo"
)

type Member struct {
	Id        uuid.UUID
	FullName  string
	Email     string
	Age       *int
	Gender    *string
	Status    MemberStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Attendance struct {
	Id              uuid.UUID
	MemberId        uuid.UUID
	ClassType       string
	Date            time.Time
	DurationMinutes float64
	CreatedAt       time.Time
}

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "pago"
	PaymentStatusPending PaymentStatus = "pendente"
	PaymentStatusLate    PaymentStatus = "atrasado"
)

type Payment struct {
	Id             uuid.UUID
	MemberId       uuid.UUID
	Amount         float64
	DueDate        time.Time
	PaidAt         *time.Time
	Status         PaymentStatus
	GatewayOrderId *string
	CreatedAt      time.Time
}

type Feedback struct {
	Id        uuid.UUID
	MemberId  uuid.UUID
	Date      time.Time
	Rating    *float64
	Comment   *string
	CreatedAt time.Time
}
