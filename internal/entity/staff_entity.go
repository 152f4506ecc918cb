package entity

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	StaffRoleManager StaffRole = "manager"
	StaffRoleTrainer StaffRole = "trainer"
)

type StaffUser struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         StaffRole
	CreatedAt    time.Time
}
