package dto

import (
	"time"

	"github.com/google/uuid"

	"gym-retention-be/internal/entity"
)

type CreateMemberRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Age      *int    `json:"age" validate:"omitempty,gte=12,lte=120"`
	Gender   *string `json:"gender"`
}

type CreateMemberResponse struct {
	Id uuid.UUID `json:"id"`
}

type MemberResponse struct {
	Id        uuid.UUID           `json:"id"`
	FullName  string              `json:"full_name"`
	Email     string              `json:"email"`
	Age       *int                `json:"age,omitempty"`
	Gender    *string             `json:"gender,omitempty"`
	Status    entity.MemberStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

type RecordAttendanceRequest struct {
	MemberId        uuid.UUID `json:"member_id" validate:"required"`
	ClassType       string    `json:"class_type" validate:"required"`
	Date            time.Time `json:"date" validate:"required"`
	DurationMinutes float64   `json:"duration_minutes" validate:"gt=0"`
}

type RecordFeedbackRequest struct {
	MemberId uuid.UUID `json:"member_id" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Rating   *float64  `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment  *string   `json:"comment"`
}

type UpdateMemberStatusRequest struct {
	Id     uuid.UUID
	Status entity.MemberStatus `json:"status" validate:"required,oneof=Ativo Inativo"`
}
