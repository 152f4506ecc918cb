package mapper

import (
	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/model"
)

type StaffMapper struct{}

func NewStaffMapper() *StaffMapper {
	return &StaffMapper{}
}

func (m *StaffMapper) ToEntity(s *model.StaffUser) *entity.StaffUser {
	if s == nil {
		return nil
	}
	return &entity.StaffUser{
		Id:           s.Id,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		FullName:     s.FullName,
		Role:         entity.StaffRole(s.Role),
		CreatedAt:    s.CreatedAt,
	}
}

func (m *StaffMapper) ToModel(e *entity.StaffUser) *model.StaffUser {
	if e == nil {
		return nil
	}
	return &model.StaffUser{
		Id:           e.Id,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		FullName:     e.FullName,
		Role:         string(e.Role),
		CreatedAt:    e.CreatedAt,
	}
}
