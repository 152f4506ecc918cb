package mapper

import (
	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/model"
)

type MemberMapper struct{}

func NewMemberMapper() *MemberMapper {
	return &MemberMapper{}
}

func (m *MemberMapper) ToEntity(mm *model.Member) *entity.Member {
	if mm == nil {
		return nil
	}
	return &entity.Member{
		Id:        mm.Id,
		FullName:  mm.FullName,
		Email:     mm.Email,
		Age:       mm.Age,
		Gender:    mm.Gender,
		Status:    entity.MemberStatus(mm.Status),
		CreatedAt: mm.CreatedAt,
		UpdatedAt: mm.UpdatedAt,
	}
}

func (m *MemberMapper) ToModel(e *entity.Member) *model.Member {
	if e == nil {
		return nil
	}
	return &model.Member{
		Id:        e.Id,
		FullName:  e.FullName,
		Email:     e.Email,
		Age:       e.Age,
		Gender:    e.Gender,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *MemberMapper) ToEntities(models []*model.Member) []*entity.Member {
	entities := make([]*entity.Member, 0, len(models))
	for _, mm := range models {
		entities = append(entities, m.ToEntity(mm))
	}
	return entities
}

func (m *MemberMapper) AttendanceToEntity(a *model.Attendance) *entity.Attendance {
	if a == nil {
		return nil
	}
	return &entity.Attendance{
		Id:              a.Id,
		MemberId:        a.MemberId,
		ClassType:       a.ClassType,
		Date:            a.Date,
		DurationMinutes: a.DurationMinutes,
		CreatedAt:       a.CreatedAt,
	}
}

func (m *MemberMapper) AttendanceToModel(e *entity.Attendance) *model.Attendance {
	if e == nil {
		return nil
	}
	return &model.Attendance{
		Id:              e.Id,
		MemberId:        e.MemberId,
		ClassType:       e.ClassType,
		Date:            e.Date,
		DurationMinutes: e.DurationMinutes,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *MemberMapper) PaymentToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:             p.Id,
		MemberId:       p.MemberId,
		Amount:         p.Amount,
		DueDate:        p.DueDate,
		PaidAt:         p.PaidAt,
		Status:         entity.PaymentStatus(p.Status),
		GatewayOrderId: p.GatewayOrderId,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *MemberMapper) PaymentToModel(e *entity.Payment) *model.Payment {
	if e == nil {
		return nil
	}
	return &model.Payment{
		Id:             e.Id,
		MemberId:       e.MemberId,
		Amount:         e.Amount,
		DueDate:        e.DueDate,
		PaidAt:         e.PaidAt,
		Status:         string(e.Status),
		GatewayOrderId: e.GatewayOrderId,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *MemberMapper) FeedbackToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:        f.Id,
		MemberId:  f.MemberId,
		Date:      f.Date,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func (m *MemberMapper) FeedbackToModel(e *entity.Feedback) *model.Feedback {
	if e == nil {
		return nil
	}
	return &model.Feedback{
		Id:        e.Id,
		MemberId:  e.MemberId,
		Date:      e.Date,
		Rating:    e.Rating,
		Comment:   e.Comment,
		CreatedAt: e.CreatedAt,
	}
}
